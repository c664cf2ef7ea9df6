package podcast

import (
	"reflect"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/oops"
)

// AddEntry appends e, or a new empty entry when e is nil, and returns it.
// The same entry may be added more than once.
func (p *Podcast) AddEntry(e *Entry) *Entry {
	if e == nil {
		e = NewEntry()
	}
	p.entries = append(p.entries, e)
	return e
}

// AddItem is an alias of AddEntry.
func (p *Podcast) AddItem(e *Entry) *Entry {
	return p.AddEntry(e)
}

// Entries returns the entries in insertion order. The slice is a copy, the
// entries are not.
func (p *Podcast) Entries() []*Entry {
	return slices.Clone(p.entries)
}

// RemoveEntryAt removes and returns the entry at index i.
func (p *Podcast) RemoveEntryAt(i int) (*Entry, error) {
	if i < 0 || i >= len(p.entries) {
		return nil, oops.In("podcast").With("index", i, "entries", len(p.entries)).Wrap(ErrEntryIndex)
	}
	e := p.entries[i]
	p.entries = slices.Delete(p.entries, i, i+1)
	return e, nil
}

// RemoveEntry removes the first occurrence of e. If e itself was never added,
// the first entry with equal contents is removed instead.
func (p *Podcast) RemoveEntry(e *Entry) error {
	if e == nil {
		return oops.In("podcast").Wrap(ErrEntryNotFound)
	}
	i := lo.IndexOf(p.entries, e)
	if i < 0 {
		_, i, _ = lo.FindIndexOf(p.entries, func(x *Entry) bool {
			return reflect.DeepEqual(*x, *e)
		})
	}
	if i < 0 {
		return oops.In("podcast").With("title", e.title).Wrap(ErrEntryNotFound)
	}
	p.entries = slices.Delete(p.entries, i, i+1)
	return nil
}

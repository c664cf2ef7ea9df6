package podcast

import (
	"github.com/reshetovitsme/podcast-feed/internal/xmltree"
	"github.com/samber/lo"
)

// AuthorMode decides how a whole set of authors is represented.
type AuthorMode int

const (
	// AuthorModeNone means there are no authors to render.
	AuthorModeNone AuthorMode = iota
	// AuthorModeEditor renders the email-only authors as managingEditor (channel)
	// or author (item).
	AuthorModeEditor
	// AuthorModeCreator renders one dc:creator per author plus a joined
	// itunes:author.
	AuthorModeCreator
)

func (m AuthorMode) String() string {
	switch m {
	case AuthorModeEditor:
		return "editor"
	case AuthorModeCreator:
		return "creator"
	default:
		return "none"
	}
}

// authorModeFor is computed once per channel or item. A single named author
// switches the whole scope to creator style.
func authorModeFor(authors []Person) AuthorMode {
	if len(authors) == 0 {
		return AuthorModeNone
	}
	if lo.SomeBy(authors, func(p Person) bool { return p.Name != "" }) {
		return AuthorModeCreator
	}
	return AuthorModeEditor
}

// appendAuthors emits the author block. editorTag is managingEditor for the
// channel and author for items; RSS allows a single one, so only the first
// author is used in editor mode.
func appendAuthors(parent *xmltree.Element, authors []Person, editorTag string) {
	switch authorModeFor(authors) {
	case AuthorModeEditor:
		parent.AddText(editorTag, authors[0].editorString())
	case AuthorModeCreator:
		parent.AddText(tagITunesAuthor, joinNames(authors))
		for _, a := range authors {
			parent.AddText(tagDCCreator, a.creatorString())
		}
	}
}

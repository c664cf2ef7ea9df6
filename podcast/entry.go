package podcast

import (
	"fmt"
	"slices"
	"time"

	"github.com/samber/oops"
)

// Entry is one item of the feed, usually an episode.
type Entry struct {
	guid        string
	omitGUID    bool
	title       string
	description string
	content     string
	link        string
	comments    string

	authors    []Person
	categories []Category
	published  time.Time
	enclosure  *Enclosure
	chapters   []Chapter

	image           string
	duration        time.Duration
	explicit        *bool
	closedCaptioned *bool
	subtitle        string
	withhold        bool
	position        int
}

// NewEntry returns an empty entry.
func NewEntry() *Entry {
	return &Entry{}
}

// GUID uniquely identifies the entry. When empty the link, then the
// enclosure URL, is used instead unless OmitGUID was called.
func (e *Entry) GUID() string { return e.guid }

func (e *Entry) SetGUID(id string) { e.guid, e.omitGUID = id, false }

// OmitGUID leaves the guid element out, without falling back to the link or
// the enclosure URL.
func (e *Entry) OmitGUID() { e.guid, e.omitGUID = "", true }

// ResetGUID goes back to the link and enclosure fallback.
func (e *Entry) ResetGUID() { e.guid, e.omitGUID = "", false }

// GUIDOmitted reports whether OmitGUID is in effect.
func (e *Entry) GUIDOmitted() bool { return e.omitGUID }

func (e *Entry) Title() string { return e.title }

func (e *Entry) SetTitle(t string) { e.title = t }

// Description is the summary. It is rendered as plain text.
func (e *Entry) Description() string { return e.description }

func (e *Entry) SetDescription(d string) { e.description = d }

// Content is the full text. It is rendered as content:encoded when a
// description is present, otherwise in place of the description.
func (e *Entry) Content() string { return e.content }

func (e *Entry) SetContent(c string) { e.content = c }

func (e *Entry) Link() string { return e.link }

func (e *Entry) SetLink(l string) { e.link = l }

// Comments is the URL of the comments page.
func (e *Entry) Comments() string { return e.comments }

func (e *Entry) SetComments(u string) { e.comments = u }

func (e *Entry) Authors() []Person { return slices.Clone(e.authors) }

// AddAuthor appends authors. Nothing is stored if any of them is empty.
func (e *Entry) AddAuthor(people ...Person) error {
	if err := validatePeople(people); err != nil {
		return oops.In("entry").With("field", "authors").Wrap(err)
	}
	e.authors = append(e.authors, people...)
	return nil
}

func (e *Entry) SetAuthors(people ...Person) error {
	if err := validatePeople(people); err != nil {
		return oops.In("entry").With("field", "authors").Wrap(err)
	}
	e.authors = slices.Clone(people)
	return nil
}

func (e *Entry) Categories() []Category { return slices.Clone(e.categories) }

// AddCategory appends categories. Each one needs a term.
func (e *Entry) AddCategory(cats ...Category) error {
	if err := validateCategories(cats); err != nil {
		return oops.In("entry").With("field", "categories").Wrap(err)
	}
	e.categories = append(e.categories, cats...)
	return nil
}

func (e *Entry) SetCategories(cats ...Category) error {
	if err := validateCategories(cats); err != nil {
		return oops.In("entry").With("field", "categories").Wrap(err)
	}
	e.categories = slices.Clone(cats)
	return nil
}

func (e *Entry) Chapters() []Chapter { return slices.Clone(e.chapters) }

// AddChapter appends chapters. Each one needs a title and a non-negative start.
func (e *Entry) AddChapter(chapters ...Chapter) error {
	if err := validateChapters(chapters); err != nil {
		return oops.In("entry").With("field", "chapters").Wrap(err)
	}
	e.chapters = append(e.chapters, chapters...)
	return nil
}

func (e *Entry) SetChapters(chapters ...Chapter) error {
	if err := validateChapters(chapters); err != nil {
		return oops.In("entry").With("field", "chapters").Wrap(err)
	}
	e.chapters = slices.Clone(chapters)
	return nil
}

// Published returns the publication date, zero when unset.
func (e *Entry) Published() time.Time { return e.published }

func (e *Entry) SetPublished(t time.Time) error {
	if t.IsZero() {
		return oops.In("entry").With("field", "published").Wrap(ErrZeroTime)
	}
	e.published = t
	return nil
}

func (e *Entry) ClearPublished() { e.published = time.Time{} }

// Enclosure returns the attached media file.
func (e *Entry) Enclosure() (Enclosure, bool) {
	if e.enclosure == nil {
		return Enclosure{}, false
	}
	return *e.enclosure, true
}

// SetEnclosure attaches a media file. The URL is required and an empty type
// is detected from the URL. On error the previous enclosure is kept.
func (e *Entry) SetEnclosure(enc Enclosure) error {
	checked, err := NewEnclosure(enc.URL, enc.Length, enc.Type)
	if err != nil {
		return err
	}
	e.enclosure = &checked
	return nil
}

func (e *Entry) ClearEnclosure() { e.enclosure = nil }

// Image is the episode artwork URL.
func (e *Entry) Image() string { return e.image }

func (e *Entry) SetImage(u string) error {
	if err := validateImage(u); err != nil {
		return err
	}
	e.image = u
	return nil
}

// Duration is the playing time. Zero means unknown.
func (e *Entry) Duration() time.Duration { return e.duration }

func (e *Entry) SetDuration(d time.Duration) {
	e.duration = max(d, 0)
}

func (e *Entry) Explicit() (explicit, ok bool) {
	if e.explicit == nil {
		return false, false
	}
	return *e.explicit, true
}

func (e *Entry) SetExplicit(explicit bool) { e.explicit = &explicit }

func (e *Entry) ClearExplicit() { e.explicit = nil }

// ClosedCaptioned reports whether the video has embedded captions.
func (e *Entry) ClosedCaptioned() (captioned, ok bool) {
	if e.closedCaptioned == nil {
		return false, false
	}
	return *e.closedCaptioned, true
}

func (e *Entry) SetClosedCaptioned(captioned bool) { e.closedCaptioned = &captioned }

func (e *Entry) Subtitle() string { return e.subtitle }

func (e *Entry) SetSubtitle(s string) { e.subtitle = s }

// WithholdFromITunes hides this episode in the iTunes directory.
func (e *Entry) WithholdFromITunes() bool { return e.withhold }

func (e *Entry) SetWithholdFromITunes(block bool) { e.withhold = block }

// Position overrides the episode order in iTunes. Zero means unset.
func (e *Entry) Position() int { return e.position }

func (e *Entry) SetPosition(pos int) { e.position = max(pos, 0) }

// formatDuration renders H:MM:SS.
func formatDuration(d time.Duration) string {
	total := int64(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

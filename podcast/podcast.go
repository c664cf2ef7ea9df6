// Package podcast builds RSS 2.0 feeds with iTunes, Dublin Core, Atom and
// Content extensions from a typed model.
//
// A Podcast is created empty with New and filled through its setters. Setters
// validate immediately and never store a rejected value. Rendering rebuilds the
// whole document from the current state on every call; optional groups that
// are not set are simply left out.
package podcast

import (
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/oops"
	"golang.org/x/text/language"
)

var feedURLSchemes = []string{"http", "https", "ftp", "news"}

// Podcast is one feed: the channel metadata plus its entries.
type Podcast struct {
	title       string
	link        string
	description string
	language    string
	copyright   string
	docs        string
	feedURL     string

	generator string

	authors   []Person
	webMaster *Person
	cloud     *Cloud

	skipHours map[int]struct{}
	skipDays  map[Weekday]struct{}

	lastBuildDate   channelDate
	publicationDate channelDate

	explicit       *bool
	image          string
	iTunesCategory *ITunesCategory
	complete       *bool
	newFeedURL     string
	owner          *Person
	subtitle       string
	withhold       bool

	entries []*Entry
}

// New returns an empty podcast.
func New() *Podcast {
	return &Podcast{
		generator: librarySignature(),
		skipHours: map[int]struct{}{},
		skipDays:  map[Weekday]struct{}{},
	}
}

// Title is the name of the channel.
func (p *Podcast) Title() string { return p.title }
func (p *Podcast) SetTitle(t string) { p.title = t }
func (p *Podcast) Link() string { return p.link }
func (p *Podcast) SetLink(l string) { p.link = l }
func (p *Podcast) Description() string { return p.description }
func (p *Podcast) SetDescription(d string) { p.description = d }
func (p *Podcast) Copyright() string { return p.copyright }
func (p *Podcast) SetCopyright(c string) { p.copyright = c }

// Docs points to the documentation of the format used.
func (p *Podcast) Docs() string { return p.docs }
func (p *Podcast) SetDocs(d string) { p.docs = d }

// Language returns the canonical BCP 47 tag, or "".
func (p *Podcast) Language() string { return p.language }

// SetLanguage validates and canonicalizes a language tag, "en-us" becomes
// "en-US". An empty string clears it.
func (p *Podcast) SetLanguage(tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		p.language = ""
		return nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return oops.In("podcast").With("language", tag).Wrap(ErrInvalidLanguage)
	}
	p.language = t.String()
	return nil
}

// FeedURL is where the feed itself is served, used for the Atom self link.
func (p *Podcast) FeedURL() string { return p.feedURL }

// SetFeedURL requires an absolute URL with an http, https, ftp or news
// scheme. An empty string clears it.
func (p *Podcast) SetFeedURL(raw string) error {
	if raw == "" {
		p.feedURL = ""
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || !lo.Contains(feedURLSchemes, strings.ToLower(u.Scheme)) || u.Host == "" {
		return oops.In("podcast").With("feed_url", raw).Wrap(ErrInvalidFeedURL)
	}
	p.feedURL = raw
	return nil
}

// Generator returns the text of the generator element.
func (p *Podcast) Generator() string { return p.generator }

// SetGenerator names the software producing the feed. Unless excludeSelf is
// set, this library is credited after it. An empty name restores the default.
func (p *Podcast) SetGenerator(name string, excludeSelf bool) {
	switch {
	case name == "":
		p.generator = librarySignature()
	case excludeSelf:
		p.generator = name
	default:
		p.generator = name + " (using " + librarySignature() + ")"
	}
}

// Authors returns a copy of the channel authors in insertion order.
func (p *Podcast) Authors() []Person { return slices.Clone(p.authors) }

// AddAuthor appends authors. Nothing is stored if any of them is empty.
func (p *Podcast) AddAuthor(people ...Person) error {
	if err := validatePeople(people); err != nil {
		return oops.In("podcast").With("field", "authors").Wrap(err)
	}
	p.authors = append(p.authors, people...)
	return nil
}

// SetAuthors replaces all authors.
func (p *Podcast) SetAuthors(people ...Person) error {
	if err := validatePeople(people); err != nil {
		return oops.In("podcast").With("field", "authors").Wrap(err)
	}
	p.authors = slices.Clone(people)
	return nil
}

// WebMaster returns the person responsible for technical issues.
func (p *Podcast) WebMaster() (Person, bool) {
	if p.webMaster == nil {
		return Person{}, false
	}
	return *p.webMaster, true
}

// SetWebMaster requires a person with an email.
func (p *Podcast) SetWebMaster(person Person) error {
	if person.Email == "" {
		return oops.In("podcast").With("name", person.Name).Wrap(ErrWebMasterEmail)
	}
	p.webMaster = &person
	return nil
}

func (p *Podcast) ClearWebMaster() { p.webMaster = nil }

// Cloud returns the rssCloud settings if they are set.
func (p *Podcast) Cloud() (Cloud, bool) {
	if p.cloud == nil {
		return Cloud{}, false
	}
	return *p.cloud, true
}

// SetCloud stores the settings only if every field is present. On error the
// previous value is kept.
func (p *Podcast) SetCloud(c Cloud) error {
	if !c.complete() {
		return oops.In("podcast").With("domain", c.Domain, "port", c.Port).Wrap(ErrIncompleteCloud)
	}
	p.cloud = &c
	return nil
}

func (p *Podcast) ClearCloud() { p.cloud = nil }

// SkipHours returns the hours in ascending order.
func (p *Podcast) SkipHours() []int {
	hours := lo.Keys(p.skipHours)
	slices.Sort(hours)
	return hours
}

// AddSkipHours adds hours (0-23) to the set.
func (p *Podcast) AddSkipHours(hours ...int) error {
	for _, h := range hours {
		if h < 0 || h > 23 {
			return oops.In("podcast").With("hour", h).Wrap(ErrInvalidHour)
		}
	}
	for _, h := range hours {
		p.skipHours[h] = struct{}{}
	}
	return nil
}

// SetSkipHours replaces the set.
func (p *Podcast) SetSkipHours(hours ...int) error {
	old := p.skipHours
	p.skipHours = map[int]struct{}{}
	if err := p.AddSkipHours(hours...); err != nil {
		p.skipHours = old
		return err
	}
	return nil
}

// SkipDays returns the days in week order, Monday first.
func (p *Podcast) SkipDays() []Weekday {
	days := lo.Keys(p.skipDays)
	slices.SortFunc(days, func(a, b Weekday) int { return a.order() - b.order() })
	return days
}

// AddSkipDays adds day names to the set. Names are matched case-insensitively
// and stored capitalized.
func (p *Podcast) AddSkipDays(days ...string) error {
	parsed := make([]Weekday, 0, len(days))
	for _, d := range days {
		w, err := ParseWeekday(strings.TrimSpace(d))
		if err != nil {
			return oops.In("podcast").With("day", d).Wrap(ErrInvalidDay)
		}
		parsed = append(parsed, w)
	}
	for _, w := range parsed {
		p.skipDays[w] = struct{}{}
	}
	return nil
}

// SetSkipDays replaces the set.
func (p *Podcast) SetSkipDays(days ...string) error {
	old := p.skipDays
	p.skipDays = map[Weekday]struct{}{}
	if err := p.AddSkipDays(days...); err != nil {
		p.skipDays = old
		return err
	}
	return nil
}

// LastBuildDate returns the stored value and how it is rendered. With
// DateDefault the time of rendering is used.
func (p *Podcast) LastBuildDate() (time.Time, DateMode) {
	return p.lastBuildDate.at, p.lastBuildDate.mode
}

func (p *Podcast) SetLastBuildDate(t time.Time) error {
	if err := p.lastBuildDate.set(t); err != nil {
		return oops.In("podcast").With("field", "last_build_date").Wrap(err)
	}
	return nil
}

// OmitLastBuildDate leaves lastBuildDate out of the feed.
func (p *Podcast) OmitLastBuildDate() { p.lastBuildDate.omit() }

// ResetLastBuildDate goes back to rendering the current time.
func (p *Podcast) ResetLastBuildDate() { p.lastBuildDate.reset() }

// PublicationDate returns the stored value and how it is rendered. With
// DateDefault the newest entry publication date is used.
func (p *Podcast) PublicationDate() (time.Time, DateMode) {
	return p.publicationDate.at, p.publicationDate.mode
}

func (p *Podcast) SetPublicationDate(t time.Time) error {
	if err := p.publicationDate.set(t); err != nil {
		return oops.In("podcast").With("field", "pub_date").Wrap(err)
	}
	return nil
}

func (p *Podcast) OmitPublicationDate() { p.publicationDate.omit() }
func (p *Podcast) ResetPublicationDate() { p.publicationDate.reset() }

// Explicit reports the parental advisory flag and whether it was set.
func (p *Podcast) Explicit() (explicit, ok bool) {
	if p.explicit == nil {
		return false, false
	}
	return *p.explicit, true
}

func (p *Podcast) SetExplicit(explicit bool) { p.explicit = &explicit }
func (p *Podcast) ClearExplicit() { p.explicit = nil }

// Image is the cover art URL.
func (p *Podcast) Image() string { return p.image }

// SetImage requires a .jpg, .jpeg or .png URL. An empty string clears it.
func (p *Podcast) SetImage(u string) error {
	if err := validateImage(u); err != nil {
		return err
	}
	p.image = u
	return nil
}

// ITunesCategory returns the directory category.
func (p *Podcast) ITunesCategory() (ITunesCategory, bool) {
	if p.iTunesCategory == nil {
		return ITunesCategory{}, false
	}
	return *p.iTunesCategory, true
}

// SetITunesCategory validates against the iTunes category list.
func (p *Podcast) SetITunesCategory(category, subcategory string) error {
	c, err := NewITunesCategory(category, subcategory)
	if err != nil {
		return oops.In("podcast").With("category", category, "subcategory", subcategory).Wrap(err)
	}
	p.iTunesCategory = &c
	return nil
}

// Complete reports whether no more episodes will be published.
func (p *Podcast) Complete() (complete, ok bool) {
	if p.complete == nil {
		return false, false
	}
	return *p.complete, true
}

func (p *Podcast) SetComplete(complete bool) { p.complete = &complete }

// NewFeedURL announces that the feed moved.
func (p *Podcast) NewFeedURL() string { return p.newFeedURL }
func (p *Podcast) SetNewFeedURL(u string) { p.newFeedURL = u }

// Owner is the contact for directory staff.
func (p *Podcast) Owner() (Person, bool) {
	if p.owner == nil {
		return Person{}, false
	}
	return *p.owner, true
}

// SetOwner requires both name and email.
func (p *Podcast) SetOwner(person Person) error {
	if person.Name == "" || person.Email == "" {
		return oops.In("podcast").With("name", person.Name, "email", person.Email).Wrap(ErrIncompleteOwner)
	}
	p.owner = &person
	return nil
}

func (p *Podcast) Subtitle() string { return p.subtitle }
func (p *Podcast) SetSubtitle(s string) { p.subtitle = s }

// WithholdFromITunes keeps the podcast out of the iTunes directory.
func (p *Podcast) WithholdFromITunes() bool { return p.withhold }
func (p *Podcast) SetWithholdFromITunes(block bool) { p.withhold = block }

func validateImage(u string) error {
	if u == "" {
		return nil
	}
	lower := strings.ToLower(u)
	if !strings.HasSuffix(lower, ".jpg") && !strings.HasSuffix(lower, ".jpeg") && !strings.HasSuffix(lower, ".png") {
		return oops.In("podcast").With("image", u).Wrap(ErrInvalidImage)
	}
	return nil
}

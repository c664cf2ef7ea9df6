package podcast

import (
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/samber/oops"

	"github.com/reshetovitsme/podcast-feed/internal/xmltree"
)

const (
	nsAtom    = "http://www.w3.org/2005/Atom"
	nsContent = "http://purl.org/rss/1.0/modules/content/"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsITunes  = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	nsPSC     = "http://podlove.org/simple-chapters"
)

const pscVersion = "1.2"

const (
	tagITunesAuthor = "itunes:author"
	tagDCCreator    = "dc:creator"
)

const rssMediaType = "application/rss+xml"

// build creates the complete rss element tree from the current state.
func (p *Podcast) build() (*xmltree.Element, error) {
	if p.title == "" && p.link == "" && p.description == "" {
		return nil, oops.In("podcast").Wrap(ErrMissingRequired)
	}

	rss := xmltree.New("rss").
		SetAttr("version", "2.0").
		SetAttr("xmlns:atom", nsAtom).
		SetAttr("xmlns:content", nsContent).
		SetAttr("xmlns:dc", nsDC).
		SetAttr("xmlns:itunes", nsITunes).
		SetAttr("xmlns:psc", nsPSC)
	channel := rss.Add("channel")

	addOptional(channel, "title", p.title)
	addOptional(channel, "link", p.link)
	addOptional(channel, "description", p.description)
	if p.explicit != nil {
		channel.AddText("itunes:explicit", yesNo(*p.explicit))
	}
	if p.cloud != nil {
		cloud := channel.Add("cloud")
		for _, kv := range p.cloud.attrs() {
			cloud.SetAttr(kv[0], kv[1])
		}
	}
	addOptional(channel, "copyright", p.copyright)
	addOptional(channel, "docs", p.docs)
	channel.AddText("generator", p.generator)
	addOptional(channel, "language", p.language)

	switch p.lastBuildDate.mode {
	case DateDefault:
		channel.AddText("lastBuildDate", formatRFC2822(nowFunc()))
	case DateExplicit:
		channel.AddText("lastBuildDate", formatRFC2822(p.lastBuildDate.at))
	}

	appendAuthors(channel, p.authors, "managingEditor")

	if pub, ok := p.effectivePublicationDate(); ok {
		channel.AddText("pubDate", formatRFC2822(pub))
	}

	if hours := p.SkipHours(); len(hours) > 0 {
		skip := channel.Add("skipHours")
		for _, h := range hours {
			skip.AddText("hour", strconv.Itoa(h))
		}
	}
	if days := p.SkipDays(); len(days) > 0 {
		skip := channel.Add("skipDays")
		for _, d := range days {
			skip.AddText("day", d.String())
		}
	}
	if p.webMaster != nil {
		channel.AddText("webMaster", p.webMaster.editorString())
	}

	if p.withhold {
		channel.AddText("itunes:block", "yes")
	}
	if p.iTunesCategory != nil {
		cat := channel.Add("itunes:category").SetAttr("text", p.iTunesCategory.Category)
		if p.iTunesCategory.Subcategory != "" {
			cat.Add("itunes:category").SetAttr("text", p.iTunesCategory.Subcategory)
		}
	}
	if p.image != "" {
		channel.Add("itunes:image").SetAttr("href", p.image)
	}
	if p.complete != nil {
		channel.AddText("itunes:complete", yesNo(*p.complete))
	}
	addOptional(channel, "itunes:new-feed-url", p.newFeedURL)
	if p.owner != nil {
		owner := channel.Add("itunes:owner")
		owner.AddText("itunes:name", p.owner.Name)
		owner.AddText("itunes:email", p.owner.Email)
	}
	addOptional(channel, "itunes:subtitle", p.subtitle)

	if p.feedURL != "" {
		channel.Add("atom:link").
			SetAttr("href", p.feedURL).
			SetAttr("rel", "self").
			SetAttr("type", rssMediaType)
	}

	for i, e := range p.entries {
		item, err := e.build()
		if err != nil {
			return nil, oops.In("podcast").With("entry", i).Wrap(err)
		}
		channel.Append(item)
	}
	return rss, nil
}

// effectivePublicationDate falls back to the newest entry when no date was
// set explicitly.
func (p *Podcast) effectivePublicationDate() (time.Time, bool) {
	switch p.publicationDate.mode {
	case DateExplicit:
		return p.publicationDate.at, true
	case DateOmitted:
		return time.Time{}, false
	}
	dated := lo.Filter(p.entries, func(e *Entry, _ int) bool { return !e.published.IsZero() })
	if len(dated) == 0 {
		return time.Time{}, false
	}
	newest := lo.MaxBy(dated, func(a, b *Entry) bool { return a.published.After(b.published) })
	return newest.published, true
}

func addOptional(parent *xmltree.Element, tag, text string) {
	if text != "" {
		parent.AddText(tag, text)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

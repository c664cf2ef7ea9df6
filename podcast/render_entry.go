package podcast

import (
	"strconv"

	"github.com/samber/oops"

	"github.com/reshetovitsme/podcast-feed/internal/xmltree"
)

func (e *Entry) build() (*xmltree.Element, error) {
	if e.title == "" && e.description == "" && e.content == "" {
		return nil, oops.In("entry").With("guid", e.guid, "link", e.link).Wrap(ErrEmptyEntry)
	}

	item := xmltree.New("item")
	addOptional(item, "title", e.title)
	addOptional(item, "link", e.link)
	if e.description != "" {
		item.AddText("description", e.description)
		addOptional(item, "content:encoded", e.content)
	} else {
		addOptional(item, "description", e.content)
	}

	appendAuthors(item, e.authors, "author")

	if guid, permaLink, ok := e.effectiveGUID(); ok {
		item.AddText("guid", guid).SetAttr("isPermaLink", strconv.FormatBool(permaLink))
	}

	for _, c := range e.categories {
		cat := item.AddText("category", c.text())
		if c.Scheme != "" {
			cat.SetAttr("domain", c.Scheme)
		}
	}
	addOptional(item, "comments", e.comments)

	if e.enclosure != nil {
		item.Add("enclosure").
			SetAttr("url", e.enclosure.URL).
			SetAttr("length", strconv.FormatInt(e.enclosure.Length, 10)).
			SetAttr("type", e.enclosure.Type)
	}
	if !e.published.IsZero() {
		item.AddText("pubDate", formatRFC2822(e.published))
	}

	if e.withhold {
		item.AddText("itunes:block", "yes")
	}
	if e.image != "" {
		item.Add("itunes:image").SetAttr("href", e.image)
	}
	if e.duration > 0 {
		item.AddText("itunes:duration", formatDuration(e.duration))
	}
	if e.explicit != nil {
		item.AddText("itunes:explicit", yesNo(*e.explicit))
	}
	if e.closedCaptioned != nil {
		item.AddText("itunes:isClosedCaptioned", yesNo(*e.closedCaptioned))
	}
	if e.position > 0 {
		item.AddText("itunes:order", strconv.Itoa(e.position))
	}
	addOptional(item, "itunes:subtitle", e.subtitle)

	if len(e.chapters) > 0 {
		chapters := item.Add("psc:chapters").SetAttr("version", pscVersion)
		for _, c := range e.chapters {
			ch := chapters.Add("psc:chapter").
				SetAttr("start", formatChapterStart(c.Start)).
				SetAttr("title", c.Title)
			if c.Link != "" {
				ch.SetAttr("href", c.Link)
			}
			if c.Image != "" {
				ch.SetAttr("image", c.Image)
			}
		}
	}
	return item, nil
}

// effectiveGUID picks the explicit guid, then the link, then the media URL.
// Only the link is a permalink.
func (e *Entry) effectiveGUID() (guid string, permaLink, ok bool) {
	switch {
	case e.omitGUID:
		return "", false, false
	case e.guid != "":
		return e.guid, false, true
	case e.link != "":
		return e.link, true, true
	case e.enclosure != nil:
		return e.enclosure.URL, false, true
	}
	return "", false, false
}

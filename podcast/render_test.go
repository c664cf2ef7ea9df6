package podcast

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/podcast-feed/internal/xmltree"
)

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func freezeTime(t *testing.T) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return fixedNow }
	t.Cleanup(func() { nowFunc = prev })
}

func newTestPodcast() *Podcast {
	p := New()
	p.SetTitle("Test Show")
	p.SetLink("https://example.org")
	p.SetDescription("A show about tests")
	return p
}

func buildChannel(t *testing.T, p *Podcast) *xmltree.Element {
	t.Helper()
	root, err := p.build()
	require.NoError(t, err)
	ch := root.Find("channel")
	require.NotNil(t, ch)
	return ch
}

func tags(e *xmltree.Element) []string {
	return lo.Map(e.Children, func(c *xmltree.Element, _ int) string { return c.Tag })
}

func texts(els []*xmltree.Element) []string {
	return lo.Map(els, func(c *xmltree.Element, _ int) string { return c.Text })
}

func TestBuild_Root(t *testing.T) {
	freezeTime(t)
	root, err := newTestPodcast().build()
	require.NoError(t, err)

	assert.Equal(t, "rss", root.Tag)
	for name, want := range map[string]string{
		"version":       "2.0",
		"xmlns:atom":    nsAtom,
		"xmlns:content": nsContent,
		"xmlns:dc":      nsDC,
		"xmlns:itunes":  nsITunes,
		"xmlns:psc":     nsPSC,
	} {
		got, ok := root.Attr(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestBuild_MinimalChannel(t *testing.T) {
	freezeTime(t)
	ch := buildChannel(t, newTestPodcast())

	assert.Equal(t, []string{"title", "link", "description", "generator", "lastBuildDate"}, tags(ch))
	assert.Equal(t, "Tue, 02 Jan 2024 03:04:05 +0000", ch.Find("lastBuildDate").Text)
}

func TestBuild_MissingRequired(t *testing.T) {
	_, err := New().build()
	assert.True(t, errors.Is(err, ErrMissingRequired))

	p := New()
	p.SetTitle("Only a title")
	_, err = p.build()
	assert.NoError(t, err)
}

func TestBuild_ChannelOrder(t *testing.T) {
	freezeTime(t)
	p := newTestPodcast()
	p.SetExplicit(true)
	require.NoError(t, p.SetCloud(Cloud{Domain: "rpc.example.org", Port: 80, Path: "/RPC2", RegisterProcedure: "pingMe", Protocol: "soap"}))
	p.SetCopyright("CC BY")
	p.SetDocs("https://www.rssboard.org/rss-specification")
	require.NoError(t, p.SetLanguage("nb-no"))
	require.NoError(t, p.AddAuthor(Person{Email: "editor@example.org"}))
	require.NoError(t, p.SetPublicationDate(fixedNow.Add(-time.Hour)))
	require.NoError(t, p.AddSkipHours(1))
	require.NoError(t, p.AddSkipDays("friday"))
	require.NoError(t, p.SetWebMaster(Person{Email: "web@example.org"}))
	p.SetWithholdFromITunes(true)
	require.NoError(t, p.SetITunesCategory("Technology", ""))
	require.NoError(t, p.SetImage("https://example.org/cover.png"))
	p.SetComplete(false)
	p.SetNewFeedURL("https://new.example.org/feed")
	require.NoError(t, p.SetOwner(Person{Name: "Owner", Email: "owner@example.org"}))
	p.SetSubtitle("Sub")
	require.NoError(t, p.SetFeedURL("https://example.org/feed.rss"))
	p.AddEntry(titledEntry("Episode"))

	ch := buildChannel(t, p)
	assert.Equal(t, []string{
		"title", "link", "description", "itunes:explicit", "cloud", "copyright", "docs",
		"generator", "language", "lastBuildDate", "managingEditor", "pubDate", "skipHours",
		"skipDays", "webMaster", "itunes:block", "itunes:category", "itunes:image",
		"itunes:complete", "itunes:new-feed-url", "itunes:owner", "itunes:subtitle",
		"atom:link", "item",
	}, tags(ch))

	cloud := ch.Find("cloud")
	assert.Equal(t, []xmltree.Attr{
		{Name: "domain", Value: "rpc.example.org"},
		{Name: "port", Value: "80"},
		{Name: "path", Value: "/RPC2"},
		{Name: "registerProcedure", Value: "pingMe"},
		{Name: "protocol", Value: "soap"},
	}, cloud.Attrs)

	assert.Equal(t, "nb-NO", ch.Find("language").Text)
	assert.Equal(t, "yes", ch.Find("itunes:explicit").Text)
	assert.Equal(t, "no", ch.Find("itunes:complete").Text)
	assert.Equal(t, "web@example.org", ch.Find("webMaster").Text)
	assert.Equal(t, []string{"itunes:name", "itunes:email"}, tags(ch.Find("itunes:owner")))

	self := ch.Find("atom:link")
	assert.Equal(t, []xmltree.Attr{
		{Name: "href", Value: "https://example.org/feed.rss"},
		{Name: "rel", Value: "self"},
		{Name: "type", Value: "application/rss+xml"},
	}, self.Attrs)
}

func TestBuild_AuthorModes(t *testing.T) {
	freezeTime(t)

	t.Run("editor", func(t *testing.T) {
		p := newTestPodcast()
		require.NoError(t, p.AddAuthor(Person{Email: "one@example.org"}, Person{Email: "two@example.org"}))
		ch := buildChannel(t, p)

		assert.Equal(t, []string{"one@example.org"}, texts(ch.FindAll("managingEditor")))
		assert.Nil(t, ch.Find("dc:creator"))
		assert.Nil(t, ch.Find("itunes:author"))
	})

	t.Run("creator", func(t *testing.T) {
		p := newTestPodcast()
		require.NoError(t, p.AddAuthor(
			Person{Name: "Ann", Email: "ann@example.org"},
			Person{Email: "anon@example.org"},
			Person{Name: "Bo"},
		))
		ch := buildChannel(t, p)

		assert.Nil(t, ch.Find("managingEditor"))
		assert.Equal(t, []string{"Ann and Bo"}, texts(ch.FindAll("itunes:author")))
		assert.Equal(t, []string{"Ann <ann@example.org>", "anon@example.org", "Bo"}, texts(ch.FindAll("dc:creator")))
	})

	t.Run("none", func(t *testing.T) {
		ch := buildChannel(t, newTestPodcast())
		assert.Nil(t, ch.Find("managingEditor"))
		assert.Nil(t, ch.Find("dc:creator"))
	})
}

func TestBuild_LastBuildDate(t *testing.T) {
	freezeTime(t)
	p := newTestPodcast()

	require.NoError(t, p.SetLastBuildDate(time.Date(2020, 5, 17, 12, 0, 0, 0, time.FixedZone("", 2*3600))))
	assert.Equal(t, "Sun, 17 May 2020 12:00:00 +0200", buildChannel(t, p).Find("lastBuildDate").Text)

	p.OmitLastBuildDate()
	assert.Nil(t, buildChannel(t, p).Find("lastBuildDate"))

	p.ResetLastBuildDate()
	assert.Equal(t, "Tue, 02 Jan 2024 03:04:05 +0000", buildChannel(t, p).Find("lastBuildDate").Text)
}

func TestBuild_LastBuildDateParsesBack(t *testing.T) {
	p := newTestPodcast()

	at := time.Date(2021, 11, 30, 18, 45, 10, 0, time.FixedZone("", -5*3600))
	require.NoError(t, p.SetLastBuildDate(at))
	parsed, err := ParseTime(buildChannel(t, p).Find("lastBuildDate").Text)
	require.NoError(t, err)
	assert.True(t, at.Equal(parsed), "got %s", parsed)

	p.ResetLastBuildDate()
	parsed, err = ParseTime(buildChannel(t, p).Find("lastBuildDate").Text)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 5*time.Second)
}

func TestBuild_PublicationDateDefaultsToNewestEntry(t *testing.T) {
	freezeTime(t)
	p := newTestPodcast()
	assert.Nil(t, buildChannel(t, p).Find("pubDate"))

	older, newer := titledEntry("old"), titledEntry("new")
	require.NoError(t, older.SetPublished(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, newer.SetPublished(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)))
	p.AddEntry(newer)
	p.AddEntry(older)
	p.AddEntry(titledEntry("undated"))

	assert.Equal(t, "Thu, 01 Jun 2023 00:00:00 +0000", buildChannel(t, p).Find("pubDate").Text)

	p.OmitPublicationDate()
	assert.Nil(t, buildChannel(t, p).Find("pubDate"))
}

func TestBuild_SkipGroups(t *testing.T) {
	freezeTime(t)
	p := newTestPodcast()
	require.NoError(t, p.AddSkipHours(23, 0, 5))
	require.NoError(t, p.AddSkipDays("sunday", "monday"))

	ch := buildChannel(t, p)
	assert.Equal(t, []string{"0", "5", "23"}, texts(ch.Find("skipHours").Children))
	assert.Equal(t, []string{"Monday", "Sunday"}, texts(ch.Find("skipDays").Children))
}

func TestBuild_EntryError(t *testing.T) {
	freezeTime(t)
	p := newTestPodcast()
	p.AddEntry(NewEntry())

	_, err := p.build()
	assert.True(t, errors.Is(err, ErrEmptyEntry))
}

func TestBuild_ITunesCategory(t *testing.T) {
	freezeTime(t)
	p := newTestPodcast()
	require.NoError(t, p.SetITunesCategory("Arts", "Food"))

	cat := buildChannel(t, p).Find("itunes:category")
	text, _ := cat.Attr("text")
	assert.Equal(t, "Arts", text)
	sub := cat.Find("itunes:category")
	require.NotNil(t, sub)
	text, _ = sub.Attr("text")
	assert.Equal(t, "Food", text)
}

func TestBuild_GeneratorAlwaysPresent(t *testing.T) {
	freezeTime(t)
	p := newTestPodcast()
	p.SetGenerator("Custom", true)
	assert.Equal(t, "Custom", buildChannel(t, p).Find("generator").Text)
	assert.False(t, strings.Contains(buildChannel(t, p).Find("generator").Text, LibraryName))
}

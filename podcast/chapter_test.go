package podcast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/podcast-feed/internal/xmltree"
)

func TestNewChapter(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Duration
		title   string
		link    string
		image   string
		want    Chapter
		wantErr bool
	}{
		{
			name:  "title only",
			start: 15 * time.Second,
			title: "Intro",
			want:  Chapter{Start: 15 * time.Second, Title: "Intro"},
		},
		{
			name:  "all fields trimmed",
			start: 42*time.Minute + 3*time.Second,
			title: " Podlove ",
			link:  " https://podlove.org ",
			image: "https://example.org/images/podlove.png",
			want: Chapter{
				Start: 42*time.Minute + 3*time.Second,
				Title: "Podlove",
				Link:  "https://podlove.org",
				Image: "https://example.org/images/podlove.png",
			},
		},
		{name: "zero start", start: 0, title: "Start", want: Chapter{Title: "Start"}},
		{name: "empty title", start: time.Second, title: "  ", wantErr: true},
		{name: "negative start", start: -time.Second, title: "Before", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewChapter(tt.start, tt.title, tt.link, tt.image)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidChapter))
				assert.True(t, errors.Is(err, ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatChapterStart(t *testing.T) {
	tests := map[time.Duration]string{
		0:                                  "00:00:00.000",
		15 * time.Second:                   "00:00:15.000",
		42*time.Minute + 3*time.Second:     "00:42:03.000",
		time.Hour + 1500*time.Millisecond:  "01:00:01.500",
		26*time.Hour + 7*time.Millisecond:  "26:00:00.007",
		999*time.Microsecond + time.Minute: "00:01:00.001",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatChapterStart(in), in.String())
	}
}

func TestEntry_Chapters(t *testing.T) {
	intro, err := NewChapter(0, "Intro", "", "")
	require.NoError(t, err)
	main, err := NewChapter(90*time.Second, "Main", "https://example.org/main", "https://example.org/main.jpg")
	require.NoError(t, err)

	e := titledEntry("x")
	require.NoError(t, e.AddChapter(intro))
	require.NoError(t, e.AddChapter(main))
	assert.Equal(t, []Chapter{intro, main}, e.Chapters())

	err = e.AddChapter(Chapter{Title: "ok"}, Chapter{Start: time.Second})
	assert.True(t, errors.Is(err, ErrInvalidChapter))
	assert.Len(t, e.Chapters(), 2)

	assert.True(t, errors.Is(e.SetChapters(Chapter{Start: -1, Title: "bad"}), ErrInvalidChapter))
	assert.Len(t, e.Chapters(), 2)

	item := mustBuild(t, e)
	assert.Equal(t, "psc:chapters", item.Children[len(item.Children)-1].Tag)
	chapters := item.Find("psc:chapters")
	version, _ := chapters.Attr("version")
	assert.Equal(t, "1.2", version)

	got := chapters.FindAll("psc:chapter")
	require.Len(t, got, 2)
	assert.Equal(t, []xmltree.Attr{
		{Name: "start", Value: "00:00:00.000"},
		{Name: "title", Value: "Intro"},
	}, got[0].Attrs)
	assert.Equal(t, []xmltree.Attr{
		{Name: "start", Value: "00:01:30.000"},
		{Name: "title", Value: "Main"},
		{Name: "href", Value: "https://example.org/main"},
		{Name: "image", Value: "https://example.org/main.jpg"},
	}, got[1].Attrs)

	require.NoError(t, e.SetChapters())
	assert.Empty(t, e.Chapters())
	assert.Nil(t, mustBuild(t, e).Find("psc:chapters"))
}

package podcast

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/oops"
)

// Chapter marks a section of an episode in Podlove Simple Chapters. Start is
// the offset from the beginning of the episode.
type Chapter struct {
	Start time.Duration
	Title string
	Link  string
	Image string
}

// NewChapter requires a title and a non-negative start.
func NewChapter(start time.Duration, title, link, image string) (Chapter, error) {
	c := Chapter{
		Start: start,
		Title: strings.TrimSpace(title),
		Link:  strings.TrimSpace(link),
		Image: strings.TrimSpace(image),
	}
	if err := c.validate(); err != nil {
		return Chapter{}, oops.In("chapter").With("start", start, "title", title).Wrap(err)
	}
	return c, nil
}

func (c Chapter) validate() error {
	if c.Title == "" || c.Start < 0 {
		return ErrInvalidChapter
	}
	return nil
}

func validateChapters(chapters []Chapter) error {
	for _, c := range chapters {
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}

// formatChapterStart renders the normal play time form HH:MM:SS.mmm.
func formatChapterStart(d time.Duration) string {
	ms := int64(d.Round(time.Millisecond) / time.Millisecond)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", ms/3_600_000, ms/60_000%60, ms/1000%60, ms%1000)
}

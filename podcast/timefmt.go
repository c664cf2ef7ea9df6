package podcast

import (
	"time"

	"github.com/spf13/cast"
)

// DateMode tells how a channel date is rendered.
type DateMode int

const (
	// DateDefault uses the field's default (now for lastBuildDate, the newest
	// entry for pubDate).
	DateDefault DateMode = iota
	// DateExplicit uses the stored timestamp.
	DateExplicit
	// DateOmitted leaves the element out.
	DateOmitted
)

// nowFunc is replaced in tests.
var nowFunc = time.Now

// formatRFC2822 renders dates the way RSS expects them.
func formatRFC2822(t time.Time) string {
	return t.Format(time.RFC1123Z)
}

// ParseTime accepts RFC 2822, RFC 3339 and the other layouts spf13/cast knows.
func ParseTime(v any) (time.Time, error) {
	return cast.ToTimeE(v)
}

// channelDate is a timestamp with an explicit "leave it out" state.
type channelDate struct {
	mode DateMode
	at   time.Time
}

func (d *channelDate) set(t time.Time) error {
	if t.IsZero() {
		return ErrZeroTime
	}
	d.mode, d.at = DateExplicit, t
	return nil
}

func (d *channelDate) omit()  { d.mode, d.at = DateOmitted, time.Time{} }
func (d *channelDate) reset() { d.mode, d.at = DateDefault, time.Time{} }

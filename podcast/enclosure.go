package podcast

import (
	"mime"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/docker/go-units"
	"github.com/samber/oops"
)

// Enclosure is a media file attached to an entry. It is stored as a whole or
// not at all.
type Enclosure struct {
	URL    string
	Length int64
	Type   string
}

// Media types podcast directories accept, keyed by file extension.
var podcastMediaTypes = map[string]string{
	"m4a":  "audio/x-m4a",
	"mp3":  "audio/mpeg",
	"mov":  "video/quicktime",
	"mp4":  "video/mp4",
	"m4v":  "video/x-m4v",
	"pdf":  "application/pdf",
	"epub": "document/x-epub",
}

// NewEnclosure builds an enclosure, detecting the media type from the URL's
// file extension when mediaType is empty.
func NewEnclosure(rawURL string, length int64, mediaType string) (Enclosure, error) {
	e := Enclosure{URL: strings.TrimSpace(rawURL), Length: length, Type: strings.ToLower(strings.TrimSpace(mediaType))}
	if e.URL == "" || e.Length < 0 {
		return Enclosure{}, oops.In("podcast").With("url", rawURL, "length", length).Wrap(ErrIncompleteEnclosure)
	}
	if e.Type == "" {
		e.Type = MediaTypeFor(e.URL)
	}
	if e.Type == "" {
		return Enclosure{}, oops.In("podcast").
			With("url", rawURL).
			Wrapf(ErrIncompleteEnclosure, "cannot detect media type, set it explicitly")
	}
	return e, nil
}

// MediaTypeFor guesses a media type from the extension of a URL path. It
// returns "" when the extension is unknown.
func MediaTypeFor(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if ext == "" {
		return ""
	}
	if t, ok := podcastMediaTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension("." + ext)
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

// ParseSize converts a file size to bytes. Plain numbers are bytes; kB, MB,
// GB and TB are decimal units while KiB, MiB, GiB and TiB are binary.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, oops.In("podcast").With("size", s).Wrap(ErrInvalidSize)
		}
		return n, nil
	}

	var (
		n   int64
		err error
	)
	if strings.ContainsAny(s, "iI") {
		n, err = units.RAMInBytes(s)
	} else {
		n, err = units.FromHumanSize(s)
	}
	if err != nil || n < 0 {
		return 0, oops.In("podcast").With("size", s).Wrap(ErrInvalidSize)
	}
	return n, nil
}

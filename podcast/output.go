package podcast

import (
	"io"
	"log/slog"
	"os"

	"github.com/samber/oops"

	"github.com/reshetovitsme/podcast-feed/internal/xmltree"
)

// RenderOptions controls how the feed is serialized.
type RenderOptions struct {
	// Pretty indents nested elements by two spaces.
	Pretty bool
	// Declaration prepends the <?xml ...?> header.
	Declaration bool
	// Encoding is an IANA charset name. Empty means UTF-8.
	Encoding string
}

// DefaultRenderOptions is pretty UTF-8 with a declaration.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Pretty: true, Declaration: true, Encoding: xmltree.DefaultEncoding}
}

func (o RenderOptions) xml() xmltree.Options {
	return xmltree.Options{Pretty: o.Pretty, Declaration: o.Declaration, Encoding: o.Encoding}
}

// Bytes renders the feed.
func (p *Podcast) Bytes(opts RenderOptions) ([]byte, error) {
	root, err := p.build()
	if err != nil {
		return nil, err
	}
	return xmltree.Marshal(root, opts.xml())
}

// RenderString renders the feed as a string.
func (p *Podcast) RenderString(opts RenderOptions) (string, error) {
	data, err := p.Bytes(opts)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Encode writes the rendered feed to w.
func (p *Podcast) Encode(w io.Writer, opts RenderOptions) error {
	root, err := p.build()
	if err != nil {
		return err
	}
	if err := xmltree.Encode(w, root, opts.xml()); err != nil {
		return oops.In("podcast").Wrap(err)
	}
	return nil
}

// WriteFile renders the feed into the file at path, creating or truncating it.
func (p *Podcast) WriteFile(path string, opts RenderOptions) (err error) {
	data, err := p.Bytes(opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return oops.In("podcast").With("path", path).Wrap(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = oops.In("podcast").With("path", path).Wrapf(cerr, "close feed file")
		}
	}()

	if _, err = f.Write(data); err != nil {
		return oops.In("podcast").With("path", path).Wrap(err)
	}
	slog.Debug("feed written", "path", path, "bytes", len(data), "entries", len(p.entries))
	return nil
}

// String is the minimized UTF-8 document with a declaration. A feed that
// cannot be rendered yields an empty string.
func (p *Podcast) String() string {
	s, err := p.RenderString(RenderOptions{Declaration: true, Encoding: xmltree.DefaultEncoding})
	if err != nil {
		return ""
	}
	return s
}

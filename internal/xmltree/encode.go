package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"github.com/samber/oops"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when Options.Encoding is empty.
const DefaultEncoding = "UTF-8"

var ErrUnknownEncoding = errors.New("unknown output encoding")

// Options controls serialization.
type Options struct {
	Pretty      bool
	Declaration bool
	Encoding    string
}

// Marshal serializes root and everything below it.
func Marshal(root *Element, opts Options) ([]byte, error) {
	name := opts.Encoding
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, oops.In("xmltree").With("encoding", name).Wrap(ErrUnknownEncoding)
	}

	var buf bytes.Buffer
	if opts.Declaration {
		buf.WriteString("<?xml version='1.0' encoding='" + name + "'?>\n")
	}

	x := xml.NewEncoder(&buf)
	if opts.Pretty {
		x.Indent("", "  ")
	}
	if err := writeElement(x, root); err != nil {
		return nil, oops.In("xmltree").With("tag", root.Tag).Wrap(err)
	}
	if err := x.Flush(); err != nil {
		return nil, oops.In("xmltree").Wrap(err)
	}
	if opts.Pretty {
		buf.WriteByte('\n')
	}

	if enc == unicode.UTF8 {
		return buf.Bytes(), nil
	}
	// Characters the target charset cannot represent become numeric
	// character references, which any XML reader resolves.
	out, err := encoding.HTMLEscapeUnsupported(enc.NewEncoder()).Bytes(buf.Bytes())
	if err != nil {
		return nil, oops.In("xmltree").With("encoding", name).Wrap(err)
	}
	return out, nil
}

// Encode writes the serialized tree to w.
func Encode(w io.Writer, root *Element, opts Options) error {
	data, err := Marshal(root, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeElement(x *xml.Encoder, e *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := x.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := x.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := writeElement(x, c); err != nil {
			return err
		}
	}
	return x.EncodeToken(start.End())
}

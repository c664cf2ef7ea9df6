// Package xmltree is a small typed element tree that is built completely
// before it is handed to the serializer.
package xmltree

// Attr is a single attribute. Names may carry a namespace prefix ("xmlns:dc").
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the tree. Tag may carry a namespace prefix
// ("itunes:author"); the prefix must be declared on an ancestor.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// New creates a detached element.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// SetAttr sets an attribute, replacing an existing one with the same name
// while keeping its position.
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetText sets the character data of the element.
func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// Add creates a child element and appends it.
func (e *Element) Add(tag string) *Element {
	child := New(tag)
	e.Children = append(e.Children, child)
	return child
}

// AddText is Add followed by SetText.
func (e *Element) AddText(tag, text string) *Element {
	return e.Add(tag).SetText(text)
}

// Append attaches already built elements.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child with the given tag.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

package dom

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <button>, etc.
	KindText                    // Plain text node
	KindComment                 // <!-- ... -->
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Attribute is a single attribute. Attribute order is preserved so a
// parsed document round-trips without reshuffling.
type Attribute struct {
	Key   string
	Value string
}

// Element is a node in the document tree. Text and comment nodes reuse
// the type with Kind set accordingly and Text populated.
type Element struct {
	Kind     NodeKind
	Tag      string
	Text     string // for KindText and KindComment
	Parent   *Element
	Children []*Element

	attrs     []Attribute
	listeners []listener
}

// NewElement creates an element node with the given tag.
func NewElement(tag string) *Element {
	return &Element{Kind: KindElement, Tag: tag}
}

// Attr returns the attribute value and whether the attribute is present.
// The second return models attribute absence; an empty string with
// ok=true is a present-but-empty attribute, which is a different thing.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets an attribute, replacing an existing value in place.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.attrs {
		if a.Key == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attribute{Key: name, Value: value})
}

// RemoveAttr removes an attribute if present.
func (e *Element) RemoveAttr(name string) {
	for i, a := range e.attrs {
		if a.Key == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns the attributes in document order. The slice is shared;
// callers must not mutate it.
func (e *Element) Attrs() []Attribute {
	return e.attrs
}

// ID returns the id attribute, or "" if absent.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// AppendChild appends a child node and reparents it.
func (e *Element) AppendChild(child *Element) {
	if child == nil {
		return
	}
	child.Parent = e
	e.Children = append(e.Children, child)
}

// TextContent returns the concatenated text of this node and its
// descendants, in document order.
func (e *Element) TextContent() string {
	if e.Kind == KindText {
		return e.Text
	}
	var out string
	for _, c := range e.Children {
		out += c.TextContent()
	}
	return out
}

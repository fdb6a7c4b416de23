package dom

// Document wraps the root of an element tree and provides the two
// queries the binding pass needs: all elements carrying an attribute,
// and element by id.
type Document struct {
	Root *Element
}

// NewDocument creates a document with the given root element.
func NewDocument(root *Element) *Document {
	return &Document{Root: root}
}

// Walk visits every node in document order (depth-first, children in
// order). Returning false from fn stops the walk.
func (d *Document) Walk(fn func(*Element) bool) {
	if d == nil || d.Root == nil {
		return
	}
	walk(d.Root, fn)
}

func walk(e *Element, fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// ElementsWithAttr returns every element that has the named attribute,
// in document order. Presence is what qualifies; the value may be empty.
func (d *Document) ElementsWithAttr(name string) []*Element {
	var out []*Element
	d.Walk(func(e *Element) bool {
		if e.Kind == KindElement && e.HasAttr(name) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// ElementByID returns the first element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.Walk(func(e *Element) bool {
		if e.Kind == KindElement && e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

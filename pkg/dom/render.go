package dom

import (
	"io"
	"strings"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// rawTextElements keep their text children unescaped.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// Render serializes the document as HTML, with a doctype.
func (d *Document) Render(w io.Writer) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	return renderNode(w, d.Root, false)
}

// HTML returns the serialized document as a string.
func (d *Document) HTML() string {
	var b strings.Builder
	// strings.Builder writes cannot fail.
	_ = d.Render(&b)
	return b.String()
}

// OuterHTML returns the serialized subtree rooted at e.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	_ = renderNode(&b, e, false)
	return b.String()
}

func renderNode(w io.Writer, e *Element, raw bool) error {
	if e == nil {
		return nil
	}

	switch e.Kind {
	case KindText:
		if raw {
			_, err := io.WriteString(w, e.Text)
			return err
		}
		_, err := io.WriteString(w, escapeHTML(e.Text))
		return err

	case KindComment:
		if _, err := io.WriteString(w, "<!--"+e.Text+"-->"); err != nil {
			return err
		}
		return nil
	}

	if _, err := io.WriteString(w, "<"+e.Tag); err != nil {
		return err
	}
	for _, a := range e.attrs {
		if _, err := io.WriteString(w, " "+a.Key+`="`+escapeAttr(a.Value)+`"`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if IsVoidElement(e.Tag) {
		return nil
	}

	childRaw := rawTextElements[e.Tag]
	for _, c := range e.Children {
		if err := renderNode(w, c, childRaw); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// Whitespace characters that could break attribute parsing are also
// escaped.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

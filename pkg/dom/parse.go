package dom

import (
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads an HTML document and converts it into a Document.
// Attribute order is preserved. Script and style text is kept verbatim.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{Root: convert(root, nil)}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses an HTML document from a file.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// convert maps an html.Node subtree onto the dom tree. Document nodes
// collapse into their children; the <html> element becomes the root.
func convert(n *html.Node, parent *Element) *Element {
	switch n.Type {
	case html.DocumentNode:
		// The document node wraps doctype and <html>; return the
		// first element child as the root.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				return convert(c, nil)
			}
		}
		return NewElement("html")

	case html.ElementNode:
		e := NewElement(n.Data)
		e.Parent = parent
		for _, a := range n.Attr {
			e.attrs = append(e.attrs, Attribute{Key: a.Key, Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c, e); child != nil {
				e.Children = append(e.Children, child)
			}
		}
		return e

	case html.TextNode:
		return &Element{Kind: KindText, Text: n.Data, Parent: parent}

	case html.CommentNode:
		return &Element{Kind: KindComment, Text: n.Data, Parent: parent}

	default:
		return nil
	}
}

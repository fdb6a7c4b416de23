package dom

// createElement creates a new Element with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *Element, []*Element, string.
func createElement(tag string, args []any) *Element {
	e := NewElement(tag)

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if v.Key != "" {
				e.SetAttr(v.Key, v.Value)
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					e.SetAttr(a.Key, a.Value)
				}
			}

		case *Element:
			if v != nil {
				e.AppendChild(v)
			}

		case []*Element:
			for _, child := range v {
				if child != nil {
					e.AppendChild(child)
				}
			}

		case string:
			// Shorthand for text node
			e.AppendChild(&Element{Kind: KindText, Text: v})
		}
	}

	return e
}

// Text creates a text node.
func Text(content string) *Element {
	return &Element{Kind: KindText, Text: content}
}

// Comment creates a comment node.
func Comment(content string) *Element {
	return &Element{Kind: KindComment, Text: content}
}

// Document structure elements

func Html(args ...any) *Element  { return createElement("html", args) }
func Head(args ...any) *Element  { return createElement("head", args) }
func Body(args ...any) *Element  { return createElement("body", args) }
func Title(args ...any) *Element { return createElement("title", args) }
func Meta(args ...any) *Element  { return createElement("meta", args) }
func LinkEl(args ...any) *Element { return createElement("link", args) }

// Content sectioning elements

func Header(args ...any) *Element  { return createElement("header", args) }
func Footer(args ...any) *Element  { return createElement("footer", args) }
func Main(args ...any) *Element    { return createElement("main", args) }
func Nav(args ...any) *Element     { return createElement("nav", args) }
func Section(args ...any) *Element { return createElement("section", args) }
func Aside(args ...any) *Element   { return createElement("aside", args) }

// Text content elements

func Div(args ...any) *Element  { return createElement("div", args) }
func P(args ...any) *Element    { return createElement("p", args) }
func Span(args ...any) *Element { return createElement("span", args) }
func Pre(args ...any) *Element  { return createElement("pre", args) }
func Ul(args ...any) *Element   { return createElement("ul", args) }
func Li(args ...any) *Element   { return createElement("li", args) }
func H1(args ...any) *Element   { return createElement("h1", args) }
func H2(args ...any) *Element   { return createElement("h2", args) }
func H3(args ...any) *Element   { return createElement("h3", args) }

// Inline elements

func A(args ...any) *Element      { return createElement("a", args) }
func Strong(args ...any) *Element { return createElement("strong", args) }
func Em(args ...any) *Element     { return createElement("em", args) }
func Code(args ...any) *Element   { return createElement("code", args) }

// Form elements

func Form(args ...any) *Element     { return createElement("form", args) }
func Input(args ...any) *Element    { return createElement("input", args) }
func Button(args ...any) *Element   { return createElement("button", args) }
func Label(args ...any) *Element    { return createElement("label", args) }
func Select(args ...any) *Element   { return createElement("select", args) }
func Option(args ...any) *Element   { return createElement("option", args) }
func Textarea(args ...any) *Element { return createElement("textarea", args) }

// Script and style

func Script(args ...any) *Element  { return createElement("script", args) }
func StyleEl(args ...any) *Element { return createElement("style", args) }

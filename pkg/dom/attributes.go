package dom

import "strings"

// Attr is a single attribute for the element constructors.
type Attr struct {
	Key   string
	Value string
}

// attr creates an Attr with the given key and value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the
// style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(v string) Attr { return attr("value", v) }

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("panel", "left") produces data-panel="left".
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Binding attributes

// DefaultEventsAttr and DefaultHandlersAttr are the attribute names the
// binding pass scans for unless overridden.
const (
	DefaultEventsAttr   = "data-events"
	DefaultHandlersAttr = "data-handlers"
)

// Events declares the event-name list on an element.
// Example: Events("click", "focus") produces data-events="click, focus".
func Events(events ...string) Attr {
	return attr(DefaultEventsAttr, strings.Join(events, ", "))
}

// Handlers declares the handler-name list on an element, positionally
// paired with Events.
func Handlers(names ...string) Attr {
	return attr(DefaultHandlersAttr, strings.Join(names, ", "))
}

package dom

import (
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Panel</title></head>
<body>
  <button id="toggle" data-events="click, focus" data-handlers="onToggle, onFocus">Menu</button>
  <div class="panel" data-events="mouseenter" data-handlers="onHover"></div>
  <p>plain</p>
  <!-- note -->
</body>
</html>`

func TestParse(t *testing.T) {
	doc, err := ParseString(samplePage)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	t.Run("root is html", func(t *testing.T) {
		if doc.Root.Tag != "html" {
			t.Errorf("root tag = %q", doc.Root.Tag)
		}
	})

	t.Run("attributes preserved", func(t *testing.T) {
		btn := doc.ElementByID("toggle")
		if btn == nil {
			t.Fatal("button not found")
		}
		events, ok := btn.Attr("data-events")
		if !ok || events != "click, focus" {
			t.Errorf("data-events = %q, ok=%v", events, ok)
		}
		handlers, _ := btn.Attr("data-handlers")
		if handlers != "onToggle, onFocus" {
			t.Errorf("data-handlers = %q", handlers)
		}
	})

	t.Run("bindable elements in document order", func(t *testing.T) {
		els := doc.ElementsWithAttr("data-events")
		if len(els) != 2 {
			t.Fatalf("len = %d, want 2", len(els))
		}
		if els[0].Tag != "button" || els[1].Tag != "div" {
			t.Errorf("tags = [%s %s]", els[0].Tag, els[1].Tag)
		}
	})

	t.Run("text content", func(t *testing.T) {
		btn := doc.ElementByID("toggle")
		if got := btn.TextContent(); got != "Menu" {
			t.Errorf("TextContent = %q", got)
		}
	})
}

func TestParseFragmentRecovery(t *testing.T) {
	// x/net/html repairs partial documents; binding must still find
	// the annotated element.
	doc, err := ParseString(`<div data-events="click" data-handlers="go">hi</div>`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if got := len(doc.ElementsWithAttr("data-events")); got != 1 {
		t.Errorf("bindable elements = %d, want 1", got)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	doc, err := ParseString(samplePage)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	out := doc.HTML()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`data-events="click, focus"`,
		`data-handlers="onToggle, onFocus"`,
		"<!-- note -->",
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestRenderEscaping(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		e := Div(Text(`<script>alert("x")</script>`))
		out := e.OuterHTML()
		if strings.Contains(out, "<script>") {
			t.Errorf("text not escaped: %s", out)
		}
	})

	t.Run("attribute", func(t *testing.T) {
		e := Div(Attr{Key: "title", Value: `a"b`})
		out := e.OuterHTML()
		if !strings.Contains(out, "&quot;") {
			t.Errorf("attribute not escaped: %s", out)
		}
	})

	t.Run("script text kept raw", func(t *testing.T) {
		e := Script(Text("if (a < b) { go(); }"))
		out := e.OuterHTML()
		if !strings.Contains(out, "a < b") {
			t.Errorf("script text escaped: %s", out)
		}
	})

	t.Run("void element has no close tag", func(t *testing.T) {
		out := Input(Type("text")).OuterHTML()
		if strings.Contains(out, "</input>") {
			t.Errorf("void element closed: %s", out)
		}
	})
}

func TestBuilders(t *testing.T) {
	t.Run("events and handlers sugar", func(t *testing.T) {
		e := Button(Events("click", "focus"), Handlers("a", "b"))
		ev, _ := e.Attr(DefaultEventsAttr)
		if ev != "click, focus" {
			t.Errorf("events attr = %q", ev)
		}
		h, _ := e.Attr(DefaultHandlersAttr)
		if h != "a, b" {
			t.Errorf("handlers attr = %q", h)
		}
	})

	t.Run("nil args ignored", func(t *testing.T) {
		e := Div(nil, Class("x"), nil)
		if c, _ := e.Attr("class"); c != "x" {
			t.Errorf("class = %q", c)
		}
		if len(e.Children) != 0 {
			t.Errorf("children = %d, want 0", len(e.Children))
		}
	})

	t.Run("string shorthand", func(t *testing.T) {
		e := P("hello")
		if len(e.Children) != 1 || e.Children[0].Kind != KindText {
			t.Fatalf("children = %+v", e.Children)
		}
	})
}

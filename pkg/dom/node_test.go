package dom

import "testing"

func TestAttr(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		e := NewElement("div")
		if _, ok := e.Attr("id"); ok {
			t.Error("Attr on empty element reported present")
		}
	})

	t.Run("present but empty", func(t *testing.T) {
		e := NewElement("div")
		e.SetAttr("data-events", "")
		v, ok := e.Attr("data-events")
		if !ok {
			t.Error("present-but-empty attribute reported absent")
		}
		if v != "" {
			t.Errorf("value = %q, want empty", v)
		}
	})

	t.Run("set replaces in place", func(t *testing.T) {
		e := NewElement("div")
		e.SetAttr("a", "1")
		e.SetAttr("b", "2")
		e.SetAttr("a", "3")
		attrs := e.Attrs()
		if len(attrs) != 2 {
			t.Fatalf("len(attrs) = %d, want 2", len(attrs))
		}
		if attrs[0].Key != "a" || attrs[0].Value != "3" {
			t.Errorf("attrs[0] = %+v", attrs[0])
		}
	})

	t.Run("remove", func(t *testing.T) {
		e := NewElement("div")
		e.SetAttr("a", "1")
		e.RemoveAttr("a")
		if e.HasAttr("a") {
			t.Error("attribute still present after RemoveAttr")
		}
	})
}

func TestAppendChild(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("span")
	parent.AppendChild(child)

	if len(parent.Children) != 1 {
		t.Fatalf("Children len = %d, want 1", len(parent.Children))
	}
	if child.Parent != parent {
		t.Error("child not reparented")
	}
}

func TestTextContent(t *testing.T) {
	e := Div(Span("Hello"), Text(" "), Strong("world"))
	if got := e.TextContent(); got != "Hello world" {
		t.Errorf("TextContent() = %q", got)
	}
}

func TestDocumentQueries(t *testing.T) {
	doc := NewDocument(Html(
		Body(
			Div(ID("a"), Events("click"), Handlers("x")),
			Section(
				Button(ID("b"), Events("click"), Handlers("y")),
			),
			P(ID("c")),
		),
	))

	t.Run("elements with attr in document order", func(t *testing.T) {
		els := doc.ElementsWithAttr(DefaultEventsAttr)
		if len(els) != 2 {
			t.Fatalf("len = %d, want 2", len(els))
		}
		if els[0].ID() != "a" || els[1].ID() != "b" {
			t.Errorf("order = [%s %s], want [a b]", els[0].ID(), els[1].ID())
		}
	})

	t.Run("presence with empty value qualifies", func(t *testing.T) {
		root := Div()
		root.SetAttr(DefaultEventsAttr, "")
		d := NewDocument(root)
		if got := len(d.ElementsWithAttr(DefaultEventsAttr)); got != 1 {
			t.Errorf("len = %d, want 1", got)
		}
	})

	t.Run("element by id", func(t *testing.T) {
		if el := doc.ElementByID("c"); el == nil || el.Tag != "p" {
			t.Errorf("ElementByID(c) = %v", el)
		}
		if el := doc.ElementByID("nope"); el != nil {
			t.Errorf("ElementByID(nope) = %v, want nil", el)
		}
		if el := doc.ElementByID(""); el != nil {
			t.Error("ElementByID(\"\") matched an element")
		}
	})
}

func TestEnsureIDs(t *testing.T) {
	withID := Button(ID("keep"), Events("click"), Handlers("x"))
	noID := Div(Events("focus"), Handlers("y"))
	plain := Span()
	doc := NewDocument(Body(withID, noID, plain))

	gen := NewIDGenerator()
	EnsureIDs(doc, DefaultEventsAttr, gen)

	if withID.ID() != "keep" {
		t.Errorf("existing id overwritten: %q", withID.ID())
	}
	if noID.ID() != "bk1" {
		t.Errorf("generated id = %q, want bk1", noID.ID())
	}
	if plain.HasAttr("id") {
		t.Error("non-bindable element received an id")
	}
	if gen.Current() != 1 {
		t.Errorf("generator counter = %d, want 1", gen.Current())
	}
}

package bind

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/bindkit-dev/bindkit/internal/errors"
	"github.com/bindkit-dev/bindkit/pkg/dom"
)

// quietOpts silences the pass logger for tests.
func quietOpts(extra ...Option) []Option {
	opts := []Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}
	return append(opts, extra...)
}

func TestBindElement(t *testing.T) {
	opts := defaultOptions()

	t.Run("listener per token", func(t *testing.T) {
		el := dom.Button(dom.Events("click", "focus", "blur"), dom.Handlers("a", "b", "c"))
		reg := Registry{
			"a": func(*dom.Event) {},
			"b": func(*dom.Event) {},
			"c": func(*dom.Event) {},
		}

		n, err := BindElement(el, reg, opts)
		if err != nil {
			t.Fatalf("BindElement: %v", err)
		}
		if n != 3 {
			t.Errorf("attached = %d, want 3", n)
		}
		if el.TotalListeners() != 3 {
			t.Errorf("TotalListeners = %d, want 3", el.TotalListeners())
		}
	})

	t.Run("whitespace around tokens ignored", func(t *testing.T) {
		el := dom.NewElement("button")
		el.SetAttr(dom.DefaultEventsAttr, " click , focus ")
		el.SetAttr(dom.DefaultHandlersAttr, " a , b ")
		reg := Registry{"a": func(*dom.Event) {}, "b": func(*dom.Event) {}}

		if _, err := BindElement(el, reg, opts); err != nil {
			t.Fatalf("BindElement: %v", err)
		}
		if el.ListenerCount("click") != 1 || el.ListenerCount("focus") != 1 {
			t.Errorf("click=%d focus=%d, want 1 each",
				el.ListenerCount("click"), el.ListenerCount("focus"))
		}
	})

	t.Run("index correspondence", func(t *testing.T) {
		el := dom.Button(dom.Events("click", "focus"), dom.Handlers("onClick", "onFocus"))
		var calls []string
		reg := Registry{
			"onClick": func(evt *dom.Event) { calls = append(calls, "f1:"+evt.Type) },
			"onFocus": func(evt *dom.Event) { calls = append(calls, "f2:"+evt.Type) },
		}
		if _, err := BindElement(el, reg, opts); err != nil {
			t.Fatalf("BindElement: %v", err)
		}

		el.DispatchEvent(dom.NewEvent("click"))
		el.DispatchEvent(dom.NewEvent("focus"))

		if len(calls) != 2 || calls[0] != "f1:click" || calls[1] != "f2:focus" {
			t.Errorf("calls = %v", calls)
		}
	})

	t.Run("target is the element", func(t *testing.T) {
		el := dom.Button(dom.ID("save"), dom.Events("click"), dom.Handlers("h"))
		var target *dom.Element
		reg := Registry{"h": func(evt *dom.Event) { target = evt.Target }}
		if _, err := BindElement(el, reg, opts); err != nil {
			t.Fatalf("BindElement: %v", err)
		}

		el.DispatchEvent(dom.NewEvent("click"))
		if target != el {
			t.Error("handler target != bound element")
		}
	})

	t.Run("repeated event binds twice", func(t *testing.T) {
		el := dom.Button(dom.Events("click", "click"), dom.Handlers("a", "a"))
		count := 0
		reg := Registry{"a": func(*dom.Event) { count++ }}
		if _, err := BindElement(el, reg, opts); err != nil {
			t.Fatalf("BindElement: %v", err)
		}

		el.DispatchEvent(dom.NewEvent("click"))
		if count != 2 {
			t.Errorf("count = %d, want 2", count)
		}
	})

	t.Run("missing handler attaches nothing", func(t *testing.T) {
		el := dom.Button(dom.Events("click", "focus"), dom.Handlers("a", "b"))
		reg := Registry{"a": func(*dom.Event) {}}

		_, err := BindElement(el, reg, opts)
		if !errors.IsCode(err, "B002") {
			t.Fatalf("err = %v, want B002", err)
		}
		if !strings.Contains(err.Error(), "b") {
			t.Errorf("error does not name offender: %v", err)
		}
		if el.TotalListeners() != 0 {
			t.Errorf("TotalListeners = %d, want 0", el.TotalListeners())
		}
	})

	t.Run("validation short-circuits on first offender", func(t *testing.T) {
		el := dom.Button(dom.Events("a", "b"), dom.Handlers("missing1", "missing2"))
		_, err := BindElement(el, Registry{}, opts)
		if err == nil || !strings.Contains(err.Error(), "missing1") {
			t.Errorf("err = %v, want first offender named", err)
		}
	})

	t.Run("nil registry entry rejected", func(t *testing.T) {
		el := dom.Button(dom.Events("click"), dom.Handlers("h"))
		_, err := BindElement(el, Registry{"h": nil}, opts)
		if !errors.IsCode(err, "B003") {
			t.Errorf("err = %v, want B003", err)
		}
	})

	t.Run("absent handlers attribute", func(t *testing.T) {
		el := dom.NewElement("button")
		el.SetAttr(dom.DefaultEventsAttr, "click")

		_, err := BindElement(el, Registry{}, opts)
		if !errors.IsCode(err, "B001") {
			t.Fatalf("err = %v, want B001", err)
		}
		if el.TotalListeners() != 0 {
			t.Error("listener attached despite malformed attributes")
		}
	})

	t.Run("length mismatch rejected", func(t *testing.T) {
		el := dom.Button(dom.Events("click", "focus"), dom.Handlers("only"))
		reg := Registry{"only": func(*dom.Event) {}}

		_, err := BindElement(el, reg, opts)
		if !errors.IsCode(err, "B004") {
			t.Fatalf("err = %v, want B004", err)
		}
		if el.TotalListeners() != 0 {
			t.Error("listener attached despite mismatched lists")
		}
	})
}

func TestBindDocument(t *testing.T) {
	t.Run("two element scenario", func(t *testing.T) {
		btn := dom.Button(dom.Events("click", "focus"), dom.Handlers("onClick", "onFocus"))
		doc := dom.NewDocument(dom.Body(btn))

		var f1, f2 int
		reg := Registry{
			"onClick": func(*dom.Event) { f1++ },
			"onFocus": func(*dom.Event) { f2++ },
		}

		report, err := BindDocument(doc, reg, quietOpts()...)
		if err != nil {
			t.Fatalf("BindDocument: %v", err)
		}
		if report.Elements != 1 || report.Bound != 1 || report.Listeners != 2 {
			t.Errorf("report = %+v", report)
		}

		btn.DispatchEvent(dom.NewEvent("click"))
		if f1 != 1 || f2 != 0 {
			t.Errorf("after click: f1=%d f2=%d", f1, f2)
		}
		btn.DispatchEvent(dom.NewEvent("focus"))
		if f2 != 1 {
			t.Errorf("after focus: f2=%d", f2)
		}
	})

	t.Run("second pass doubles bindings", func(t *testing.T) {
		btn := dom.Button(dom.Events("click"), dom.Handlers("h"))
		doc := dom.NewDocument(dom.Body(btn))
		count := 0
		reg := Registry{"h": func(*dom.Event) { count++ }}

		if _, err := BindDocument(doc, reg, quietOpts()...); err != nil {
			t.Fatalf("first pass: %v", err)
		}
		if _, err := BindDocument(doc, reg, quietOpts()...); err != nil {
			t.Fatalf("second pass: %v", err)
		}

		btn.DispatchEvent(dom.NewEvent("click"))
		if count != 2 {
			t.Errorf("count = %d, want 2 after double bind", count)
		}
	})

	t.Run("per-element isolation", func(t *testing.T) {
		bad := dom.Button(dom.ID("bad"), dom.Events("click"), dom.Handlers("nope"))
		good := dom.Button(dom.ID("good"), dom.Events("click"), dom.Handlers("h"))
		doc := dom.NewDocument(dom.Body(bad, good))

		count := 0
		reg := Registry{"h": func(*dom.Event) { count++ }}

		report, err := BindDocument(doc, reg, quietOpts()...)
		if err == nil {
			t.Fatal("expected joined error")
		}
		if !errors.IsCode(err, "B002") {
			t.Errorf("err = %v, want B002 inside", err)
		}
		if report.Bound != 1 || len(report.Errors) != 1 {
			t.Errorf("report = %+v", report)
		}

		good.DispatchEvent(dom.NewEvent("click"))
		if count != 1 {
			t.Error("healthy element was not bound")
		}
		if bad.TotalListeners() != 0 {
			t.Error("failed element has listeners")
		}
	})

	t.Run("fail fast aborts the scan", func(t *testing.T) {
		bad := dom.Button(dom.ID("bad"), dom.Events("click"), dom.Handlers("nope"))
		late := dom.Button(dom.ID("late"), dom.Events("click"), dom.Handlers("h"))
		doc := dom.NewDocument(dom.Body(bad, late))

		reg := Registry{"h": func(*dom.Event) {}}

		report, err := BindDocument(doc, reg, quietOpts(WithFailFast(true))...)
		if err == nil {
			t.Fatal("expected error")
		}
		if report.Elements != 1 {
			t.Errorf("scanned = %d, want 1", report.Elements)
		}
		if late.TotalListeners() != 0 {
			t.Error("element after failure was bound under fail-fast")
		}
	})

	t.Run("error names the element", func(t *testing.T) {
		bad := dom.Button(dom.ID("save"), dom.Events("click"), dom.Handlers("nope"))
		doc := dom.NewDocument(dom.Body(bad))

		_, err := BindDocument(doc, Registry{}, quietOpts()...)
		if err == nil || !strings.Contains(err.Error(), "<button#save>") {
			t.Errorf("err = %v, want element identified", err)
		}
	})

	t.Run("custom attributes and delimiter", func(t *testing.T) {
		el := dom.NewElement("div")
		el.SetAttr("on-events", "click|focus")
		el.SetAttr("on-handlers", "a|b")
		doc := dom.NewDocument(dom.Body(el))

		reg := Registry{"a": func(*dom.Event) {}, "b": func(*dom.Event) {}}
		report, err := BindDocument(doc, reg, quietOpts(
			WithAttributes("on-events", "on-handlers"),
			WithDelimiter("|"),
		)...)
		if err != nil {
			t.Fatalf("BindDocument: %v", err)
		}
		if report.Listeners != 2 {
			t.Errorf("listeners = %d, want 2", report.Listeners)
		}
	})

	t.Run("independent registries", func(t *testing.T) {
		a := dom.Button(dom.Events("click"), dom.Handlers("h"))
		b := dom.Button(dom.Events("click"), dom.Handlers("h"))
		docA := dom.NewDocument(dom.Body(a))
		docB := dom.NewDocument(dom.Body(b))

		var hitA, hitB int
		if _, err := BindDocument(docA, Registry{"h": func(*dom.Event) { hitA++ }}, quietOpts()...); err != nil {
			t.Fatal(err)
		}
		if _, err := BindDocument(docB, Registry{"h": func(*dom.Event) { hitB++ }}, quietOpts()...); err != nil {
			t.Fatal(err)
		}

		a.DispatchEvent(dom.NewEvent("click"))
		if hitA != 1 || hitB != 0 {
			t.Errorf("hitA=%d hitB=%d, want 1 0", hitA, hitB)
		}
	})

	t.Run("no qualifying elements", func(t *testing.T) {
		doc := dom.NewDocument(dom.Body(dom.P("plain")))
		report, err := BindDocument(doc, Registry{}, quietOpts()...)
		if err != nil {
			t.Fatalf("BindDocument: %v", err)
		}
		if report.Elements != 0 || report.Listeners != 0 {
			t.Errorf("report = %+v", report)
		}
	})
}

func TestValidateHandlers(t *testing.T) {
	reg := Registry{"a": func(*dom.Event) {}}

	if err := ValidateHandlers([]string{"a", "a"}, reg); err != nil {
		t.Errorf("ValidateHandlers(valid) = %v", err)
	}
	if err := ValidateHandlers(nil, reg); err != nil {
		t.Errorf("ValidateHandlers(nil) = %v", err)
	}
	if err := ValidateHandlers([]string{"a", "z"}, reg); !errors.IsCode(err, "B002") {
		t.Errorf("ValidateHandlers(missing) = %v", err)
	}
}

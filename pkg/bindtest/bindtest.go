// Package bindtest provides helpers for testing bound documents:
// fluent document construction, a recording registry, and assertion
// shorthands for binding reports.
package bindtest

import (
	"strings"
	"sync"
	"testing"

	"github.com/bindkit-dev/bindkit/pkg/bind"
	"github.com/bindkit-dev/bindkit/pkg/dom"
)

// DocBuilder allows fluent construction of test documents.
type DocBuilder struct {
	body *dom.Element
	doc  *dom.Document
}

// NewDoc creates a new document builder with an html/body skeleton.
//
// Example:
//
//	doc := bindtest.NewDoc().
//	    Bindable("button", "save", "click", "onSave").
//	    Build()
func NewDoc() *DocBuilder {
	body := dom.Body()
	root := dom.Html(dom.Head(), body)
	return &DocBuilder{body: body, doc: dom.NewDocument(root)}
}

// Bindable appends an element declaring the given events and handlers.
// The id may be empty.
func (b *DocBuilder) Bindable(tag, id, events, handlers string) *DocBuilder {
	el := dom.NewElement(tag)
	if id != "" {
		el.SetAttr("id", id)
	}
	el.SetAttr(dom.DefaultEventsAttr, events)
	el.SetAttr(dom.DefaultHandlersAttr, handlers)
	b.body.AppendChild(el)
	return b
}

// Plain appends an element with no event declarations.
func (b *DocBuilder) Plain(tag, id string) *DocBuilder {
	el := dom.NewElement(tag)
	if id != "" {
		el.SetAttr("id", id)
	}
	b.body.AppendChild(el)
	return b
}

// Build returns the assembled document.
func (b *DocBuilder) Build() *dom.Document {
	return b.doc
}

// Call records one handler invocation.
type Call struct {
	Handler string
	Event   string
	Target  string
}

// Recorder is a registry whose handlers record their invocations.
type Recorder struct {
	mu       sync.Mutex
	calls    []Call
	registry bind.Registry
}

// NewRecorder creates a recorder with a recording handler per name.
//
// Example:
//
//	rec := bindtest.NewRecorder("onSave", "onCancel")
//	bind.BindDocument(doc, rec.Registry())
func NewRecorder(names ...string) *Recorder {
	r := &Recorder{registry: bind.Registry{}}
	for _, name := range names {
		handlerName := name
		r.registry[name] = func(e *dom.Event) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.calls = append(r.calls, Call{
				Handler: handlerName,
				Event:   e.Type,
				Target:  e.Target.ID(),
			})
		}
	}
	return r
}

// Registry returns the recording registry.
func (r *Recorder) Registry() bind.Registry {
	return r.registry
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// CallCount returns the number of recorded invocations of a handler.
func (r *Recorder) CallCount(handler string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Handler == handler {
			n++
		}
	}
	return n
}

// Fire dispatches an event to the element with the given id and
// returns the number of listeners invoked.
func Fire(t *testing.T, doc *dom.Document, id, event string) int {
	t.Helper()
	el := doc.ElementByID(id)
	if el == nil {
		t.Fatalf("no element with id %q", id)
	}
	return el.DispatchEvent(dom.NewEvent(event))
}

// ExpectBound asserts the report's bound element and listener counts.
func ExpectBound(t *testing.T, report bind.Report, elements, listeners int) {
	t.Helper()
	if report.Bound != elements {
		t.Errorf("bound elements = %d, want %d", report.Bound, elements)
	}
	if report.Listeners != listeners {
		t.Errorf("listeners = %d, want %d", report.Listeners, listeners)
	}
}

// ExpectErrorContains asserts that err mentions the given substring.
func ExpectErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("error %q does not contain %q", err.Error(), substr)
	}
}

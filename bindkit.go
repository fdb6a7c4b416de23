// Package bindkit provides the public API for the Bindkit binding layer.
//
// This is the recommended import for most applications:
//
//	import "github.com/bindkit-dev/bindkit"
//
// Usage:
//
//	reg := bindkit.Registry{
//	    "onToggle": func(evt *bindkit.Event) {
//	        evt.Target.SetAttr("data-open", "true")
//	    },
//	}
//	doc, err := bindkit.ParseAndBind(htmlFile, reg)
package bindkit

import (
	"io"

	"github.com/bindkit-dev/bindkit/pkg/bind"
	"github.com/bindkit-dev/bindkit/pkg/dom"
)

// =============================================================================
// Core types (re-exported from pkg/bind and pkg/dom)
// =============================================================================

// Handler is a named event handler. The bound element is evt.Target.
type Handler = bind.Handler

// Registry maps handler names to handlers. Populate it fully before
// running a binding pass; the binder only reads it.
type Registry = bind.Registry

// Event is the object a handler receives when a bound event fires.
type Event = dom.Event

// Element is a node in the bound document.
type Element = dom.Element

// Document is a parsed or constructed document tree.
type Document = dom.Document

// Report summarizes a binding pass.
type Report = bind.Report

// =============================================================================
// Options (re-exported from pkg/bind)
// =============================================================================

// Option configures a binding pass.
type Option = bind.Option

// WithAttributes overrides the scanned attribute names
// (default: "data-events" / "data-handlers").
var WithAttributes = bind.WithAttributes

// WithDelimiter overrides the list delimiter (default: ",").
var WithDelimiter = bind.WithDelimiter

// WithFailFast makes the first element error abort the remaining scan
// instead of isolating failures per element.
var WithFailFast = bind.WithFailFast

// WithLogger sets the logger for the pass.
var WithLogger = bind.WithLogger

// =============================================================================
// Entry points
// =============================================================================

// Bind runs one binding pass over the document. See bind.BindDocument
// for the isolation and idempotence semantics.
func Bind(doc *Document, reg Registry, opts ...Option) error {
	_, err := bind.BindDocument(doc, reg, opts...)
	return err
}

// BindReport runs one binding pass and returns the pass report along
// with the joined element errors.
func BindReport(doc *Document, reg Registry, opts ...Option) (Report, error) {
	return bind.BindDocument(doc, reg, opts...)
}

// ParseAndBind parses an HTML document and runs one binding pass over
// it. The document is returned even when some elements failed to bind,
// so callers can still dispatch against the healthy ones.
func ParseAndBind(r io.Reader, reg Registry, opts ...Option) (*Document, error) {
	doc, err := dom.Parse(r)
	if err != nil {
		return nil, err
	}
	return doc, Bind(doc, reg, opts...)
}

// NewEvent creates an event of the given type for direct dispatch.
func NewEvent(eventType string) *Event {
	return dom.NewEvent(eventType)
}

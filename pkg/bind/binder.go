package bind

import (
	"fmt"

	"github.com/bindkit-dev/bindkit/internal/errors"
	"github.com/bindkit-dev/bindkit/pkg/dom"
)

// BindElement parses the element's paired attribute lists, validates
// every declared handler name, and attaches one listener per pair in
// event-list order. On any error no listener is attached. Returns the
// number of listeners attached.
func BindElement(el *dom.Element, reg Registry, opts Options) (int, error) {
	rawEvents, ok := el.Attr(opts.EventsAttr)
	if !ok {
		return 0, errors.New("B001").WithSubject(opts.EventsAttr)
	}
	rawHandlers, ok := el.Attr(opts.HandlersAttr)
	if !ok {
		return 0, errors.New("B001").WithSubject(opts.HandlersAttr)
	}

	events := Tokens(rawEvents, opts.Delimiter)
	names := Tokens(rawHandlers, opts.Delimiter)

	if len(events) != len(names) {
		return 0, errors.New("B004").
			WithSubject(fmt.Sprintf("%d events, %d handlers", len(events), len(names)))
	}

	if err := ValidateHandlers(names, reg); err != nil {
		return 0, err
	}

	// Validation passed and the registry is not mutated mid-pass, so
	// resolving each handler here is observably the same as resolving
	// by index at dispatch time.
	for i, eventType := range events {
		handler, _ := reg.Lookup(names[i])
		el.AddEventListener(eventType, handler)
	}

	return len(events), nil
}

// describe identifies an element in error messages: tag plus id when
// one is present.
func describe(el *dom.Element) string {
	if id := el.ID(); id != "" {
		return "<" + el.Tag + "#" + id + ">"
	}
	return "<" + el.Tag + ">"
}

package bind

import (
	"errors"
	"fmt"

	"github.com/bindkit-dev/bindkit/pkg/dom"
)

// Report summarizes a binding pass.
type Report struct {
	// Elements is the number of qualifying elements scanned.
	Elements int

	// Bound is the number of elements fully bound.
	Bound int

	// Listeners is the total number of listeners attached.
	Listeners int

	// Errors holds one error per element that failed to bind.
	Errors []error
}

// Err returns the element errors joined, or nil if every element bound.
func (r Report) Err() error {
	return errors.Join(r.Errors...)
}

// BindDocument runs one binding pass over the document: every element
// carrying the events attribute is bound against the registry.
//
// An element qualifies by presence of the events attribute alone;
// absence of the handlers attribute surfaces as that element's
// malformed-attribute error.
//
// By default element failures are isolated: the rest of the scan
// proceeds and the failures come back joined. With Options.FailFast the
// first failure aborts the pass and unscanned elements are not touched.
// Either way, an element that failed has no listeners attached.
//
// The pass keeps no state between invocations; calling it twice binds
// every qualifying element twice.
func BindDocument(doc *dom.Document, reg Registry, opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var report Report
	for _, el := range doc.ElementsWithAttr(o.EventsAttr) {
		report.Elements++

		n, err := BindElement(el, reg, o)
		if err != nil {
			err = fmt.Errorf("%s: %w", describe(el), err)
			o.Logger.Warn("element binding failed",
				"element", describe(el),
				"error", err)
			report.Errors = append(report.Errors, err)
			if o.FailFast {
				return report, err
			}
			continue
		}

		report.Bound++
		report.Listeners += n
	}

	o.Logger.Info("binding pass complete",
		"elements", report.Elements,
		"bound", report.Bound,
		"listeners", report.Listeners,
		"errors", len(report.Errors))

	return report, report.Err()
}

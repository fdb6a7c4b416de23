package bind

import (
	"log/slog"

	"github.com/bindkit-dev/bindkit/pkg/dom"
)

// Options configures a binding pass.
type Options struct {
	// EventsAttr is the attribute holding the event-name list
	// (default: "data-events").
	EventsAttr string

	// HandlersAttr is the attribute holding the handler-name list
	// (default: "data-handlers").
	HandlersAttr string

	// Delimiter separates list tokens (default: ",").
	Delimiter string

	// FailFast aborts the whole pass on the first element error
	// instead of isolating failures per element.
	FailFast bool

	// Logger receives per-element warnings and the pass summary.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Option configures a binding pass.
type Option func(*Options)

// WithAttributes overrides the attribute names scanned for event and
// handler lists.
func WithAttributes(eventsAttr, handlersAttr string) Option {
	return func(o *Options) {
		o.EventsAttr = eventsAttr
		o.HandlersAttr = handlersAttr
	}
}

// WithDelimiter overrides the list delimiter.
func WithDelimiter(delim string) Option {
	return func(o *Options) {
		o.Delimiter = delim
	}
}

// WithFailFast makes the first element error abort the remaining scan.
func WithFailFast(failFast bool) Option {
	return func(o *Options) {
		o.FailFast = failFast
	}
}

// WithLogger sets the logger for the pass.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// defaultOptions returns the default pass configuration.
func defaultOptions() Options {
	return Options{
		EventsAttr:   dom.DefaultEventsAttr,
		HandlersAttr: dom.DefaultHandlersAttr,
		Delimiter:    DefaultDelimiter,
		Logger:       slog.Default(),
	}
}

package bind

import "github.com/bindkit-dev/bindkit/pkg/dom"

// Handler is a named event handler. It receives the triggering event;
// the bound element is evt.Target.
type Handler = dom.Listener

// Registry maps handler names to handlers. It is supplied by the
// application, fully populated before a pass runs, and only ever read
// by the binder.
type Registry map[string]Handler

// LookupResult tags the outcome of a registry lookup.
type LookupResult uint8

const (
	// LookupFound means the name resolves to a callable handler.
	LookupFound LookupResult = iota
	// LookupMissing means the registry has no entry for the name.
	LookupMissing
	// LookupNotCallable means the entry exists but is nil.
	LookupNotCallable
)

// String returns the string representation of the LookupResult.
func (r LookupResult) String() string {
	switch r {
	case LookupFound:
		return "found"
	case LookupMissing:
		return "missing"
	case LookupNotCallable:
		return "not-callable"
	default:
		return "unknown"
	}
}

// Lookup resolves a handler name to a handler and a tagged result.
func (r Registry) Lookup(name string) (Handler, LookupResult) {
	h, ok := r[name]
	if !ok {
		return nil, LookupMissing
	}
	if h == nil {
		return nil, LookupNotCallable
	}
	return h, LookupFound
}

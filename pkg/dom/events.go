package dom

// Event is what a listener receives when a bound event fires.
//
// Target is the element the listener was attached to. This replaces the
// browser's implicit "this" rebinding with an explicit field: a handler
// that needs its element reads evt.Target.
type Event struct {
	// Type is the event name ("click", "focus", ...).
	Type string

	// Target is the element that raised the event.
	Target *Element

	// Seq is the dispatch sequence number, assigned by the wire bridge.
	// Zero for events dispatched directly in Go.
	Seq uint64

	// Payload carries event data from the client page (input values,
	// key codes). Nil for bare dispatches.
	Payload map[string]any

	stopped bool
}

// NewEvent creates an event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType}
}

// StopImmediatePropagation prevents any remaining listeners for this
// dispatch from running.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
}

// Listener is a function invoked with the triggering event.
type Listener func(*Event)

// listener pairs an event name with its callback. Listeners live in a
// single flat slice so registration order is preserved globally, which
// also preserves per-event order.
type listener struct {
	event string
	fn    Listener
}

// AddEventListener registers a listener for the given event type.
// Repeated registrations are independent; no deduplication is performed.
func (e *Element) AddEventListener(eventType string, fn Listener) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, listener{event: eventType, fn: fn})
}

// ListenerCount returns the number of listeners registered for the
// given event type.
func (e *Element) ListenerCount(eventType string) int {
	n := 0
	for _, l := range e.listeners {
		if l.event == eventType {
			n++
		}
	}
	return n
}

// TotalListeners returns the number of listeners registered on this
// element across all event types.
func (e *Element) TotalListeners() int {
	return len(e.listeners)
}

// DispatchEvent synchronously invokes the listeners registered for
// evt.Type, in registration order. evt.Target is set to this element
// before the first listener runs. Returns the number of listeners
// invoked.
func (e *Element) DispatchEvent(evt *Event) int {
	evt.Target = e
	evt.stopped = false

	invoked := 0
	for _, l := range e.listeners {
		if l.event != evt.Type {
			continue
		}
		l.fn(evt)
		invoked++
		if evt.stopped {
			break
		}
	}
	return invoked
}

package protocol

import (
	"encoding/json"

	"github.com/bindkit-dev/bindkit/internal/errors"
)

// EventMessage is a native DOM event forwarded by the client page.
type EventMessage struct {
	// Seq is the client-assigned sequence number, echoed in the ack.
	Seq uint64 `json:"seq"`

	// Target is the id of the element that raised the event.
	Target string `json:"target"`

	// Event is the event name ("click", "focus", ...).
	Event string `json:"event"`

	// Payload carries event data (input value, key, coordinates).
	Payload map[string]any `json:"payload,omitempty"`
}

// Validate checks the message for required fields.
func (m *EventMessage) Validate() error {
	if m.Target == "" {
		return errors.New("B061").WithDetail("event message has no target id")
	}
	if m.Event == "" {
		return errors.New("B061").WithDetail("event message has no event name")
	}
	return nil
}

// DecodeEventMessage decodes an event payload and validates it.
func DecodeEventMessage(payload []byte) (*EventMessage, error) {
	var m EventMessage
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, errors.New("B061").Wrap(err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// AckMessage acknowledges a dispatched event.
type AckMessage struct {
	// Seq echoes the acknowledged event's sequence number.
	Seq uint64 `json:"seq"`

	// Listeners is the number of listeners the dispatch invoked.
	Listeners int `json:"listeners"`
}

// ErrorMessage is sent when the bridge rejects or fails a message.
type ErrorMessage struct {
	// Code is the Bindkit error code ("B063", ...).
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Fatal tells the client to close the connection.
	Fatal bool `json:"fatal,omitempty"`
}

// ErrorFrom builds an ErrorMessage from any error, carrying the code
// when the error is a coded BindError.
func ErrorFrom(err error) *ErrorMessage {
	if be, ok := errors.AsBindError(err); ok {
		return &ErrorMessage{Code: be.Code, Message: be.Error()}
	}
	return &ErrorMessage{Message: err.Error()}
}

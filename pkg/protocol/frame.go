// Package protocol defines the JSON wire format of the browser bridge:
// a small frame envelope carrying event, ack, error, and keepalive
// messages.
package protocol

import (
	"encoding/json"

	"github.com/bindkit-dev/bindkit/internal/errors"
)

// MaxFrameSize is the maximum encoded frame size in bytes. Bridge
// messages are tiny; anything larger is a client bug or abuse.
const MaxFrameSize = 64 * 1024

// FrameKind identifies the type of frame.
type FrameKind string

const (
	FrameEvent FrameKind = "event" // Client → Server native event
	FrameAck   FrameKind = "ack"   // Server → Client dispatch acknowledgment
	FrameError FrameKind = "error" // Server → Client error
	FramePing  FrameKind = "ping"  // Client → Server keepalive
	FramePong  FrameKind = "pong"  // Server → Client keepalive reply
)

// valid reports whether the kind is one this protocol version knows.
func (k FrameKind) valid() bool {
	switch k {
	case FrameEvent, FrameAck, FrameError, FramePing, FramePong:
		return true
	}
	return false
}

// Frame is the envelope for every bridge message.
type Frame struct {
	Kind    FrameKind       `json:"t"`
	Payload json.RawMessage `json:"p,omitempty"`
}

// EncodeFrame wraps a payload in a frame envelope and encodes it.
func EncodeFrame(kind FrameKind, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.New("B061").Wrap(err)
		}
		raw = data
	}
	data, err := json.Marshal(Frame{Kind: kind, Payload: raw})
	if err != nil {
		return nil, errors.New("B061").Wrap(err)
	}
	if len(data) > MaxFrameSize {
		return nil, errors.New("B064")
	}
	return data, nil
}

// DecodeFrame decodes a frame envelope and validates its kind.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) > MaxFrameSize {
		return nil, errors.New("B064")
	}
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.New("B061").Wrap(err)
	}
	if !f.Kind.valid() {
		return nil, errors.New("B062").WithSubject(string(f.Kind))
	}
	return &f, nil
}

package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bindkit-dev/bindkit/internal/errors"
)

func TestFrameRoundTrip(t *testing.T) {
	t.Run("event frame", func(t *testing.T) {
		msg := &EventMessage{Seq: 7, Target: "bk1", Event: "click",
			Payload: map[string]any{"x": float64(10)}}

		data, err := EncodeFrame(FrameEvent, msg)
		if err != nil {
			t.Fatalf("EncodeFrame: %v", err)
		}

		frame, err := DecodeFrame(data)
		if err != nil {
			t.Fatalf("DecodeFrame: %v", err)
		}
		if frame.Kind != FrameEvent {
			t.Errorf("Kind = %q", frame.Kind)
		}

		decoded, err := DecodeEventMessage(frame.Payload)
		if err != nil {
			t.Fatalf("DecodeEventMessage: %v", err)
		}
		if decoded.Seq != 7 || decoded.Target != "bk1" || decoded.Event != "click" {
			t.Errorf("decoded = %+v", decoded)
		}
		if decoded.Payload["x"] != float64(10) {
			t.Errorf("payload = %v", decoded.Payload)
		}
	})

	t.Run("ping has no payload", func(t *testing.T) {
		data, err := EncodeFrame(FramePing, nil)
		if err != nil {
			t.Fatalf("EncodeFrame: %v", err)
		}
		frame, err := DecodeFrame(data)
		if err != nil {
			t.Fatalf("DecodeFrame: %v", err)
		}
		if frame.Kind != FramePing || len(frame.Payload) != 0 {
			t.Errorf("frame = %+v", frame)
		}
	})
}

func TestDecodeFrameErrors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		_, err := DecodeFrame([]byte(`{not json`))
		if !errors.IsCode(err, "B061") {
			t.Errorf("err = %v, want B061", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := DecodeFrame([]byte(`{"t":"patch"}`))
		if !errors.IsCode(err, "B062") {
			t.Errorf("err = %v, want B062", err)
		}
	})

	t.Run("oversized frame", func(t *testing.T) {
		big := []byte(`{"t":"event","p":{"target":"` + strings.Repeat("a", MaxFrameSize) + `"}}`)
		_, err := DecodeFrame(big)
		if !errors.IsCode(err, "B064") {
			t.Errorf("err = %v, want B064", err)
		}
	})
}

func TestEventMessageValidate(t *testing.T) {
	t.Run("missing target", func(t *testing.T) {
		_, err := DecodeEventMessage([]byte(`{"event":"click"}`))
		if !errors.IsCode(err, "B061") {
			t.Errorf("err = %v, want B061", err)
		}
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := DecodeEventMessage([]byte(`{"target":"bk1"}`))
		if !errors.IsCode(err, "B061") {
			t.Errorf("err = %v, want B061", err)
		}
	})
}

func TestErrorFrom(t *testing.T) {
	t.Run("coded error", func(t *testing.T) {
		em := ErrorFrom(errors.New("B063").WithSubject("bk9"))
		if em.Code != "B063" {
			t.Errorf("Code = %q", em.Code)
		}
		if !bytes.Contains([]byte(em.Message), []byte("bk9")) {
			t.Errorf("Message = %q", em.Message)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		em := ErrorFrom(errors.Newf(errors.CategoryProtocol, "boom"))
		if em.Code != "" || em.Message != "boom" {
			t.Errorf("em = %+v", em)
		}
	})
}

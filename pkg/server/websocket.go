package server

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/bindkit-dev/bindkit/internal/errors"
	"github.com/bindkit-dev/bindkit/pkg/protocol"
)

// ReadLoop reads bridge frames until the connection dies. It runs on
// the upgrade handler's goroutine; returning closes the session.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(protocol.MaxFrameSize)

	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.server.config.ReadTimeout))

		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read failed", "error", err)
			}
			return
		}

		frame, err := protocol.DecodeFrame(data)
		if err != nil {
			s.sendError(err, false)
			continue
		}

		switch frame.Kind {
		case protocol.FrameEvent:
			s.handleEventFrame(frame.Payload)

		case protocol.FramePing:
			s.enqueue(protocol.FramePong, nil)

		case protocol.FramePong:
			// Reply to our keepalive; the read deadline reset above
			// is all the bookkeeping needed.

		default:
			// Server-to-client kinds arriving inbound are a client bug.
			s.sendError(errors.New("B062").WithSubject(string(frame.Kind)), false)
		}
	}
}

// handleEventFrame decodes and dispatches one event frame, replying
// with an ack or an error.
func (s *Session) handleEventFrame(payload []byte) {
	msg, err := protocol.DecodeEventMessage(payload)
	if err != nil {
		s.sendError(err, false)
		return
	}

	ack, err := s.HandleEvent(msg)
	if err != nil {
		s.logger.Warn("dispatch failed",
			"target", msg.Target,
			"event", msg.Event,
			"error", err)
		s.sendError(err, false)
		return
	}

	s.enqueue(protocol.FrameAck, ack)
}

// WriteLoop drains the send queue and emits keepalive pings. Run it on
// its own goroutine.
func (s *Session) WriteLoop() {
	ticker := time.NewTicker(s.server.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case data := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.server.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.logger.Warn("write failed", "error", err)
				s.Close()
				return
			}

		case <-ticker.C:
			s.enqueue(protocol.FramePing, nil)

		case <-s.done:
			return
		}
	}
}

// enqueue encodes a frame and queues it for the write loop. Frames are
// dropped when the session is closing or the queue is full; the
// connection-level deadlines handle a stuck client.
func (s *Session) enqueue(kind protocol.FrameKind, payload any) {
	data, err := protocol.EncodeFrame(kind, payload)
	if err != nil {
		s.logger.Error("frame encode failed", "kind", kind, "error", err)
		return
	}

	select {
	case s.send <- data:
	case <-s.done:
	default:
		s.logger.Warn("send queue full, dropping frame", "kind", kind)
	}
}

// sendError reports an error to the client. Fatal errors also close
// the session.
func (s *Session) sendError(err error, fatal bool) {
	em := protocol.ErrorFrom(err)
	em.Fatal = fatal
	s.enqueue(protocol.FrameError, em)
	if fatal {
		s.Close()
	}
}

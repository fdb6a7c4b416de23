package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bindkit-dev/bindkit/internal/errors"
	"github.com/bindkit-dev/bindkit/pkg/bind"
	"github.com/bindkit-dev/bindkit/pkg/dom"
	"github.com/bindkit-dev/bindkit/pkg/protocol"
)

// Session is one connected client: its own copy of the document, bound
// once against the server's registry, plus the WebSocket it receives
// events on.
type Session struct {
	// ID is the session identifier ("s1", "s2", ...).
	ID string

	conn   *websocket.Conn
	server *Server
	logger *slog.Logger

	// doc is this session's private document copy. Only the session's
	// read loop touches it after binding.
	doc    *dom.Document
	report bind.Report

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewSession parses a fresh document copy, runs the binding pass
// against the server's registry, and wires up the connection.
//
// Element-level binding failures do not abort the session; the bound
// part of the document still works and the failures are logged.
func NewSession(id string, conn *websocket.Conn, srv *Server) (*Session, error) {
	doc, err := dom.ParseString(srv.sessionHTML)
	if err != nil {
		return nil, err
	}

	logger := srv.config.Logger.With("session", id)

	report, bindErr := bind.BindDocument(doc, srv.config.Registry, srv.config.BindOptions...)
	srv.metrics.RecordBindPass(report.Listeners, len(report.Errors))
	if bindErr != nil {
		logger.Warn("binding pass had failures",
			"bound", report.Bound,
			"failed", len(report.Errors),
			"error", bindErr)
	}

	s := &Session{
		ID:     id,
		conn:   conn,
		server: srv,
		logger: logger,
		doc:    doc,
		report: report,
		send:   make(chan []byte, 64),
		done:   make(chan struct{}),
	}

	srv.metrics.SessionOpened()
	logger.Info("session started",
		"elements", report.Elements,
		"listeners", report.Listeners)
	return s, nil
}

// Report returns the session's binding pass report.
func (s *Session) Report() bind.Report {
	return s.report
}

// Document returns the session's bound document.
func (s *Session) Document() *dom.Document {
	return s.doc
}

// HandleEvent dispatches one bridge event into the bound document and
// returns the acknowledgment.
func (s *Session) HandleEvent(m *protocol.EventMessage) (ack *protocol.AckMessage, err error) {
	start := time.Now()
	status := "ok"
	defer func() {
		if err != nil {
			status = "error"
		}
		s.server.metrics.RecordDispatch(m.Event, status, time.Since(start))
	}()

	_, end := s.server.tracer.start(context.Background(), s.ID, m.Target, m.Event)

	el := s.doc.ElementByID(m.Target)
	if el == nil {
		err = errors.New("B063").WithSubject(m.Target)
		end(0, err)
		return nil, err
	}

	evt := dom.NewEvent(m.Event)
	evt.Seq = m.Seq
	evt.Payload = m.Payload

	n := s.safeDispatch(el, evt)
	end(n, nil)

	return &protocol.AckMessage{Seq: m.Seq, Listeners: n}, nil
}

// safeDispatch runs the dispatch with panic recovery. A panicking
// handler is logged and the rest of the session keeps working.
func (s *Session) safeDispatch(el *dom.Element, evt *dom.Event) (n int) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic",
				"panic", r,
				"target", el.ID(),
				"event", evt.Type,
				"stack", string(debug.Stack()))
		}
	}()

	return el.DispatchEvent(evt)
}

// Close tears the session down. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
		s.server.metrics.SessionClosed()
		s.logger.Info("session closed")
	})
}

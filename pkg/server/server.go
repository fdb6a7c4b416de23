package server

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bindkit-dev/bindkit/internal/errors"
	"github.com/bindkit-dev/bindkit/pkg/dom"
)

// Server hosts the bound document and the WebSocket bridge.
type Server struct {
	config   *Config
	router   chi.Router
	upgrader websocket.Upgrader

	// pageHTML is the prepared page: ids ensured, client injected.
	pageHTML string

	// sessionHTML is the prepared document without the client script,
	// parsed fresh for each session.
	sessionHTML string

	metrics   *Metrics
	tracer    *dispatchTracer
	sessionID atomic.Uint64

	httpServer *http.Server
}

// New creates a server from the configuration. The document is parsed
// and prepared once; a malformed document fails here rather than on
// first request.
func New(cfg *Config) (*Server, error) {
	c := cfg.withDefaults()

	doc, err := dom.ParseString(c.DocumentHTML)
	if err != nil {
		return nil, fmt.Errorf("server: parse document: %w", err)
	}
	dom.EnsureIDs(doc, c.EventsAttr, dom.NewIDGenerator())
	sessionHTML := doc.HTML()

	injectClient(doc, c.EventsAttr, c.Delimiter)
	pageHTML := doc.HTML()

	s := &Server{
		config:      c,
		pageHTML:    pageHTML,
		sessionHTML: sessionHTML,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     c.CheckOrigin,
		},
	}

	if c.Metrics {
		s.metrics = NewMetrics(MetricsConfig{})
	}
	if c.Tracing {
		s.tracer = newDispatchTracer()
	}

	s.router = s.buildRouter()
	return s, nil
}

// buildRouter assembles the chi route tree.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/bindkit/ws", s.handleWebSocket)
	r.Get("/healthz", s.handleHealth)

	if s.config.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	if s.config.StaticDir != "" {
		fs := http.StripPrefix(s.config.StaticPrefix,
			http.FileServer(http.Dir(s.config.StaticDir)))
		r.Handle(s.config.StaticPrefix+"/*", fs)
	}
	return r
}

// Handler returns the HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handlePage serves the prepared document.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(s.pageHTML))
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handleWebSocket upgrades the connection and runs a session.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.config.Logger.Error("websocket upgrade failed",
			"error", errors.New("B060").Wrap(err))
		return
	}

	id := fmt.Sprintf("s%d", s.sessionID.Add(1))
	sess, err := NewSession(id, conn, s)
	if err != nil {
		s.config.Logger.Error("session start failed", "session", id, "error", err)
		_ = conn.Close()
		return
	}

	go sess.WriteLoop()
	sess.ReadLoop()
}

// ListenAndServe runs the server until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.config.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.config.Logger.Info("server listening", "addr", s.config.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

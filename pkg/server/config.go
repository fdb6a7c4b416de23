package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bindkit-dev/bindkit/pkg/bind"
)

// Config configures the Bindkit server.
type Config struct {
	// Addr is the host:port to listen on.
	Addr string

	// DocumentHTML is the page source. It is parsed once at startup;
	// bindable elements without ids get generated ones, and the bridge
	// client script is injected before serving.
	DocumentHTML string

	// Registry is the application's handler registry. Every session's
	// binding pass runs against it.
	Registry bind.Registry

	// BindOptions are applied to every session's binding pass.
	BindOptions []bind.Option

	// EventsAttr is the attribute the client script watches for. It
	// must match the attribute the bind options scan. Defaults to
	// "data-events".
	EventsAttr string

	// Delimiter is the token delimiter the client script splits the
	// events attribute on. It must match the bind options' delimiter.
	// Defaults to ",".
	Delimiter string

	// Metrics enables the Prometheus /metrics endpoint.
	Metrics bool

	// Tracing enables an OpenTelemetry span per dispatched event.
	Tracing bool

	// StaticDir serves files under StaticPrefix when non-empty.
	StaticDir string

	// StaticPrefix is the URL prefix for static files (default "/static").
	StaticPrefix string

	// CheckOrigin validates WebSocket upgrade origins. Nil allows
	// same-host origins only.
	CheckOrigin func(*http.Request) bool

	// ReadTimeout bounds waiting for a client frame (default 60s).
	ReadTimeout time.Duration

	// WriteTimeout bounds a single frame write (default 10s).
	WriteTimeout time.Duration

	// PingInterval is the server keepalive cadence (default 30s).
	PingInterval time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// withDefaults fills in defaults for unset fields.
func (c *Config) withDefaults() *Config {
	out := *c
	if out.Addr == "" {
		out.Addr = "localhost:3000"
	}
	if out.EventsAttr == "" {
		out.EventsAttr = "data-events"
	}
	if out.Delimiter == "" {
		out.Delimiter = ","
	}
	if out.StaticPrefix == "" {
		out.StaticPrefix = "/static"
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = 60 * time.Second
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = 10 * time.Second
	}
	if out.PingInterval == 0 {
		out.PingInterval = 30 * time.Second
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = 10 * time.Second
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return &out
}

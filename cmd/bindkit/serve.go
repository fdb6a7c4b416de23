package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bindkit-dev/bindkit/internal/config"
	"github.com/bindkit-dev/bindkit/internal/errors"
	"github.com/bindkit-dev/bindkit/pkg/bind"
	"github.com/bindkit-dev/bindkit/pkg/dom"
	"github.com/bindkit-dev/bindkit/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port     int
		host     string
		document string
		metrics  bool
	)

	cmd := &cobra.Command{
		Use:   "serve [document]",
		Short: "Serve a document with its events bound",
		Long: `Serve an HTML document over HTTP with its declared events bound.

The document is scanned once at startup. Every declared handler gets
a logging stub, so each forwarded browser event is visible in the
server log. Useful for previewing a document's bindings before
wiring real handlers with the library.

Examples:
  bindkit serve index.html
  bindkit serve --port=8080
  bindkit serve --host=0.0.0.0 --metrics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := document
			if len(args) > 0 {
				doc = args[0]
			}
			return runServe(doc, host, port, metrics)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from bindkit.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from bindkit.json)")
	cmd.Flags().StringVarP(&document, "document", "d", "", "Document to serve (default from bindkit.json)")
	cmd.Flags().BoolVarP(&metrics, "metrics", "m", false, "Expose Prometheus metrics on /metrics")

	return cmd
}

func runServe(document, host string, port int, metrics bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		errors.PrintError(err)
		return err
	}

	if port > 0 {
		cfg.Port = port
	}
	if host != "" {
		cfg.Host = host
	}
	if document != "" {
		cfg.Document = document
	}
	if metrics {
		cfg.Metrics = true
	}
	if err := cfg.Validate(); err != nil {
		errors.PrintError(err)
		return err
	}

	html, err := os.ReadFile(cfg.Document)
	if err != nil {
		err = errors.New("B140").WithSubject(cfg.Document).Wrap(err)
		errors.PrintError(err)
		return err
	}

	logger := newLogger(cfg.LogLevel)
	reg, names, err := stubRegistry(string(html), cfg.Binding, logger)
	if err != nil {
		errors.PrintError(err)
		return err
	}

	printBanner()
	info("serving %s on http://%s", cfg.Document, cfg.Addr())
	info("stub handlers: %d", len(names))

	srv, err := server.New(&server.Config{
		Addr:         cfg.Addr(),
		DocumentHTML: string(html),
		Registry:     reg,
		BindOptions: []bind.Option{
			bind.WithAttributes(cfg.Binding.EventsAttr, cfg.Binding.HandlersAttr),
			bind.WithDelimiter(cfg.Binding.Delimiter),
			bind.WithFailFast(cfg.Binding.FailFast),
			bind.WithLogger(logger),
		},
		EventsAttr:   cfg.Binding.EventsAttr,
		Delimiter:    cfg.Binding.Delimiter,
		Metrics:      cfg.Metrics,
		StaticDir:    cfg.Static.Dir,
		StaticPrefix: cfg.Static.Prefix,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}

// stubRegistry builds a registry containing a logging handler for
// every handler name the document declares.
func stubRegistry(html string, bc config.BindingConfig, logger *slog.Logger) (bind.Registry, []string, error) {
	doc, err := dom.ParseString(html)
	if err != nil {
		return nil, nil, errors.New("B141").Wrap(err)
	}

	reg := bind.Registry{}
	var names []string
	for _, el := range doc.ElementsWithAttr(bc.HandlersAttr) {
		raw, _ := el.Attr(bc.HandlersAttr)
		for _, name := range bind.Tokens(raw, bc.Delimiter) {
			if name == "" {
				continue
			}
			if _, ok := reg[name]; ok {
				continue
			}
			names = append(names, name)
			handlerName := name
			reg[name] = func(e *dom.Event) {
				logger.Info("event dispatched",
					"handler", handlerName,
					"event", e.Type,
					"target", e.Target.ID())
			}
		}
	}
	return reg, names, nil
}

// discardLogger drops all records. The dry check pass prints its own
// findings instead of streaming log output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newLogger builds a text slog logger at the configured level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

package server

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "bindkit"

// dispatchTracer emits one span per bridge event dispatch.
type dispatchTracer struct {
	tracer trace.Tracer
}

func newDispatchTracer() *dispatchTracer {
	return &dispatchTracer{tracer: otel.Tracer(tracerName)}
}

// start opens a dispatch span. Callers must call the returned end func
// with the dispatch outcome.
func (t *dispatchTracer) start(ctx context.Context, session, target, event string) (context.Context, func(listeners int, err error)) {
	if t == nil {
		return ctx, func(int, error) {}
	}

	ctx, span := t.tracer.Start(ctx, "bindkit.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("bindkit.session", session),
			attribute.String("bindkit.target", target),
			attribute.String("bindkit.event", event),
		))

	return ctx, func(listeners int, err error) {
		span.SetAttributes(attribute.Int("bindkit.listeners", listeners))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}

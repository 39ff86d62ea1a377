package router

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// defaultTracerName is used when no tracer is configured.
const defaultTracerName = "github.com/domkit-dev/domkit/pkg/router"

func defaultTracer() trace.Tracer {
	return otel.Tracer(defaultTracerName)
}

func (r *Router) startSpan(path, source string) trace.Span {
	_, span := r.tracer.Start(context.Background(), "router.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("route.path", path),
			attribute.String("route.source", source),
		),
	)
	return span
}

func endSpan(span trace.Span, route string, fallback bool, released int) {
	span.SetAttributes(
		attribute.String("route.resolved", route),
		attribute.Bool("route.fallback", fallback),
		attribute.Int("route.released", released),
	)
	span.End()
}

package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "sleep-stats-api/http"

// Tracing opens a server span per request. Once chi has routed the request the
// span is renamed after the route pattern, so traces group by endpoint rather
// than by user id.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		input := map[string]any{"method": r.Method, "path": r.URL.Path}
		if r.URL.RawQuery != "" {
			input["query"] = r.URL.RawQuery
		}
		setJSONAttribute(span, "langfuse.observation.input", input)

		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r.WithContext(ctx))

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				span.SetName(r.Method + " " + pattern)
				span.SetAttributes(attribute.String("http.route", pattern))
			}
		}

		span.SetAttributes(attribute.Int("http.status_code", sw.statusCode))
		if sw.statusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(sw.statusCode))
		}
		setJSONAttribute(span, "langfuse.observation.output", map[string]any{
			"status_code": sw.statusCode,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

func setJSONAttribute(span trace.Span, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		span.SetAttributes(attribute.String(key, string(b)))
	}
}

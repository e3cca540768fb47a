package telemetry

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/blaisecz/sleep-stats/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Enabled reports whether spans can be exported to Langfuse.
func Enabled(cfg *config.Config) bool {
	return cfg.LangfuseBaseURL != "" && cfg.LangfusePublicKey != "" && cfg.LangfuseSecretKey != ""
}

// InitTracer installs the global tracer provider and W3C propagator.
// Without Langfuse credentials spans stay in-process and the returned
// ShutdownFunc does nothing.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string, log *zap.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !Enabled(cfg) {
		log.Info("tracing export disabled, langfuse not configured")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(tracesEndpoint(cfg.LangfuseBaseURL)),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": basicAuth(cfg.LangfusePublicKey, cfg.LangfuseSecretKey),
		}),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing export enabled", zap.String("endpoint", tracesEndpoint(cfg.LangfuseBaseURL)))
	return tp.Shutdown, nil
}

func tracesEndpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/api/public/otel/v1/traces"
}

func basicAuth(publicKey, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(publicKey+":"+secretKey))
}

package telemetry

import (
	"context"
	"testing"

	"github.com/blaisecz/sleep-stats/internal/config"
	"go.uber.org/zap"
)

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.Config{}, "sleep-stats-api", zap.NewNop())
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want bool
	}{
		{name: "empty", cfg: config.Config{}, want: false},
		{name: "missing secret", cfg: config.Config{LangfuseBaseURL: "https://cloud.langfuse.com", LangfusePublicKey: "pk"}, want: false},
		{name: "complete", cfg: config.Config{LangfuseBaseURL: "https://cloud.langfuse.com", LangfusePublicKey: "pk", LangfuseSecretKey: "sk"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Enabled(&tt.cfg); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTracesEndpoint(t *testing.T) {
	for _, base := range []string{"https://cloud.langfuse.com", "https://cloud.langfuse.com/"} {
		if got := tracesEndpoint(base); got != "https://cloud.langfuse.com/api/public/otel/v1/traces" {
			t.Errorf("tracesEndpoint(%q) = %q", base, got)
		}
	}
}

func TestBasicAuth(t *testing.T) {
	// base64("pk:sk")
	if got := basicAuth("pk", "sk"); got != "Basic cGs6c2s=" {
		t.Errorf("basicAuth() = %q", got)
	}
}

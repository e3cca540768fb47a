// Package langfuse is a small client for the Langfuse ingestion API. It
// records one trace per generated narrative and attaches user feedback
// scores to it. Without credentials it is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/blaisecz/sleep-stats/internal/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// asyncTimeout bounds each background ingestion call.
const asyncTimeout = 5 * time.Second

// Client is the interface for Langfuse operations.
type Client interface {
	// IsEnabled returns true if Langfuse is configured and enabled.
	IsEnabled() bool
	// CreateTrace queues a trace and returns its ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore queues a score for an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Flush waits for queued events to be sent or for ctx to end.
	Flush(ctx context.Context) error
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	ID       string // Optional: override trace ID (generates UUID if empty)
	UserID   string
	Name     string // e.g. "sleep-narrative"
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

// ScoreInput contains the data for creating a score.
type ScoreInput struct {
	TraceID string
	Name    string // e.g. "user_rating"
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
	Logger      *zap.Logger
}

type client struct {
	baseURL     string
	publicKey   string
	secretKey   string
	environment string
	enabled     bool
	httpClient  *http.Client
	log         *zap.Logger
	inflight    sync.WaitGroup
	now         func() time.Time
}

// NewClient creates a new Langfuse client.
// If baseURL or keys are empty, returns a disabled no-op client.
func NewClient(cfg Config) Client {
	log := logging.OrNop(cfg.Logger).Named("langfuse")

	enabled := cfg.BaseURL != "" && cfg.PublicKey != "" && cfg.SecretKey != ""
	switch {
	case cfg.BaseURL == "":
		log.Info("disabled", zap.String("reason", "LANGFUSE_BASE_URL is empty"))
	case cfg.PublicKey == "":
		log.Info("disabled", zap.String("reason", "LANGFUSE_PUBLIC_KEY is empty"))
	case cfg.SecretKey == "":
		log.Info("disabled", zap.String("reason", "LANGFUSE_SECRET_KEY is empty"))
	default:
		log.Info("enabled", zap.String("base_url", cfg.BaseURL), zap.String("env", cfg.Environment))
	}

	return &client{
		baseURL:     cfg.BaseURL,
		publicKey:   cfg.PublicKey,
		secretKey:   cfg.SecretKey,
		environment: cfg.Environment,
		enabled:     enabled,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.enabled {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	metadata := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if c.environment != "" {
		metadata["environment"] = c.environment
	}

	c.enqueue(c.event("trace-create", traceBody{
		ID:       traceID,
		Name:     in.Name,
		UserID:   in.UserID,
		Input:    in.Input,
		Output:   in.Output,
		Tags:     in.Tags,
		Metadata: metadata,
	}))

	return traceID, nil
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}
	if in.TraceID == "" {
		return fmt.Errorf("langfuse: score %q has no trace id", in.Name)
	}

	c.enqueue(c.event("score-create", scoreBody{
		ID:      uuid.New().String(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	}))

	return nil
}

func (c *client) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *client) event(kind string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.New().String(),
		Type:      kind,
		Timestamp: c.now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

// enqueue sends the event in the background so the request path never
// waits on Langfuse. Failures are logged, not returned.
func (c *client) enqueue(event ingestionEvent) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := c.sendBatch(ctx, []ingestionEvent{event}); err != nil {
			c.log.Warn("ingestion failed", zap.String("event_type", event.Type), zap.Error(err))
		}
	}()
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	url := c.baseURL + "/api/public/ingestion"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}

	return nil
}

// Internal types for HTTP API

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}

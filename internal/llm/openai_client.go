package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical sleep coach.

You receive statistics computed from one user's sleep log over the last 30 days, plus rule-based insights that compare those 30 days with the 30 days before. Base every statement only on the provided numbers.

Your goals:
- Summarize the user's sleep pattern in 1-2 sentences.
- Name what is going well, what could improve, and anything worth a warning.
- Give practical, behavioral recommendations ranked by priority.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- If data is limited, say so.

You must respond as strict JSON with exactly this shape:

{
  "summary": "1-2 sentences.",
  "observations": [
    {"kind": "strength" | "improvement" | "warning", "title": "short title", "description": "one sentence"}
  ],
  "recommendations": [
    {"title": "short title", "description": "one or two sentences", "priority": "high" | "medium" | "low"}
  ]
}

Give 2-6 observations and 3-5 recommendations. No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's sleep.

- "overview.summary": averages over the window (durations in minutes, quality 1-10, clock times HH:MM, efficiency against an 8 hour baseline).
- "overview.patterns": weekday vs weekend average duration and a 0-100 bedtime consistency score.
- "overview.trends": per-night duration and quality.
- "insights": rule-based findings for the same window.

JSON:

%s

Based on this data, respond in the required JSON format.`

// NarrativeLLM turns computed sleep statistics into a written analysis.
type NarrativeLLM interface {
	GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.LLMNarrativeOutput, error)
}

// OpenAIClient implements NarrativeLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for narratives.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// GenerateNarrative calls OpenAI and parses its JSON answer.
func (c *OpenAIClient) GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.LLMNarrativeOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(narrativeCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseNarrative(resp.Choices[0].Message.Content)
}

// ParseNarrative decodes the model's answer, tolerating a surrounding
// markdown code fence, and drops entries with unknown kinds or priorities.
func ParseNarrative(content string) (*domain.LLMNarrativeOutput, error) {
	content = stripCodeFence(content)

	var output domain.LLMNarrativeOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if strings.TrimSpace(output.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}

	observations := make([]domain.NarrativeObservation, 0, len(output.Observations))
	for _, o := range output.Observations {
		switch o.Kind {
		case domain.ObservationStrength, domain.ObservationImprovement, domain.ObservationWarning:
			observations = append(observations, o)
		}
	}
	output.Observations = observations

	recommendations := make([]domain.NarrativeRecommendation, 0, len(output.Recommendations))
	for _, r := range output.Recommendations {
		switch r.Priority {
		case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
			recommendations = append(recommendations, r)
		}
	}
	output.Recommendations = recommendations

	return &output, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

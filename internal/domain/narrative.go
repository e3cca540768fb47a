package domain

import (
	"time"

	"github.com/google/uuid"
)

// NarrativeSource tells whether a narrative came from the LLM or the built-in fallback.
type NarrativeSource string

const (
	NarrativeSourceLLM      NarrativeSource = "llm"
	NarrativeSourceFallback NarrativeSource = "fallback"
)

// ObservationKind classifies a narrative observation.
type ObservationKind string

const (
	ObservationStrength    ObservationKind = "strength"
	ObservationImprovement ObservationKind = "improvement"
	ObservationWarning     ObservationKind = "warning"
)

// Priority ranks a narrative recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// NarrativeObservation is one LLM observation.
type NarrativeObservation struct {
	Kind        ObservationKind `json:"kind" example:"strength" enums:"strength,improvement,warning"`
	Title       string          `json:"title" example:"Regular bedtime"`
	Description string          `json:"description" example:"You go to bed within 20 minutes of 23:15 most nights."`
}

// NarrativeRecommendation is one actionable suggestion.
type NarrativeRecommendation struct {
	Title       string   `json:"title" example:"Protect your weekday sleep"`
	Description string   `json:"description" example:"Aim for lights out by 23:00 on work nights."`
	Priority    Priority `json:"priority" example:"high" enums:"high,medium,low"`
}

// LLMNarrativeOutput is the strict JSON shape requested from the LLM.
type LLMNarrativeOutput struct {
	Summary         string                    `json:"summary"`
	Observations    []NarrativeObservation    `json:"observations"`
	Recommendations []NarrativeRecommendation `json:"recommendations"`
}

// NarrativeContext is the data sent to the LLM.
type NarrativeContext struct {
	WindowDays int           `json:"window_days"`
	Overview   StatsOverview `json:"overview"`
	Insights   []Insight     `json:"insights"`
}

// NarrativePattern carries the measured numbers next to the generated summary.
type NarrativePattern struct {
	Summary                string  `json:"summary"`
	AverageDurationMinutes int     `json:"average_duration_minutes" example:"452"`
	AverageQuality         float64 `json:"average_quality" example:"7.3"`
	ConsistencyScore       int     `json:"consistency_score" example:"78"`
}

// NarrativeAnalysis is the narrative response for a user.
// @Description Narrative analysis of the last 30 days of sleep.
type NarrativeAnalysis struct {
	AnalysisID      uuid.UUID                 `json:"analysis_id"`
	UserID          uuid.UUID                 `json:"user_id"`
	GeneratedAt     time.Time                 `json:"generated_at"`
	Source          NarrativeSource           `json:"source" example:"llm" enums:"llm,fallback"`
	Pattern         NarrativePattern          `json:"pattern"`
	Observations    []NarrativeObservation    `json:"observations"`
	Recommendations []NarrativeRecommendation `json:"recommendations"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}

// NarrativeFeedbackRequest rates a previously returned narrative.
// @Description User rating for a narrative analysis.
type NarrativeFeedbackRequest struct {
	// Trace ID from the narrative response
	TraceID string `json:"trace_id" validate:"required,max=64" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000" example:"The recommendations were useful."`
}

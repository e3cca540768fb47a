package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/sleep-stats/internal/api/validation"
	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/internal/service"
	"github.com/blaisecz/sleep-stats/pkg/problem"
)

// NarrativeHandler handles the LLM narrative endpoints.
type NarrativeHandler struct {
	service service.NarrativeService
}

// NewNarrativeHandler creates a new NarrativeHandler.
func NewNarrativeHandler(service service.NarrativeService) *NarrativeHandler {
	return &NarrativeHandler{service: service}
}

// Get handles GET /v1/users/{userId}/sleep/narrative
// @Summary Narrative sleep analysis
// @Description Natural-language analysis of the last 30 days. Cached per user until a session changes or the cache expires. When the LLM is not available a fixed fallback (source=fallback) is returned.
// @Tags sleep-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.NarrativeAnalysis "Narrative analysis"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 503 {object} problem.Problem "Session store unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/narrative [get]
func (h *NarrativeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Analyze(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to generate narrative")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Refresh handles POST /v1/users/{userId}/sleep/narrative/refresh
// @Summary Regenerate the narrative analysis
// @Description Drops the cached narrative and generates a new one.
// @Tags sleep-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.NarrativeAnalysis
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/narrative/refresh [post]
func (h *NarrativeHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Refresh(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to generate narrative")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Feedback handles POST /v1/users/{userId}/sleep/narrative/feedback
// @Summary Submit feedback on a narrative
// @Description Attach a 1-5 rating and optional comment to the trace of a previous narrative.
// @Tags sleep-insights
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param body body domain.NarrativeFeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/narrative/feedback [post]
func (h *NarrativeHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.NarrativeFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, err, "User not found", "Failed to submit feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/sleep-stats/internal/api/validation"
	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/internal/service"
	"github.com/blaisecz/sleep-stats/pkg/problem"
)

type SleepSessionHandler struct {
	service service.SleepSessionService
}

func NewSleepSessionHandler(service service.SleepSessionService) *SleepSessionHandler {
	return &SleepSessionHandler{service: service}
}

// Create handles POST /v1/users/{userId}/sleep-sessions
// @Summary Record a sleep session
// @Description Record a sleep session. duration_minutes is derived from the two timestamps. The local timezone defaults to the user's timezone.
// @Tags sleep-sessions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateSleepSessionRequest true "Sleep session data"
// @Success 201 {object} domain.SleepSessionResponse "Sleep session created"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Sleep period overlaps with an existing session"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 503 {object} problem.Problem "Session store unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-sessions [post]
func (h *SleepSessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateSleepSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to create sleep session")
		return
	}

	writeJSON(w, http.StatusCreated, session.ToResponse())
}

// Get handles GET /v1/users/{userId}/sleep-sessions/{sessionId}
// @Summary Get a sleep session
// @Tags sleep-sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param sessionId path string true "Sleep session UUID" format(uuid)
// @Success 200 {object} domain.SleepSessionResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or session not found"
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-sessions/{sessionId} [get]
func (h *SleepSessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}
	sessionID, ok := parseUUIDParam(w, r, "sessionId", "sleep session")
	if !ok {
		return
	}

	session, err := h.service.Get(r.Context(), userID, sessionID)
	if err != nil {
		writeServiceError(w, err, "Sleep session not found", "Failed to get sleep session")
		return
	}

	writeJSON(w, http.StatusOK, session.ToResponse())
}

// Update handles PATCH /v1/users/{userId}/sleep-sessions/{sessionId}
// @Summary Update a sleep session
// @Description Partially update a sleep session. Omitted fields are left unchanged; duration is recomputed.
// @Tags sleep-sessions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param sessionId path string true "Sleep session UUID" format(uuid)
// @Param request body domain.UpdateSleepSessionRequest true "Fields to update"
// @Success 200 {object} domain.SleepSessionResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or session not found"
// @Failure 409 {object} problem.Problem "Sleep period overlaps with an existing session"
// @Failure 422 {object} problem.Problem
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-sessions/{sessionId} [patch]
func (h *SleepSessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}
	sessionID, ok := parseUUIDParam(w, r, "sessionId", "sleep session")
	if !ok {
		return
	}

	var req domain.UpdateSleepSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, err := h.service.Update(r.Context(), userID, sessionID, &req)
	if err != nil {
		writeServiceError(w, err, "Sleep session not found", "Failed to update sleep session")
		return
	}

	writeJSON(w, http.StatusOK, session.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/sleep-sessions/{sessionId}
// @Summary Delete a sleep session
// @Tags sleep-sessions
// @Param userId path string true "User UUID" format(uuid)
// @Param sessionId path string true "Sleep session UUID" format(uuid)
// @Success 204 "Sleep session deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or session not found"
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-sessions/{sessionId} [delete]
func (h *SleepSessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}
	sessionID, ok := parseUUIDParam(w, r, "sessionId", "sleep session")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, sessionID); err != nil {
		writeServiceError(w, err, "Sleep session not found", "Failed to delete sleep session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /v1/users/{userId}/sleep-sessions
// @Summary List sleep sessions
// @Description Fetch paginated sleep history, newest first. Filter by time range.
// @Tags sleep-sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Only sessions starting at or after this time (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "Only sessions starting before this time (RFC3339)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepSessionListResponse "Sleep sessions with pagination"
// @Failure 400 {object} problem.Problem "Invalid path parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-sessions [get]
func (h *SleepSessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list sleep sessions")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseListFilter(r *http.Request) (domain.SleepSessionFilter, []problem.FieldError) {
	var filter domain.SleepSessionFilter
	var fieldErrors []problem.FieldError
	query := r.URL.Query()

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = query.Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseUUIDParam reads a UUID path parameter, writing a 400 when it is malformed.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		problem.BadRequest("Invalid " + label + " ID format").Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps service errors onto problem responses.
func writeServiceError(w http.ResponseWriter, err error, notFound, internal string) {
	var argErr *domain.ArgumentError
	switch {
	case errors.As(err, &argErr):
		problem.ValidationError("Invalid query parameters", []problem.FieldError{
			{Field: argErr.Field, Message: argErr.Reason},
		}).Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(notFound).Write(w)
	case errors.Is(err, domain.ErrOverlappingSleep):
		problem.Conflict("Overlapping sleep period detected").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
			{Field: "wake_time", Message: "must be greater than sleep_time"},
		}).Write(w)
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		problem.ServiceUnavailable("Sleep data is temporarily unavailable").Write(w)
	default:
		problem.InternalError(internal).Write(w)
	}
}

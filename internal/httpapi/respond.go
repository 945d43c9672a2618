package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/mastery"
	"github.com/brightpath/tutor/internal/planner"
	"github.com/brightpath/tutor/internal/session"
	"github.com/brightpath/tutor/internal/store"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respondError maps engine errors onto the HTTP surface: not-found,
// invalid-transition, plan conflicts, data-integrity faults, and
// transient contention each get a distinct status and code.
func respondError(w http.ResponseWriter, log *logging.Logger, err error) {
	var (
		invalid   *session.ErrInvalidTransition
		integrity *curriculum.ErrIntegrity
	)

	switch {
	case errors.Is(err, store.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{Error: err.Error(), Code: "not_found"})
	case errors.As(err, &invalid):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error(), Code: "invalid_transition"})
	case errors.Is(err, planner.ErrTooManyActivePlans),
		errors.Is(err, planner.ErrDuplicateGoal):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error(), Code: "plan_conflict"})
	case errors.Is(err, planner.ErrEmptyGoal):
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error(), Code: "empty_goal"})
	case errors.As(err, &integrity):
		log.Error("curriculum integrity fault", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error(), Code: "data_integrity"})
	case errors.Is(err, mastery.ErrUpdateContention):
		respondJSON(w, http.StatusServiceUnavailable, errorBody{Error: err.Error(), Code: "contention"})
	default:
		log.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error", Code: "internal"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorBody{Error: msg, Code: "bad_request"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, "invalid request body")
		return false
	}
	return true
}

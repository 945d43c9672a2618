package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brightpath/tutor/internal/engine"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/review"
	"github.com/brightpath/tutor/internal/session"
)

// Handlers exposes the engine's operations over HTTP.
type Handlers struct {
	engine *engine.Engine
	log    *logging.Logger
}

// NewHandlers creates the HTTP handlers.
func NewHandlers(eng *engine.Engine, log *logging.Logger) *Handlers {
	return &Handlers{engine: eng, log: log}
}

// StartSession handles POST /api/sessions.
func (h *Handlers) StartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID      string `json:"studentId"`
		ConceptID      string `json:"conceptId"`
		EmotionalState string `json:"emotionalState,omitempty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StudentID == "" || req.ConceptID == "" {
		badRequest(w, "studentId and conceptId are required")
		return
	}

	sess, teaching, err := h.engine.Sessions.Start(r.Context(), req.StudentID, req.ConceptID, req.EmotionalState)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, struct {
		Session  *session.Session `json:"session"`
		Teaching string           `json:"teaching"`
	}{sess, teaching})
}

// GetSession handles GET /api/sessions/{sessionID}.
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.engine.Sessions.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

// SubmitAnswer handles POST /api/sessions/{sessionID}/answers.
func (h *Handlers) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestionType   string `json:"questionType"`
		IsCorrect      *bool  `json:"isCorrect"`
		ResponseTimeMs int64  `json:"responseTimeMs"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.QuestionType == "" || req.IsCorrect == nil {
		badRequest(w, "questionType and isCorrect are required")
		return
	}
	if req.ResponseTimeMs < 0 {
		badRequest(w, "responseTimeMs must be non-negative")
		return
	}

	result, err := h.engine.Sessions.SubmitAnswer(r.Context(), session.SubmitAnswerInput{
		SessionID:      chi.URLParam(r, "sessionID"),
		QuestionType:   req.QuestionType,
		IsCorrect:      *req.IsCorrect,
		ResponseTimeMs: req.ResponseTimeMs,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// RequestHint handles POST /api/sessions/{sessionID}/hint.
func (h *Handlers) RequestHint(w http.ResponseWriter, r *http.Request) {
	sess, hint, err := h.engine.Sessions.RequestHint(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Session *session.Session `json:"session"`
		Hint    string           `json:"hint"`
	}{sess, hint})
}

// ReturnToPractice handles POST /api/sessions/{sessionID}/practice.
func (h *Handlers) ReturnToPractice(w http.ResponseWriter, r *http.Request) {
	sess, err := h.engine.Sessions.ReturnToPractice(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

// EndSession handles POST /api/sessions/{sessionID}/end.
func (h *Handlers) EndSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmotionalState string `json:"emotionalState,omitempty"`
	}
	// An empty body is fine for ending a session.
	if r.ContentLength > 0 && !decodeBody(w, r, &req) {
		return
	}

	summary, err := h.engine.Sessions.EndSession(r.Context(), chi.URLParam(r, "sessionID"), req.EmotionalState)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// GeneratePlan handles POST /api/plans.
func (h *Handlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GoalID      string     `json:"goalId"`
		StudentID   string     `json:"studentId"`
		WeeklyHours float64    `json:"weeklyHours"`
		TargetDate  *time.Time `json:"targetDate,omitempty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.GoalID == "" || req.StudentID == "" {
		badRequest(w, "goalId and studentId are required")
		return
	}
	if req.WeeklyHours <= 0 {
		badRequest(w, "weeklyHours must be positive")
		return
	}

	plan, err := h.engine.Planner.Generate(r.Context(), req.GoalID, req.StudentID, req.WeeklyHours, req.TargetDate)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, plan)
}

// GetPlan handles GET /api/plans/{planID}.
func (h *Handlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.engine.Planner.Get(r.Context(), chi.URLParam(r, "planID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

// NextInPlan handles GET /api/plans/{planID}/next.
func (h *Handlers) NextInPlan(w http.ResponseWriter, r *http.Request) {
	next, ok, err := h.engine.Planner.Next(r.Context(), chi.URLParam(r, "planID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	if !ok {
		// Plan finished: an empty recommendation is a valid outcome.
		respondJSON(w, http.StatusOK, struct {
			Done bool `json:"done"`
		}{true})
		return
	}
	respondJSON(w, http.StatusOK, next)
}

// PausePlan handles POST /api/plans/{planID}/pause.
func (h *Handlers) PausePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.engine.Planner.Pause(r.Context(), chi.URLParam(r, "planID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

// ResumePlan handles POST /api/plans/{planID}/resume.
func (h *Handlers) ResumePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.engine.Planner.Resume(r.Context(), chi.URLParam(r, "planID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

// AbandonPlan handles POST /api/plans/{planID}/abandon.
func (h *Handlers) AbandonPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.engine.Planner.Abandon(r.Context(), chi.URLParam(r, "planID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

// NextForStudent handles GET /api/students/{studentID}/next-concept.
func (h *Handlers) NextForStudent(w http.ResponseWriter, r *http.Request) {
	next, ok, err := h.engine.Planner.NextForStudent(r.Context(), chi.URLParam(r, "studentID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	if !ok {
		respondJSON(w, http.StatusOK, struct {
			Done bool `json:"done"`
		}{true})
		return
	}
	respondJSON(w, http.StatusOK, next)
}

// EvaluateGate handles GET /api/students/{studentID}/gate/{conceptID}.
func (h *Handlers) EvaluateGate(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.Gate.Evaluate(r.Context(), chi.URLParam(r, "studentID"), chi.URLParam(r, "conceptID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// StudentMastery handles GET /api/students/{studentID}/mastery.
func (h *Handlers) StudentMastery(w http.ResponseWriter, r *http.Request) {
	records, err := h.engine.Mastery.RecordsByStudent(r.Context(), chi.URLParam(r, "studentID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// BranchTree handles GET /api/students/{studentID}/branches.
func (h *Handlers) BranchTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.engine.BranchTree(r.Context(), chi.URLParam(r, "studentID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, tree)
}

// ReviewQueue handles GET /api/students/{studentID}/reviews.
func (h *Handlers) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	items, err := h.engine.Reviews.DueForStudent(r.Context(), chi.URLParam(r, "studentID"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Items []review.Item `json:"items"`
	}{items})
}

// RecordRetentionProbe handles POST /api/students/{studentID}/reviews/{conceptID}.
func (h *Handlers) RecordRetentionProbe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Score *float64 `json:"score"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Score == nil {
		badRequest(w, "score is required")
		return
	}

	rec, err := h.engine.Reviews.RecordProbe(r.Context(), chi.URLParam(r, "studentID"), chi.URLParam(r, "conceptID"), *req.Score)
	if err != nil {
		if errors.Is(err, review.ErrInvalidScore) {
			respondJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error(), Code: "invalid_score"})
			return
		}
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{"ok"})
}

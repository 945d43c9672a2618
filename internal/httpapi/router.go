// Package httpapi is the CRUD surface over the adaptive engine.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brightpath/tutor/internal/engine"
	"github.com/brightpath/tutor/internal/logging"
)

// NewRouter builds the chi router with all engine routes mounted.
func NewRouter(eng *engine.Engine, log *logging.Logger) http.Handler {
	h := NewHandlers(eng, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.StartSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", h.GetSession)
				r.Post("/answers", h.SubmitAnswer)
				r.Post("/hint", h.RequestHint)
				r.Post("/practice", h.ReturnToPractice)
				r.Post("/end", h.EndSession)
			})
		})

		r.Route("/plans", func(r chi.Router) {
			r.Post("/", h.GeneratePlan)
			r.Route("/{planID}", func(r chi.Router) {
				r.Get("/", h.GetPlan)
				r.Get("/next", h.NextInPlan)
				r.Post("/pause", h.PausePlan)
				r.Post("/resume", h.ResumePlan)
				r.Post("/abandon", h.AbandonPlan)
			})
		})

		r.Route("/students/{studentID}", func(r chi.Router) {
			r.Get("/next-concept", h.NextForStudent)
			r.Get("/gate/{conceptID}", h.EvaluateGate)
			r.Get("/mastery", h.StudentMastery)
			r.Get("/branches", h.BranchTree)
			r.Get("/reviews", h.ReviewQueue)
			r.Post("/reviews/{conceptID}", h.RecordRetentionProbe)
		})
	})

	return r
}

// requestLogger logs each request with its status and duration.
func requestLogger(log *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/plan", s.handleGetPlan)
		r.Post("/answers", s.handleSubmitAnswer)

		r.Get("/focus", s.handleGetFocus)
		r.Get("/progress", s.handleGetProgress)
		r.Get("/stats", s.handleGetStats)

		r.Get("/questions/{id}", s.handleGetQuestion)
		r.Post("/questions/{id}/explain", s.handleExplainQuestion)
		r.Post("/questions/{id}/translate", s.handleTranslateQuestion)

		r.Post("/session/reset", s.handleResetSession)
		r.Get("/session/summary", s.handleSessionSummary)
		r.Put("/session/state/{key}", s.handleSaveSessionState)
		r.Get("/session/state/{key}", s.handleLoadSessionState)
		r.Delete("/session/state/{key}", s.handleDeleteSessionState)

		r.Get("/tip", s.handleQuickTip)
		r.Get("/taxonomy", s.handleTaxonomy)
	})

	return r
}

package api

import (
	"net/http"

	"github.com/yida7942-create/gmat-tutor/internal/services"
)

// handleGetPlan generates a daily plan.
//
//	GET /api/plan?count=20&subcategory=CR&skill_tag=Assumption
func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	count := intQuery(r, "count", 0)
	subcategory := r.URL.Query().Get("subcategory")
	skillTag := r.URL.Query().Get("skill_tag")

	plan, err := s.Practice.GetDailyPlan(r.Context(), count, subcategory, skillTag)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, plan)
}

// handleSubmitAnswer records one answered question and returns the result,
// including an emergency drill when one was triggered.
//
//	POST /api/answers
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var input services.SubmitAnswerInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Practice.SubmitAnswer(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

// handleResetSession clears the session monitor's error streaks.
//
//	POST /api/session/reset
func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	s.Practice.ResetSession(r.Context())
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "reset"})
}

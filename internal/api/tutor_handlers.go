package api

import (
	"net/http"
)

type explainRequest struct {
	UserAnswer int `json:"user_answer"`
}

// handleExplainQuestion returns an explanation anchored on the submitted
// answer. Served from the prefetch cache when available.
//
//	POST /api/questions/{id}/explain
func (s *Server) handleExplainQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req explainRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	text, err := s.Tutor.Explain(r.Context(), id, req.UserAnswer)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"explanation": text})
}

// handleTranslateQuestion returns a translation with sentence analysis.
//
//	POST /api/questions/{id}/translate
func (s *Server) handleTranslateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	text, err := s.Tutor.Translate(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"translation": text})
}

// handleSessionSummary reviews the recent session.
//
//	GET /api/session/summary
func (s *Server) handleSessionSummary(w http.ResponseWriter, r *http.Request) {
	text, err := s.Tutor.SessionSummary(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"summary": text})
}

// handleQuickTip returns a short tip for a question type and skill tag.
//
//	GET /api/tip?type=CR&skill_tag=Assumption
func (s *Server) handleQuickTip(w http.ResponseWriter, r *http.Request) {
	questionType := r.URL.Query().Get("type")
	skillTag := r.URL.Query().Get("skill_tag")
	tip := s.Tutor.QuickTip(r.Context(), questionType, skillTag)
	respondJSON(w, r, http.StatusOK, map[string]string{"tip": tip})
}

// handleTaxonomy returns the error-classification taxonomy.
//
//	GET /api/taxonomy
func (s *Server) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Tutor.Taxonomy())
}

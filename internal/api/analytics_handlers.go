package api

import "net/http"

// handleGetFocus returns the current study recommendation.
//
//	GET /api/focus
func (s *Server) handleGetFocus(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Analytics.RecommendedFocus(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, rec)
}

// handleGetProgress returns the progress report.
//
//	GET /api/progress?days=7
func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", 0)
	summary, err := s.Analytics.ProgressSummary(r.Context(), days)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}

// handleGetStats returns bank-wide counters.
//
//	GET /api/stats
func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Analytics.Stats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, stats)
}

package api

import "net/http"

// handleGetQuestion returns one question by id.
//
//	GET /api/questions/{id}
func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	q, err := s.Practice.GetQuestion(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, q)
}

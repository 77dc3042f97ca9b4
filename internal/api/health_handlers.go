package api

import "net/http"

// handleHealth reports liveness and the background queue depth.
//
//	GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{"status": "ok"}
	if s.Pool != nil {
		payload["queue_size"] = s.Pool.QueueSize()
	}
	respondJSON(w, r, http.StatusOK, payload)
}

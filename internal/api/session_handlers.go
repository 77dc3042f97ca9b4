package api

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yida7942-create/gmat-tutor/internal/errors"
)

// maxSessionStateBytes bounds the opaque state blob a client may store.
const maxSessionStateBytes = 256 * 1024

// handleSaveSessionState stores an opaque state blob under a key.
//
//	PUT /api/session/state/{key}
func (s *Server) handleSaveSessionState(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSessionStateBytes+1))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("failed to read body"))
		return
	}
	if len(body) > maxSessionStateBytes {
		handleError(w, r, errors.NewValidationError("body", "state too large"))
		return
	}

	if err := s.Session.Save(r.Context(), key, string(body)); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "saved"})
}

// handleLoadSessionState returns a previously stored state blob.
//
//	GET /api/session/state/{key}
func (s *Server) handleLoadSessionState(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, err := s.Session.Load(r.Context(), key)
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(value))
}

// handleDeleteSessionState removes a stored state blob.
//
//	DELETE /api/session/state/{key}
func (s *Server) handleDeleteSessionState(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if err := s.Session.Delete(r.Context(), key); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// ABOUTME: Profile read/update handlers for the single site-owner record
// ABOUTME: Reads always succeed because the store falls back to defaults

package api

import (
	"net/http"

	"github.com/lwr/portfolio/internal/store"
)

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetProfile(r.Context())
	if err != nil {
		writeStoreError(w, err, "profile")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	var p store.Profile
	if !decodeJSON(w, r, &p) {
		return
	}
	if p.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := s.store.SetProfile(r.Context(), &p); err != nil {
		writeStoreError(w, err, "profile")
		return
	}
	writeJSON(w, http.StatusOK, &p)
}

// ABOUTME: CRUD handlers for media albums
// ABOUTME: Deleting an album also removes all media images inside it

package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lwr/portfolio/internal/store"
)

// albumInput is the client-supplied portion of an album
type albumInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cover       string `json:"cover"`
}

func (s *Server) handleAlbumsList(w http.ResponseWriter, r *http.Request) {
	albums, err := s.store.ListAlbums(r.Context())
	if err != nil {
		writeStoreError(w, err, "albums")
		return
	}
	writeJSON(w, http.StatusOK, albums)
}

func (s *Server) handleAlbumGet(w http.ResponseWriter, r *http.Request) {
	a, err := s.store.GetAlbum(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "album")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleAlbumCreate(w http.ResponseWriter, r *http.Request) {
	var in albumInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	a := &store.Album{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Cover:       in.Cover,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.CreateAlbum(r.Context(), a); err != nil {
		writeStoreError(w, err, "album")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleAlbumUpdate(w http.ResponseWriter, r *http.Request) {
	var in albumInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	a, err := s.store.GetAlbum(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "album")
		return
	}

	a.Name = in.Name
	a.Description = in.Description
	a.Cover = in.Cover

	if err := s.store.UpdateAlbum(r.Context(), a); err != nil {
		writeStoreError(w, err, "album")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleAlbumDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAlbum(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err, "album")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

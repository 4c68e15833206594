// ABOUTME: Handlers for media images within albums
// ABOUTME: Listing supports an optional albumId filter for gallery pages

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lwr/portfolio/internal/store"
)

// mediaInput is the client-supplied portion of a media image
type mediaInput struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	AlbumID  string `json:"albumId"`
	Category string `json:"category"`
}

func (s *Server) handleMediaList(w http.ResponseWriter, r *http.Request) {
	images, err := s.store.ListMedia(r.Context(), r.URL.Query().Get("albumId"))
	if err != nil {
		writeStoreError(w, err, "media")
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (s *Server) handleMediaCreate(w http.ResponseWriter, r *http.Request) {
	var in mediaInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Title == "" || in.URL == "" || in.AlbumID == "" {
		writeError(w, http.StatusBadRequest, "title, url and albumId are required")
		return
	}

	// The image must land in an existing album
	if _, err := s.store.GetAlbum(r.Context(), in.AlbumID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "album not found")
			return
		}
		writeStoreError(w, err, "album")
		return
	}

	m := &store.MediaImage{
		ID:        uuid.NewString(),
		Title:     in.Title,
		URL:       in.URL,
		AlbumID:   in.AlbumID,
		Category:  in.Category,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateMedia(r.Context(), m); err != nil {
		writeStoreError(w, err, "media image")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleMediaDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteMedia(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err, "media image")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ABOUTME: CRUD handlers for testimonials
// ABOUTME: Ratings are validated to the 1..5 range before hitting the store

package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lwr/portfolio/internal/store"
)

// reviewInput is the client-supplied portion of a review
type reviewInput struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

func (in *reviewInput) validate() string {
	if in.Name == "" {
		return "name is required"
	}
	if in.Content == "" {
		return "content is required"
	}
	if in.Rating < 1 || in.Rating > 5 {
		return "rating must be between 1 and 5"
	}
	return ""
}

func (s *Server) handleReviewsList(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.store.ListReviews(r.Context())
	if err != nil {
		writeStoreError(w, err, "reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (s *Server) handleReviewGet(w http.ResponseWriter, r *http.Request) {
	rev, err := s.store.GetReview(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "review")
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

func (s *Server) handleReviewCreate(w http.ResponseWriter, r *http.Request) {
	var in reviewInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	rev := &store.Review{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Role:      in.Role,
		Content:   in.Content,
		Rating:    in.Rating,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateReview(r.Context(), rev); err != nil {
		writeStoreError(w, err, "review")
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

func (s *Server) handleReviewUpdate(w http.ResponseWriter, r *http.Request) {
	var in reviewInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	rev := &store.Review{
		ID:      r.PathValue("id"),
		Name:    in.Name,
		Role:    in.Role,
		Content: in.Content,
		Rating:  in.Rating,
	}

	if err := s.store.UpdateReview(r.Context(), rev); err != nil {
		writeStoreError(w, err, "review")
		return
	}

	got, err := s.store.GetReview(r.Context(), rev.ID)
	if err != nil {
		writeStoreError(w, err, "review")
		return
	}
	writeJSON(w, http.StatusOK, got)
}

func (s *Server) handleReviewDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteReview(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err, "review")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ABOUTME: Contact-form handlers, the only anonymous write path in the API
// ABOUTME: New messages fan out to the notifier without blocking the response

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lwr/portfolio/internal/store"
)

// contactInput is the payload of the public contact form.
type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (in *contactInput) validate() string {
	if in.Name == "" {
		return "name is required"
	}
	if in.Email == "" {
		return "email is required"
	}
	if in.Subject == "" {
		return "subject is required"
	}
	if in.Message == "" {
		return "message is required"
	}
	return ""
}

func (s *Server) handleContactList(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.store.ListContactMessages(r.Context())
	if err != nil {
		writeStoreError(w, err, "contact messages")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleContactCreate(w http.ResponseWriter, r *http.Request) {
	var in contactInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	m := &store.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateContactMessage(r.Context(), m); err != nil {
		writeStoreError(w, err, "contact message")
		return
	}

	// Notification delivery must not hold up the sender. The request
	// context dies with the response, so the goroutine gets its own.
	if s.notifier != nil {
		go func(m store.ContactMessage) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			s.notifier.ContactReceived(ctx, &m)
		}(*m)
	}

	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleContactMarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.MarkContactMessageRead(r.Context(), id); err != nil {
		writeStoreError(w, err, "contact message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleContactDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteContactMessage(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err, "contact message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

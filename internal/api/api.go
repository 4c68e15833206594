// ABOUTME: HTTP API server wiring for portfolio-server
// ABOUTME: Registers routes, auth gating, CORS, and request logging

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/lwr/portfolio/internal/auth"
	"github.com/lwr/portfolio/internal/config"
	"github.com/lwr/portfolio/internal/store"
)

// Notifier receives contact-form submissions for out-of-band delivery.
// Implementations must not block the request path.
type Notifier interface {
	ContactReceived(ctx context.Context, m *store.ContactMessage)
}

// Server implements the portfolio HTTP API
type Server struct {
	store    store.Store
	issuer   *auth.TokenIssuer
	password *auth.PasswordChecker
	notifier Notifier
	uploads  config.UploadsConfig
	origins  []string
	logger   *slog.Logger
}

// New creates a new API server. notifier may be nil when contact
// notifications are not configured.
func New(st store.Store, issuer *auth.TokenIssuer, password *auth.PasswordChecker, notifier Notifier, uploads config.UploadsConfig, origins []string) *Server {
	return &Server{
		store:    st,
		issuer:   issuer,
		password: password,
		notifier: notifier,
		uploads:  uploads,
		origins:  origins,
		logger:   slog.Default().With("component", "api"),
	}
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.corsMiddleware(s.logMiddleware(mux))
}

// RegisterRoutes registers all API routes on the given mux.
// Reads are anonymous; mutations require a verified admin token. The API
// never pre-empts the authorization decision for callers holding no token -
// the middleware rejects with 401 and clients react to that.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	requireAdmin := auth.RequireAdmin(s.issuer)
	optionalAdmin := auth.OptionalAdmin(s.issuer)
	gated := func(h http.HandlerFunc) http.Handler { return requireAdmin(h) }
	// Public reads still learn whether the caller is the admin, so
	// handlers can enrich output without ever rejecting anonymous traffic.
	public := func(h http.HandlerFunc) http.Handler { return optionalAdmin(h) }

	mux.Handle("GET /api/", public(s.handleRoot))

	// Auth
	mux.HandleFunc("POST /api/admin/login", s.handleLogin)
	mux.Handle("GET /api/admin/verify", gated(s.handleVerify))

	// Projects
	mux.Handle("GET /api/projects", public(s.handleProjectsList))
	mux.Handle("GET /api/projects/{id}", public(s.handleProjectGet))
	mux.Handle("POST /api/projects", gated(s.handleProjectCreate))
	mux.Handle("PUT /api/projects/{id}", gated(s.handleProjectUpdate))
	mux.Handle("DELETE /api/projects/{id}", gated(s.handleProjectDelete))

	// Albums
	mux.Handle("GET /api/albums", public(s.handleAlbumsList))
	mux.Handle("GET /api/albums/{id}", public(s.handleAlbumGet))
	mux.Handle("POST /api/albums", gated(s.handleAlbumCreate))
	mux.Handle("PUT /api/albums/{id}", gated(s.handleAlbumUpdate))
	mux.Handle("DELETE /api/albums/{id}", gated(s.handleAlbumDelete))

	// Media
	mux.Handle("GET /api/media", public(s.handleMediaList))
	mux.Handle("POST /api/media", gated(s.handleMediaCreate))
	mux.Handle("DELETE /api/media/{id}", gated(s.handleMediaDelete))

	// Reviews
	mux.Handle("GET /api/reviews", public(s.handleReviewsList))
	mux.Handle("GET /api/reviews/{id}", public(s.handleReviewGet))
	mux.Handle("POST /api/reviews", gated(s.handleReviewCreate))
	mux.Handle("PUT /api/reviews/{id}", gated(s.handleReviewUpdate))
	mux.Handle("DELETE /api/reviews/{id}", gated(s.handleReviewDelete))

	// Contact (submission is anonymous, management is gated)
	mux.Handle("GET /api/contact", gated(s.handleContactList))
	mux.HandleFunc("POST /api/contact", s.handleContactCreate)
	mux.Handle("PUT /api/contact/{id}/read", gated(s.handleContactMarkRead))
	mux.Handle("DELETE /api/contact/{id}", gated(s.handleContactDelete))

	// Profile
	mux.Handle("GET /api/profile", public(s.handleProfileGet))
	mux.Handle("PUT /api/profile", gated(s.handleProfileUpdate))

	// Uploads
	mux.Handle("POST /api/upload", gated(s.handleUpload))
	mux.Handle("GET /api/uploads/", http.StripPrefix("/api/uploads/",
		http.FileServer(http.Dir(s.uploads.Dir))))
}

// handleRoot is the API's status endpoint. The admin additionally sees
// their session confirmed and the count of unhandled contact messages.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"message": "LWR Portfolio API",
		"status":  "running",
	}

	if auth.IsAdmin(r.Context()) {
		body["admin"] = true
		if msgs, err := s.store.ListContactMessages(r.Context()); err == nil {
			unread := 0
			for _, m := range msgs {
				if !m.Read {
					unread++
				}
			}
			body["unreadMessages"] = unread
		}
	}

	writeJSON(w, http.StatusOK, body)
}

// corsMiddleware handles cross-origin requests from the browser frontend.
// With no configured origins every origin is allowed, matching the original
// deployment where frontend and API are served from different hosts.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	if len(s.origins) == 0 {
		return true
	}
	for _, allowed := range s.origins {
		if allowed == origin || allowed == "*" {
			return true
		}
	}
	return false
}

// statusRecorder captures the response status for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

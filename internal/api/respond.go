// ABOUTME: JSON response and request-body helpers shared by all handlers
// ABOUTME: Maps store errors onto HTTP statuses consistently

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lwr/portfolio/internal/store"
)

// maxBodyBytes bounds JSON request bodies; uploads have their own limit.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError converts store errors into the appropriate HTTP response.
func writeStoreError(w http.ResponseWriter, err error, entity string) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, entity+" not found")
		return
	}
	slog.Default().Error("store operation failed", "entity", entity, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// decodeJSON parses the request body into v, rejecting oversized or
// malformed payloads. Returns false if a response has already been written.
// Unknown fields are ignored so a client can PUT back an entity it fetched,
// server-assigned fields included.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

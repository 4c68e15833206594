// ABOUTME: Admin login and token verification endpoints
// ABOUTME: Exchanges the shared password for a bearer token

package api

import (
	"net/http"
)

// loginRequest is the body of POST /api/admin/login
type loginRequest struct {
	Password string `json:"password"`
}

// loginResponse mirrors the original API: a wrong password is a normal
// 200 response with success=false, not an HTTP error.
type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !s.password.Check(req.Password) {
		s.logger.Info("admin login rejected")
		writeJSON(w, http.StatusOK, loginResponse{Success: false, Message: "Parolă incorectă"})
		return
	}

	token, err := s.issuer.Issue()
	if err != nil {
		s.logger.Error("issuing admin token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info("admin login accepted")
	writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: token})
}

// handleVerify runs behind RequireAdmin, so reaching it means the token is good.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true, "admin": true})
}

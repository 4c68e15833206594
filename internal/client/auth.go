// ABOUTME: Authentication operations: password login, token verify, logout
// ABOUTME: Verify fails closed and skips the network when no token is stored

package client

import (
	"context"
	"fmt"
	"net/http"
)

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// Login exchanges the password for a capability token. A rejected password
// is (false, nil) and leaves the token store untouched; the token is stored
// only once the server has confirmed it. The password is sent exactly once
// per call.
func (c *Client) Login(ctx context.Context, password string) (bool, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/login", nil,
		map[string]string{"password": password}, &resp)
	if err != nil {
		return false, err
	}

	if !resp.Success {
		c.logger.Debug("login rejected", "message", resp.Message)
		return false, nil
	}
	if resp.Token == "" {
		return false, fmt.Errorf("login succeeded but no token in response")
	}

	if err := c.tokens.SetAuthenticated(resp.Token); err != nil {
		return false, fmt.Errorf("storing token: %w", err)
	}
	return true, nil
}

// Verify reports whether the stored token is still accepted by the server.
// With no stored token it answers false without touching the network. Any
// transport failure or inconclusive answer is false: an unconfirmed token
// never keeps admin mode open.
func (c *Client) Verify(ctx context.Context) bool {
	token, err := c.tokens.Load()
	if err != nil {
		c.logger.Warn("loading stored token", "error", err)
		return false
	}
	if token == "" {
		return false
	}

	var resp verifyResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/verify", nil, nil, &resp); err != nil {
		c.logger.Debug("verify failed", "error", err)
		return false
	}
	return resp.Valid
}

// Logout discards the stored token. It needs no server round-trip:
// revoking your own session must work offline.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// ABOUTME: Unit tests for admin token issue and verification
// ABOUTME: Tests valid tokens, invalid tokens, and expired tokens

package auth

import (
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("test-secret-key-for-jwt-signing!")

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	if err := issuer.Verify(token); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestTokenIssuer_InvalidToken(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "garbage token",
			token: "not-a-jwt-token",
		},
		{
			name:  "malformed JWT",
			token: "header.payload.signature",
		},
		{
			name: "wrong secret",
			token: func() string {
				other := NewTokenIssuer([]byte("a-completely-different-secret!!!"), time.Hour)
				token, _ := other.Issue()
				return token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := issuer.Verify(tt.token)
			if err == nil {
				t.Error("Verify() should have returned an error")
			}
		})
	}
}

func TestTokenIssuer_ExpiredToken(t *testing.T) {
	// Issue a token that expired an hour ago
	issuer := NewTokenIssuer(testSecret, -time.Hour)

	token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	err = NewTokenIssuer(testSecret, time.Hour).Verify(token)
	if err == nil {
		t.Fatal("Verify() should have returned an error for expired token")
	}
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

// ABOUTME: Shared admin password verification for the login endpoint
// ABOUTME: Supports bcrypt hashes and constant-time plaintext comparison

package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordChecker verifies the single shared admin password.
// Exactly one of the two fields is set, mirroring the config contract.
type PasswordChecker struct {
	plaintext string
	hash      string
}

// NewPasswordChecker creates a checker for a plaintext configured password.
func NewPasswordChecker(plaintext string) *PasswordChecker {
	return &PasswordChecker{plaintext: plaintext}
}

// NewPasswordHashChecker creates a checker for a bcrypt-hashed configured password.
func NewPasswordHashChecker(hash string) *PasswordChecker {
	return &PasswordChecker{hash: hash}
}

// Check reports whether the candidate matches the configured admin password.
// A wrong password is a normal outcome, not an error.
func (c *PasswordChecker) Check(candidate string) bool {
	if c.hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(candidate)) == nil
	}
	if c.plaintext == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.plaintext), []byte(candidate)) == 1
}

// HashPassword produces a bcrypt hash suitable for auth.admin_password_hash.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

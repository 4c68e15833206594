// ABOUTME: Durable storage for the admin capability token and session marker
// ABOUTME: The two are written and cleared together so they can never diverge

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore persists the admin capability token together with the coarse
// session marker. The only mutators are SetAuthenticated and Clear, which
// keeps the token and the marker from ever being set independently.
type TokenStore interface {
	// SetAuthenticated stores the token and marks the session authenticated.
	SetAuthenticated(token string) error
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	// Clear removes the token and the marker. Idempotent.
	Clear() error
}

// tokenRecord is the on-disk shape of a stored session.
type tokenRecord struct {
	Token         string `json:"token"`
	Authenticated bool   `json:"authenticated"`
}

// FileTokenStore keeps the session in a single JSON file with owner-only
// permissions. Writes go through a temp file and rename so a crash mid-write
// never leaves a half-written session behind.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

// NewFileTokenStore creates a store backed by the given file path. The
// parent directory is created on first write, not here.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// DefaultTokenPath returns the conventional per-user session file location.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "portfolio", "session.json"), nil
}

func (s *FileTokenStore) SetAuthenticated(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		return fmt.Errorf("refusing to store an empty token")
	}

	data, err := json.Marshal(tokenRecord{Token: token, Authenticated: true})
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "session-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("restricting session file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}

	var rec tokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// A corrupt session file is treated as no session.
		return "", nil
	}
	if !rec.Authenticated {
		return "", nil
	}
	return rec.Token, nil
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}

// MemoryTokenStore is an in-process TokenStore for tests and for callers
// that have no durable home for a session.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) SetAuthenticated(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == "" {
		return fmt.Errorf("refusing to store an empty token")
	}
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", nil
	}
	return s.token, nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}

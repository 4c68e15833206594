// ABOUTME: Tests for the file-backed and in-memory token stores
// ABOUTME: Covers round-trips, idempotent clears, and corrupt-file recovery

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func newFileStore(t *testing.T) *FileTokenStore {
	t.Helper()
	return NewFileTokenStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	s := newFileStore(t)

	token, err := s.Load()
	if err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	if token != "" {
		t.Fatalf("empty store returned token %q", token)
	}

	if err := s.SetAuthenticated("abc123"); err != nil {
		t.Fatalf("SetAuthenticated: %v", err)
	}

	token, err = s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("Load = %q, want abc123", token)
	}
}

func TestFileTokenStoreOverwrite(t *testing.T) {
	s := newFileStore(t)

	if err := s.SetAuthenticated("first"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAuthenticated("second"); err != nil {
		t.Fatal(err)
	}

	token, _ := s.Load()
	if token != "second" {
		t.Fatalf("Load = %q, want second", token)
	}
}

func TestFileTokenStoreClearIdempotent(t *testing.T) {
	s := newFileStore(t)

	if err := s.SetAuthenticated("abc123"); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("first Clear: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}

	token, err := s.Load()
	if err != nil {
		t.Fatalf("Load after Clear: %v", err)
	}
	if token != "" {
		t.Fatalf("token survived Clear: %q", token)
	}
}

func TestFileTokenStoreRejectsEmptyToken(t *testing.T) {
	s := newFileStore(t)
	if err := s.SetAuthenticated(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestFileTokenStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewFileTokenStore(path)
	token, err := s.Load()
	if err != nil {
		t.Fatalf("Load on corrupt file: %v", err)
	}
	if token != "" {
		t.Fatalf("corrupt file yielded token %q", token)
	}
}

func TestFileTokenStorePermissions(t *testing.T) {
	s := newFileStore(t)
	if err := s.SetAuthenticated("abc123"); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("session file mode = %o, want 600", perm)
	}
}

func TestMemoryTokenStore(t *testing.T) {
	s := NewMemoryTokenStore()

	if token, _ := s.Load(); token != "" {
		t.Fatalf("fresh store returned %q", token)
	}

	if err := s.SetAuthenticated("abc123"); err != nil {
		t.Fatal(err)
	}
	if token, _ := s.Load(); token != "abc123" {
		t.Fatalf("Load = %q", token)
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if token, _ := s.Load(); token != "" {
		t.Fatalf("token survived Clear: %q", token)
	}
}

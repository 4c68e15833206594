// ABOUTME: Process-wide session state deciding whether the client is in admin mode
// ABOUTME: The admin flag changes only through Init, Login, and Logout

package session

import (
	"context"
	"log/slog"
	"sync"
)

// Authenticator is the auth surface the session needs from the API client.
type Authenticator interface {
	// Login exchanges the password for a stored token. A wrong password is
	// (false, nil); only transport problems produce an error.
	Login(ctx context.Context, password string) (bool, error)
	// Verify reports whether the stored token is still accepted. It fails
	// closed: any inconclusive result is false.
	Verify(ctx context.Context) bool
	// Logout discards the stored token. Never requires the network.
	Logout() error
}

// State is a snapshot of the session for subscribers.
type State struct {
	Admin   bool
	Loading bool
}

// Session is the single source of truth for admin mode. Consumers read it
// through IsAdmin/Loading or react to changes through Subscribe; nothing
// else may flip the flag.
type Session struct {
	mu      sync.Mutex
	auth    Authenticator
	admin   bool
	loading bool
	nextSub int
	subs    map[int]func(State)
	logger  *slog.Logger
}

// New creates a session in the loading state. Call Init to resolve it.
func New(auth Authenticator) *Session {
	return &Session{
		auth:    auth,
		loading: true,
		subs:    make(map[int]func(State)),
		logger:  slog.Default().With("component", "session"),
	}
}

// Init resolves the initial admin state from any previously stored token.
// A token that no longer verifies is purged here so later startups don't
// keep re-checking a dead credential. Init always leaves loading false.
func (s *Session) Init(ctx context.Context) {
	admin := s.auth.Verify(ctx)
	if !admin {
		if err := s.auth.Logout(); err != nil {
			s.logger.Warn("purging stale session", "error", err)
		}
	}

	s.mu.Lock()
	s.admin = admin
	s.loading = false
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(state)
}

// Login attempts authentication. A wrong password returns (false, nil) and
// changes nothing; a transport failure returns the error and also changes
// nothing. Only a confirmed success flips the admin flag.
func (s *Session) Login(ctx context.Context, password string) (bool, error) {
	ok, err := s.auth.Login(ctx, password)
	if err != nil || !ok {
		return false, err
	}

	s.mu.Lock()
	s.admin = true
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(state)
	return true, nil
}

// Logout drops admin mode unconditionally. It succeeds even when the token
// store fails to clear, because the in-memory flag must never outlive an
// explicit logout.
func (s *Session) Logout() {
	if err := s.auth.Logout(); err != nil {
		s.logger.Warn("clearing stored session", "error", err)
	}

	s.mu.Lock()
	s.admin = false
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(state)
}

// IsAdmin reports whether the client is currently privileged.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

// Loading reports whether the initial state is still being determined.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function. fn is called synchronously with the new state.
func (s *Session) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) snapshotLocked() State {
	return State{Admin: s.admin, Loading: s.loading}
}

func (s *Session) notify(state State) {
	s.mu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

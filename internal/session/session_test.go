// ABOUTME: Tests for session state transitions against a scripted authenticator
// ABOUTME: Covers init verification, login atomicity, logout, and subscribers

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth scripts the authenticator and records what the session asked of it.
type fakeAuth struct {
	store *MemoryTokenStore

	loginOK  bool
	loginErr error
	verifyOK bool

	loginCalls  int
	verifyCalls int
	logoutCalls int
}

func (f *fakeAuth) Login(_ context.Context, password string) (bool, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return false, f.loginErr
	}
	if f.loginOK {
		_ = f.store.SetAuthenticated("abc123")
		return true, nil
	}
	return false, nil
}

func (f *fakeAuth) Verify(context.Context) bool {
	f.verifyCalls++
	return f.verifyOK
}

func (f *fakeAuth) Logout() error {
	f.logoutCalls++
	return f.store.Clear()
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{store: NewMemoryTokenStore()}
}

func TestSessionStartsLoading(t *testing.T) {
	s := New(newFakeAuth())
	assert.True(t, s.Loading())
	assert.False(t, s.IsAdmin())
}

func TestInitWithValidToken(t *testing.T) {
	auth := newFakeAuth()
	require.NoError(t, auth.store.SetAuthenticated("abc123"))
	auth.verifyOK = true

	s := New(auth)
	s.Init(context.Background())

	assert.True(t, s.IsAdmin())
	assert.False(t, s.Loading())
	assert.Equal(t, 0, auth.logoutCalls)
}

func TestInitPurgesRejectedToken(t *testing.T) {
	auth := newFakeAuth()
	require.NoError(t, auth.store.SetAuthenticated("abc123"))
	auth.verifyOK = false

	s := New(auth)
	s.Init(context.Background())

	assert.False(t, s.IsAdmin())
	assert.False(t, s.Loading())
	assert.Equal(t, 1, auth.logoutCalls, "dead token must be purged during init")

	token, _ := auth.store.Load()
	assert.Empty(t, token)
}

func TestLoginSuccess(t *testing.T) {
	auth := newFakeAuth()
	auth.loginOK = true

	s := New(auth)
	ok, err := s.Login(context.Background(), "lwr2025admin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.IsAdmin())

	token, _ := auth.store.Load()
	assert.Equal(t, "abc123", token, "flag and token move together")
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newFakeAuth()
	auth.loginOK = false

	s := New(auth)
	ok, err := s.Login(context.Background(), "wrong")
	require.NoError(t, err, "a wrong password is a normal outcome, not an error")
	assert.False(t, ok)
	assert.False(t, s.IsAdmin())

	token, _ := auth.store.Load()
	assert.Empty(t, token, "failed login must not touch the store")
}

func TestLoginTransportError(t *testing.T) {
	auth := newFakeAuth()
	auth.loginErr = errors.New("connection refused")

	s := New(auth)
	ok, err := s.Login(context.Background(), "lwr2025admin")
	require.Error(t, err)
	assert.False(t, ok)
	assert.False(t, s.IsAdmin())
}

func TestLogoutIsIdempotent(t *testing.T) {
	auth := newFakeAuth()
	auth.loginOK = true

	s := New(auth)
	_, err := s.Login(context.Background(), "lwr2025admin")
	require.NoError(t, err)
	require.True(t, s.IsAdmin())

	s.Logout()
	assert.False(t, s.IsAdmin())

	s.Logout()
	assert.False(t, s.IsAdmin())

	token, _ := auth.store.Load()
	assert.Empty(t, token)
	assert.Equal(t, 2, auth.logoutCalls)
}

func TestFlagNeverTrueWithoutToken(t *testing.T) {
	// Drive the session through a mixed call sequence and check the
	// coupling invariant after every step.
	auth := newFakeAuth()
	s := New(auth)

	check := func(step string) {
		t.Helper()
		token, _ := auth.store.Load()
		if s.IsAdmin() && token == "" {
			t.Fatalf("%s: admin flag true with no stored token", step)
		}
	}

	auth.loginOK = false
	_, _ = s.Login(context.Background(), "wrong")
	check("failed login")

	auth.loginOK = true
	_, _ = s.Login(context.Background(), "lwr2025admin")
	check("successful login")

	s.Logout()
	check("logout")

	auth.verifyOK = false
	s.Init(context.Background())
	check("init with rejected token")
}

func TestSubscribe(t *testing.T) {
	auth := newFakeAuth()
	auth.loginOK = true
	s := New(auth)

	var states []State
	unsubscribe := s.Subscribe(func(st State) { states = append(states, st) })

	_, err := s.Login(context.Background(), "lwr2025admin")
	require.NoError(t, err)
	s.Logout()

	require.Len(t, states, 2)
	assert.True(t, states[0].Admin)
	assert.False(t, states[1].Admin)

	unsubscribe()
	s.Logout()
	assert.Len(t, states, 2, "unsubscribed observer must not fire")
}

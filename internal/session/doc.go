// Package session holds the client-side admin session state.
//
// Three pieces cooperate here. TokenStore persists the capability token and
// the authenticated marker as one unit, so the marker can never claim a
// session that has no usable token behind it. Session wraps an
// authenticator and is the only writer of the in-memory admin flag; every
// privilege check in a client reads from it. Collection is the per-view
// cache pattern: lists are fetched on demand, mutated only after the server
// confirms a change, and thrown away when the view goes.
package session

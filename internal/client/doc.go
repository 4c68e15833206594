// Package client is the Go SDK for the portfolio API.
//
// A Client bundles an auth gateway (Login, Verify, Logout) with one CRUD
// gateway per content collection, all sharing a single session.TokenStore.
// The stored token rides along on every request; any 401 in response purges
// it, so a revoked credential disappears the moment any call discovers it
// is dead. Verify fails closed: no stored token or an inconclusive server
// answer both read as "not admin".
package client

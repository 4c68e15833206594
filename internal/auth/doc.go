// Package auth provides admin authentication for portfolio-server.
//
// # Model
//
// There is a single privileged actor: the site owner. Authentication is a
// shared password exchanged for a signed bearer token, which subsequent
// mutating requests present in the Authorization header.
//
//   - PasswordChecker validates the configured shared password
//     (bcrypt hash or constant-time plaintext comparison).
//
//   - TokenIssuer issues and verifies HS256 JWTs carrying an "admin" claim
//     and an expiry derived from the configured token TTL.
//
// # HTTP Middleware
//
// RequireAdmin gates mutating endpoints; any request without a verifiable
// token receives 401, which clients treat as a signal to purge their stored
// token. OptionalAdmin performs the same verification but lets anonymous
// requests through, for endpoints that are publicly readable.
//
// Handlers downstream of either middleware use IsAdmin(ctx) to check the
// caller's standing.
package auth

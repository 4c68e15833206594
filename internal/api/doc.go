// Package api implements the portfolio's HTTP surface.
//
// All routes live under /api. Reads on public content (projects, albums,
// media, reviews, the profile) are anonymous; every mutation except the
// contact form requires a bearer token minted by POST /api/admin/login.
// Rejected credentials are always answered with 401 so that clients can
// treat any 401 as "session over" and discard their token.
//
// Responses are JSON. Errors carry a single {"error": "..."} body; store
// misses map to 404 and everything else unexpected maps to 500.
package api

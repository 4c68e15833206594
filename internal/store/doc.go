// Package store provides persistence for portfolio content.
//
// # Entities
//
// The store holds six entity kinds: Project, Album, MediaImage, Review,
// ContactMessage, and the single Profile. The server is the authority on
// identifiers and creation timestamps; clients never supply either.
//
// # Implementation
//
// SQLiteStore is the production implementation, built on modernc.org/sqlite
// (pure Go, no cgo). The schema is created on open and migrations are
// idempotent. Timestamps are stored as RFC3339 TEXT; list queries return
// newest-first. String slices (project gallery and technologies) are stored
// as JSON text columns.
//
// # Seeding
//
// Seed populates an empty database with the default site content so that a
// fresh deployment renders a complete portfolio before the owner has created
// anything. DefaultProfile doubles as the read fallback when no profile row
// exists.
package store

// Package config handles configuration loading for portfolio-server.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${PORTFOLIO_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:8080"
//	  allowed_origins:
//	    - "https://lwr.ro"
//
// Database:
//
//	database:
//	  path: "/var/lib/portfolio/portfolio.db"
//	  seed: true    # populate an empty database with default content
//
// Authentication (one of admin_password / admin_password_hash):
//
//	auth:
//	  admin_password_hash: "${PORTFOLIO_ADMIN_HASH}"  # bcrypt
//	  jwt_secret: "${PORTFOLIO_JWT_SECRET}"           # min 32 bytes
//	  token_ttl: "168h"                               # default 7 days
//
// Uploads:
//
//	uploads:
//	  dir: "/var/lib/portfolio/uploads"
//	  max_size_bytes: 10485760
//
// Contact-form notification (optional; disabled when host is empty):
//
//	smtp:
//	  host: "smtp.gmail.com"
//	  port: 465
//	  username: "${SMTP_EMAIL}"
//	  password: "${SMTP_PASSWORD}"
//	  to: "${NOTIFICATION_EMAIL}"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - JWT secret minimum length (32 bytes)
//   - Exactly one admin password form present
//   - Duration format validity
//   - Logging level values
package config

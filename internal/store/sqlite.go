// ABOUTME: SQLite implementation of the Store interface using modernc.org/sqlite
// ABOUTME: Provides portfolio content persistence with automatic schema creation

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path)
	return s, nil
}

// createSchema creates the database tables if they don't exist
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS projects (
			id                TEXT PRIMARY KEY,
			title             TEXT NOT NULL,
			description       TEXT NOT NULL,
			long_description  TEXT NOT NULL DEFAULT '',
			category          TEXT NOT NULL,
			image             TEXT NOT NULL DEFAULT '',
			gallery_json      TEXT NOT NULL DEFAULT '[]',
			technologies_json TEXT NOT NULL DEFAULT '[]',
			featured          INTEGER NOT NULL DEFAULT 0,
			date              TEXT NOT NULL,
			created_at        TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at DESC);

		CREATE TABLE IF NOT EXISTS albums (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			cover       TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS media (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			url        TEXT NOT NULL,
			album_id   TEXT NOT NULL REFERENCES albums(id),
			category   TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_media_album ON media(album_id);
		CREATE INDEX IF NOT EXISTS idx_media_created ON media(created_at DESC);

		CREATE TABLE IF NOT EXISTS reviews (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			role       TEXT NOT NULL,
			content    TEXT NOT NULL,
			rating     INTEGER NOT NULL,
			created_at TEXT NOT NULL,

			CHECK (rating BETWEEN 1 AND 5)
		);

		CREATE TABLE IF NOT EXISTS contact_messages (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			subject    TEXT NOT NULL,
			message    TEXT NOT NULL,
			read       INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_contact_created ON contact_messages(created_at DESC);

		-- Single-row table; reads fall back to defaults when empty
		CREATE TABLE IF NOT EXISTS profile (
			id           INTEGER PRIMARY KEY CHECK (id = 1),
			profile_json TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// runMigrations applies schema migrations for existing databases.
// These are idempotent - safe to run multiple times.
func (s *SQLiteStore) runMigrations() error {
	// Migration: media rows gained a category column after the initial release.
	// SQLite doesn't support ADD COLUMN IF NOT EXISTS, so we check first.
	var exists int
	err := s.db.QueryRow(`SELECT 1 FROM pragma_table_info('media') WHERE name = 'category'`).Scan(&exists)
	if err == sql.ErrNoRows {
		if _, err := s.db.Exec(`ALTER TABLE media ADD COLUMN category TEXT NOT NULL DEFAULT ''`); err != nil {
			return fmt.Errorf("adding category column to media: %w", err)
		}
		s.logger.Info("applied migration", "column", "category", "table", "media")
	} else if err != nil {
		return fmt.Errorf("checking media schema: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	s.logger.Info("closing SQLite store")
	return s.db.Close()
}

// ---------- Projects ----------

// CreateProject inserts a new project.
func (s *SQLiteStore) CreateProject(ctx context.Context, p *Project) error {
	gallery, err := marshalStrings(p.Gallery)
	if err != nil {
		return fmt.Errorf("encoding gallery: %w", err)
	}
	technologies, err := marshalStrings(p.Technologies)
	if err != nil {
		return fmt.Errorf("encoding technologies: %w", err)
	}

	query := `
		INSERT INTO projects (id, title, description, long_description, category,
			image, gallery_json, technologies_json, featured, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Description,
		p.LongDescription,
		p.Category,
		p.Image,
		gallery,
		technologies,
		boolToInt(p.Featured),
		p.Date,
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	s.logger.Debug("created project", "id", p.ID, "title", p.Title)
	return nil
}

const projectColumns = `id, title, description, long_description, category,
	image, gallery_json, technologies_json, featured, date, created_at`

// GetProject retrieves a project by ID.
// Returns ErrNotFound if the project doesn't exist.
func (s *SQLiteStore) GetProject(ctx context.Context, id string) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects, newest first.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProject replaces the mutable fields of an existing project.
// Returns ErrNotFound if the project doesn't exist.
func (s *SQLiteStore) UpdateProject(ctx context.Context, p *Project) error {
	gallery, err := marshalStrings(p.Gallery)
	if err != nil {
		return fmt.Errorf("encoding gallery: %w", err)
	}
	technologies, err := marshalStrings(p.Technologies)
	if err != nil {
		return fmt.Errorf("encoding technologies: %w", err)
	}

	query := `
		UPDATE projects
		SET title = ?, description = ?, long_description = ?, category = ?,
			image = ?, gallery_json = ?, technologies_json = ?, featured = ?, date = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		p.Title,
		p.Description,
		p.LongDescription,
		p.Category,
		p.Image,
		gallery,
		technologies,
		boolToInt(p.Featured),
		p.Date,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return requireRowAffected(result)
}

// DeleteProject removes a project by ID.
// Returns ErrNotFound if the project doesn't exist.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireRowAffected(result)
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*Project, error) {
	var p Project
	var gallery, technologies, createdAt string
	var featured int

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.LongDescription,
		&p.Category,
		&p.Image,
		&gallery,
		&technologies,
		&featured,
		&p.Date,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(gallery), &p.Gallery); err != nil {
		return nil, fmt.Errorf("decoding gallery: %w", err)
	}
	if err := json.Unmarshal([]byte(technologies), &p.Technologies); err != nil {
		return nil, fmt.Errorf("decoding technologies: %w", err)
	}
	p.Featured = featured != 0

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &p, nil
}

// ---------- Albums ----------

// CreateAlbum inserts a new album.
func (s *SQLiteStore) CreateAlbum(ctx context.Context, a *Album) error {
	query := `
		INSERT INTO albums (id, name, description, cover, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		a.Description,
		a.Cover,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting album: %w", err)
	}

	s.logger.Debug("created album", "id", a.ID, "name", a.Name)
	return nil
}

// GetAlbum retrieves an album by ID.
// Returns ErrNotFound if the album doesn't exist.
func (s *SQLiteStore) GetAlbum(ctx context.Context, id string) (*Album, error) {
	query := `SELECT id, name, description, cover, created_at FROM albums WHERE id = ?`

	var a Album
	var createdAt string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Description, &a.Cover, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying album: %w", err)
	}

	a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}

// ListAlbums returns all albums, newest first.
func (s *SQLiteStore) ListAlbums(ctx context.Context) ([]*Album, error) {
	query := `SELECT id, name, description, cover, created_at FROM albums ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying albums: %w", err)
	}
	defer rows.Close()

	albums := []*Album{}
	for rows.Next() {
		var a Album
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Cover, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning album: %w", err)
		}
		a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		albums = append(albums, &a)
	}
	return albums, rows.Err()
}

// UpdateAlbum replaces the mutable fields of an existing album.
// Returns ErrNotFound if the album doesn't exist.
func (s *SQLiteStore) UpdateAlbum(ctx context.Context, a *Album) error {
	query := `UPDATE albums SET name = ?, description = ?, cover = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, a.Name, a.Description, a.Cover, a.ID)
	if err != nil {
		return fmt.Errorf("updating album: %w", err)
	}
	return requireRowAffected(result)
}

// DeleteAlbum removes an album and all media images belonging to it.
// Returns ErrNotFound if the album doesn't exist.
func (s *SQLiteStore) DeleteAlbum(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM media WHERE album_id = ?`, id); err != nil {
		return fmt.Errorf("deleting album media: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM albums WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting album: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}

	return tx.Commit()
}

// ---------- Media ----------

// CreateMedia inserts a new media image.
func (s *SQLiteStore) CreateMedia(ctx context.Context, m *MediaImage) error {
	query := `
		INSERT INTO media (id, title, url, album_id, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		m.ID,
		m.Title,
		m.URL,
		m.AlbumID,
		m.Category,
		m.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting media image: %w", err)
	}

	s.logger.Debug("created media image", "id", m.ID, "album", m.AlbumID)
	return nil
}

// ListMedia returns media images, newest first.
// When albumID is non-empty, only that album's images are returned.
func (s *SQLiteStore) ListMedia(ctx context.Context, albumID string) ([]*MediaImage, error) {
	query := `SELECT id, title, url, album_id, category, created_at FROM media`
	args := []any{}
	if albumID != "" {
		query += ` WHERE album_id = ?`
		args = append(args, albumID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying media: %w", err)
	}
	defer rows.Close()

	images := []*MediaImage{}
	for rows.Next() {
		var m MediaImage
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Title, &m.URL, &m.AlbumID, &m.Category, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning media image: %w", err)
		}
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		images = append(images, &m)
	}
	return images, rows.Err()
}

// DeleteMedia removes a media image by ID.
// Returns ErrNotFound if the image doesn't exist.
func (s *SQLiteStore) DeleteMedia(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM media WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting media image: %w", err)
	}
	return requireRowAffected(result)
}

// ---------- Reviews ----------

// CreateReview inserts a new review.
func (s *SQLiteStore) CreateReview(ctx context.Context, r *Review) error {
	query := `
		INSERT INTO reviews (id, name, role, content, rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		r.ID,
		r.Name,
		r.Role,
		r.Content,
		r.Rating,
		r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting review: %w", err)
	}

	s.logger.Debug("created review", "id", r.ID, "name", r.Name)
	return nil
}

// ListReviews returns all reviews, newest first.
func (s *SQLiteStore) ListReviews(ctx context.Context) ([]*Review, error) {
	query := `SELECT id, name, role, content, rating, created_at FROM reviews ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*Review{}
	for rows.Next() {
		var r Review
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Name, &r.Role, &r.Content, &r.Rating, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		reviews = append(reviews, &r)
	}
	return reviews, rows.Err()
}

// GetReview returns a single review by ID.
// Returns ErrNotFound if the review doesn't exist.
func (s *SQLiteStore) GetReview(ctx context.Context, id string) (*Review, error) {
	query := `SELECT id, name, role, content, rating, created_at FROM reviews WHERE id = ?`

	var r Review
	var createdAt string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.Name, &r.Role, &r.Content, &r.Rating, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying review: %w", err)
	}
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &r, nil
}

// UpdateReview replaces the mutable fields of an existing review.
// Returns ErrNotFound if the review doesn't exist.
func (s *SQLiteStore) UpdateReview(ctx context.Context, r *Review) error {
	query := `UPDATE reviews SET name = ?, role = ?, content = ?, rating = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, r.Name, r.Role, r.Content, r.Rating, r.ID)
	if err != nil {
		return fmt.Errorf("updating review: %w", err)
	}
	return requireRowAffected(result)
}

// DeleteReview removes a review by ID.
// Returns ErrNotFound if the review doesn't exist.
func (s *SQLiteStore) DeleteReview(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	return requireRowAffected(result)
}

// ---------- Contact messages ----------

// CreateContactMessage inserts a new contact message.
func (s *SQLiteStore) CreateContactMessage(ctx context.Context, m *ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		m.Email,
		m.Subject,
		m.Message,
		boolToInt(m.Read),
		m.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting contact message: %w", err)
	}

	s.logger.Debug("created contact message", "id", m.ID, "from", m.Email)
	return nil
}

// ListContactMessages returns all contact messages, newest first.
func (s *SQLiteStore) ListContactMessages(ctx context.Context) ([]*ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, read, created_at
		FROM contact_messages ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*ContactMessage{}
	for rows.Next() {
		var m ContactMessage
		var read int
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &read, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		m.Read = read != 0
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// MarkContactMessageRead marks a contact message as read.
// Returns ErrNotFound if the message doesn't exist.
func (s *SQLiteStore) MarkContactMessageRead(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE contact_messages SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking contact message read: %w", err)
	}
	return requireRowAffected(result)
}

// DeleteContactMessage removes a contact message by ID.
// Returns ErrNotFound if the message doesn't exist.
func (s *SQLiteStore) DeleteContactMessage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting contact message: %w", err)
	}
	return requireRowAffected(result)
}

// ---------- Profile ----------

// GetProfile returns the saved profile, or DefaultProfile when none was saved yet.
func (s *SQLiteStore) GetProfile(ctx context.Context) (*Profile, error) {
	var profileJSON string
	err := s.db.QueryRowContext(ctx, `SELECT profile_json FROM profile WHERE id = 1`).Scan(&profileJSON)
	if err == sql.ErrNoRows {
		p := DefaultProfile()
		return &p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal([]byte(profileJSON), &p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &p, nil
}

// SetProfile replaces the saved profile.
func (s *SQLiteStore) SetProfile(ctx context.Context, p *Profile) error {
	profileJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	query := `
		INSERT INTO profile (id, profile_json) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET profile_json = excluded.profile_json
	`
	if _, err := s.db.ExecContext(ctx, query, string(profileJSON)); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	s.logger.Debug("saved profile", "name", p.Name)
	return nil
}

// ---------- Helpers ----------

// marshalStrings encodes a string slice as JSON, treating nil as empty.
func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// requireRowAffected converts a zero-rows-affected result into ErrNotFound.
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

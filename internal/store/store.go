// ABOUTME: Store interface and entity types for portfolio persistence
// ABOUTME: Defines Project, Album, MediaImage, Review, ContactMessage, Profile

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// Project represents a portfolio project.
// LongDescription holds Markdown; LongDescriptionHTML is rendered by the API
// layer on reads and is never persisted.
type Project struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	LongDescription     string    `json:"longDescription"`
	LongDescriptionHTML string    `json:"longDescriptionHtml,omitempty"`
	Category            string    `json:"category"`
	Image               string    `json:"image"`
	Gallery             []string  `json:"gallery"`
	Technologies        []string  `json:"technologies"`
	Featured            bool      `json:"featured"`
	Date                string    `json:"date"` // display date, YYYY-MM-DD
	CreatedAt           time.Time `json:"createdAt"`
}

// Album represents a media album
type Album struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cover       string    `json:"cover"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MediaImage represents an image inside an album
type MediaImage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	AlbumID   string    `json:"albumId"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"date"`
}

// Review represents a testimonial
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"` // 1..5
	CreatedAt time.Time `json:"date"`
}

// ContactMessage represents a message submitted through the contact form
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"date"`
}

// Profile represents the site owner's profile. There is exactly one;
// reads fall back to DefaultProfile when nothing has been saved yet.
type Profile struct {
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	Title      string `json:"title"`
	Age        int    `json:"age"`
	University string `json:"university"`
	Faculty    string `json:"faculty"`
	Bio        string `json:"bio"`
	Email      string `json:"email"`
	Instagram  string `json:"instagram"`
	LinkedIn   string `json:"linkedin"`
	GitHub     string `json:"github"`
}

// Store defines the interface for portfolio content persistence.
// List methods return newest-first.
type Store interface {
	// Projects
	ListProjects(ctx context.Context) ([]*Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	CreateProject(ctx context.Context, p *Project) error
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id string) error

	// Albums
	ListAlbums(ctx context.Context) ([]*Album, error)
	GetAlbum(ctx context.Context, id string) (*Album, error)
	CreateAlbum(ctx context.Context, a *Album) error
	UpdateAlbum(ctx context.Context, a *Album) error
	// DeleteAlbum removes the album and all media images belonging to it
	DeleteAlbum(ctx context.Context, id string) error

	// Media images; albumID filters when non-empty
	ListMedia(ctx context.Context, albumID string) ([]*MediaImage, error)
	CreateMedia(ctx context.Context, m *MediaImage) error
	DeleteMedia(ctx context.Context, id string) error

	// Reviews
	ListReviews(ctx context.Context) ([]*Review, error)
	GetReview(ctx context.Context, id string) (*Review, error)
	CreateReview(ctx context.Context, r *Review) error
	UpdateReview(ctx context.Context, r *Review) error
	DeleteReview(ctx context.Context, id string) error

	// Contact messages
	ListContactMessages(ctx context.Context) ([]*ContactMessage, error)
	CreateContactMessage(ctx context.Context, m *ContactMessage) error
	MarkContactMessageRead(ctx context.Context, id string) error
	DeleteContactMessage(ctx context.Context, id string) error

	// Profile
	GetProfile(ctx context.Context) (*Profile, error)
	SetProfile(ctx context.Context, p *Profile) error

	// Close releases any resources held by the store
	Close() error
}

// ABOUTME: Generic CRUD surface instantiated once per content collection
// ABOUTME: One round-trip per call, no retries, no client-side caching

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lwr/portfolio/internal/store"
)

// Resource is the CRUD contract shared by every content collection. Each
// call is a single round-trip; mutation results are the server's own
// representation, which callers feed straight into their view caches.
type Resource[T any] struct {
	c    *Client
	path string
}

// List fetches the whole collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one entity by ID.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.path+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create submits fields and returns the server-assigned entity.
func (r *Resource[T]) Create(ctx context.Context, fields any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, nil, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an entity's fields and returns the stored result.
func (r *Resource[T]) Update(ctx context.Context, id string, fields any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.path+"/"+id, nil, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an entity by ID.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil, nil)
}

// MediaByAlbum lists media filtered to one album.
func (c *Client) MediaByAlbum(ctx context.Context, albumID string) ([]store.MediaImage, error) {
	var out []store.MediaImage
	query := url.Values{"albumId": {albumID}}
	if err := c.do(ctx, http.MethodGet, "/api/media", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContactForm is a visitor's contact submission.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact sends a contact form and returns the stored message. This
// is the one anonymous write.
func (c *Client) SubmitContact(ctx context.Context, form ContactForm) (*store.ContactMessage, error) {
	var out store.ContactMessage
	if err := c.do(ctx, http.MethodPost, "/api/contact", nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContact fetches the inbox. Requires admin.
func (c *Client) ListContact(ctx context.Context) ([]store.ContactMessage, error) {
	var out []store.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/api/contact", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkContactRead flags a message as handled.
func (c *Client) MarkContactRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/contact/"+id+"/read", nil, nil, nil)
}

// DeleteContact removes a message from the inbox.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contact/"+id, nil, nil, nil)
}

// GetProfile fetches the site owner's profile.
func (c *Client) GetProfile(ctx context.Context) (*store.Profile, error) {
	var out store.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the profile.
func (c *Client) UpdateProfile(ctx context.Context, p *store.Profile) (*store.Profile, error) {
	var out store.Profile
	if err := c.do(ctx, http.MethodPut, "/api/profile", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

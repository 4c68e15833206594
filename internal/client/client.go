// ABOUTME: HTTP client for the portfolio API, shared by the admin CLI
// ABOUTME: Attaches the stored bearer token and purges it on any 401

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lwr/portfolio/internal/session"
	"github.com/lwr/portfolio/internal/store"
)

// defaultTimeout bounds every request so a hung server reads as a network
// failure instead of a stuck client.
const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Client talks to one portfolio API deployment. Reads work anonymously;
// mutations carry the stored token when one exists, and the server's
// authorization decision is never pre-empted client-side.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  session.TokenStore
	logger  *slog.Logger

	Projects *Resource[store.Project]
	Albums   *Resource[store.Album]
	Media    *Resource[store.MediaImage]
	Reviews  *Resource[store.Review]
}

// New creates a client for the API at baseURL, storing its session in
// tokens.
func New(baseURL string, tokens session.TokenStore) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		logger:  slog.Default().With("component", "client"),
	}
	c.Projects = &Resource[store.Project]{c: c, path: "/api/projects"}
	c.Albums = &Resource[store.Album]{c: c, path: "/api/albums"}
	c.Media = &Resource[store.MediaImage]{c: c, path: "/api/media"}
	c.Reviews = &Resource[store.Review]{c: c, path: "/api/reviews"}
	return c
}

// do performs one round-trip. The stored token, when present, rides along
// on every request; a 401 in response purges it so a dead credential is
// dropped the moment it is discovered, whatever endpoint exposed it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachToken(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.tokens.Clear(); clearErr != nil {
			c.logger.Warn("purging rejected token", "error", clearErr)
		}
	}

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *Client) attachToken(req *http.Request) {
	token, err := c.tokens.Load()
	if err != nil {
		c.logger.Warn("loading stored token", "error", err)
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

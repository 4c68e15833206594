// ABOUTME: End-to-end handler tests exercising routing, auth gating, and CRUD
// ABOUTME: Runs against a real SQLite store in a temp dir via httptest

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwr/portfolio/internal/auth"
	"github.com/lwr/portfolio/internal/config"
	"github.com/lwr/portfolio/internal/store"
)

const testPassword = "lwr2025admin"

var testSecret = []byte("test-secret-key-for-jwt-signing!")

// capturingNotifier records contact messages handed off for delivery.
type capturingNotifier struct {
	received chan *store.ContactMessage
}

func (n *capturingNotifier) ContactReceived(_ context.Context, m *store.ContactMessage) {
	n.received <- m
}

type testEnv struct {
	server   *httptest.Server
	store    store.Store
	notifier *capturingNotifier
	token    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "portfolio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	issuer := auth.NewTokenIssuer(testSecret, time.Hour)
	checker := auth.NewPasswordChecker(testPassword)
	notifier := &capturingNotifier{received: make(chan *store.ContactMessage, 1)}
	uploads := config.UploadsConfig{Dir: t.TempDir(), MaxSizeBytes: 1 << 20}

	srv := New(st, issuer, checker, notifier, uploads, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	token, err := issuer.Issue()
	require.NoError(t, err)

	return &testEnv{server: ts, store: st, notifier: notifier, token: token}
}

// request performs an HTTP request against the test server. A non-empty
// token is attached as a bearer credential.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRoot(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/contact", "", map[string]any{
		"name": "V", "email": "v@example.com", "subject": "Hi", "message": "m",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	<-env.notifier.received

	t.Run("anonymous", func(t *testing.T) {
		resp := env.request(t, "GET", "/api/", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[map[string]any](t, resp)
		assert.Equal(t, "running", body["status"])
		assert.NotContains(t, body, "admin")
		assert.NotContains(t, body, "unreadMessages")
	})

	t.Run("admin sees unread count", func(t *testing.T) {
		resp := env.request(t, "GET", "/api/", env.token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[map[string]any](t, resp)
		assert.Equal(t, true, body["admin"])
		assert.Equal(t, float64(1), body["unreadMessages"])
	})

	t.Run("bad token still served anonymously", func(t *testing.T) {
		resp := env.request(t, "GET", "/api/", "not-a-jwt", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[map[string]any](t, resp)
		assert.Equal(t, "running", body["status"])
		assert.NotContains(t, body, "admin")
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("correct password issues token", func(t *testing.T) {
		resp := env.request(t, "POST", "/api/admin/login", "", map[string]string{"password": testPassword})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[map[string]any](t, resp)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password is a 200 with success false", func(t *testing.T) {
		resp := env.request(t, "POST", "/api/admin/login", "", map[string]string{"password": "nope"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[map[string]any](t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Parolă incorectă", body["message"])
		assert.Nil(t, body["token"])
	})

	t.Run("malformed body", func(t *testing.T) {
		req, err := http.NewRequest("POST", env.server.URL+"/api/admin/login", strings.NewReader("{"))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestVerify(t *testing.T) {
	env := newTestEnv(t)

	t.Run("valid token", func(t *testing.T) {
		resp := env.request(t, "GET", "/api/admin/verify", env.token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[map[string]bool](t, resp)
		assert.True(t, body["valid"])
		assert.True(t, body["admin"])
	})

	t.Run("missing token", func(t *testing.T) {
		resp := env.request(t, "GET", "/api/admin/verify", "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := env.request(t, "GET", "/api/admin/verify", "not-a-jwt", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewTokenIssuer(testSecret, -time.Hour)
		token, err := expired.Issue()
		require.NoError(t, err)

		resp := env.request(t, "GET", "/api/admin/verify", token, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestMutationsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		method string
		path   string
	}{
		{"POST", "/api/projects"},
		{"PUT", "/api/projects/x"},
		{"DELETE", "/api/projects/x"},
		{"POST", "/api/albums"},
		{"DELETE", "/api/albums/x"},
		{"POST", "/api/media"},
		{"DELETE", "/api/media/x"},
		{"POST", "/api/reviews"},
		{"DELETE", "/api/reviews/x"},
		{"GET", "/api/contact"},
		{"PUT", "/api/contact/x/read"},
		{"DELETE", "/api/contact/x"},
		{"PUT", "/api/profile"},
		{"POST", "/api/upload"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := env.request(t, tc.method, tc.path, "", nil)
			defer resp.Body.Close()
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			body := decodeBody[map[string]string](t, resp)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestProjectCRUD(t *testing.T) {
	env := newTestEnv(t)

	input := map[string]any{
		"title":           "Smart Mirror",
		"description":     "A mirror with a display behind it",
		"longDescription": "## Build log\n\nStarted with a two-way mirror.",
		"category":        "electronics",
		"technologies":    []string{"Raspberry Pi", "Go"},
		"featured":        true,
	}

	resp := env.request(t, "POST", "/api/projects", env.token, input)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeBody[map[string]any](t, resp)

	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.NotEmpty(t, created["date"], "date defaults to today")

	t.Run("anonymous read renders markdown", func(t *testing.T) {
		resp := env.request(t, "GET", "/api/projects/"+id, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[map[string]any](t, resp)
		html, _ := got["longDescriptionHtml"].(string)
		assert.Contains(t, html, "<h2")
		assert.Contains(t, html, "Build log")
	})

	t.Run("update", func(t *testing.T) {
		input["title"] = "Smart Mirror v2"
		resp := env.request(t, "PUT", "/api/projects/"+id, env.token, input)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[map[string]any](t, resp)
		assert.Equal(t, "Smart Mirror v2", got["title"])
	})

	t.Run("validation", func(t *testing.T) {
		resp := env.request(t, "POST", "/api/projects", env.token, map[string]any{"title": ""})
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete then 404", func(t *testing.T) {
		resp := env.request(t, "DELETE", "/api/projects/"+id, env.token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = env.request(t, "GET", "/api/projects/"+id, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp = env.request(t, "DELETE", "/api/projects/"+id, env.token, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "repeated delete is a 404, not a crash")
	})
}

func TestMediaRequiresExistingAlbum(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/media", env.token, map[string]any{
		"title":   "Sunset",
		"url":     "/api/uploads/sunset.jpg",
		"albumId": "no-such-album",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "album not found", body["error"])
}

func TestMediaListFilter(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/albums", env.token, map[string]any{"name": "Trips"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	album := decodeBody[map[string]any](t, resp)
	albumID := album["id"].(string)

	resp = env.request(t, "POST", "/api/media", env.token, map[string]any{
		"title": "Mountains", "url": "/x.jpg", "albumId": albumID,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, "GET", "/api/media?albumId="+albumID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decodeBody[[]map[string]any](t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "Mountains", items[0]["title"])

	resp = env.request(t, "GET", "/api/media?albumId=other", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]map[string]any](t, resp))
}

func TestReviewValidation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/reviews", env.token, map[string]any{
		"name": "Ana", "content": "Great work", "rating": 6,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Contains(t, body["error"], "rating")
}

func TestContactFlow(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/contact", "", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Collaboration",
		"message": "Would love to work together.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeBody[map[string]any](t, resp)
	assert.NotEmpty(t, created["id"], "response is the stored message")
	assert.Equal(t, "Collaboration", created["subject"])
	assert.Equal(t, false, created["read"])

	select {
	case m := <-env.notifier.received:
		assert.Equal(t, "Collaboration", m.Subject)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}

	resp = env.request(t, "GET", "/api/contact", env.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	msgs := decodeBody[[]map[string]any](t, resp)
	require.Len(t, msgs, 1)
	assert.Equal(t, false, msgs[0]["read"])

	id := msgs[0]["id"].(string)
	resp = env.request(t, "PUT", "/api/contact/"+id+"/read", env.token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, "GET", "/api/contact", env.token, nil)
	msgs = decodeBody[[]map[string]any](t, resp)
	require.Len(t, msgs, 1)
	assert.Equal(t, true, msgs[0]["read"])

	resp = env.request(t, "DELETE", "/api/contact/"+id, env.token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)

	t.Run("default profile before any write", func(t *testing.T) {
		resp := env.request(t, "GET", "/api/profile", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		p := decodeBody[map[string]any](t, resp)
		assert.NotEmpty(t, p["name"])
	})

	t.Run("update round-trips", func(t *testing.T) {
		resp := env.request(t, "PUT", "/api/profile", env.token, map[string]any{
			"name":  "New Name",
			"title": "Engineer",
			"email": "me@example.com",
		})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = env.request(t, "GET", "/api/profile", "", nil)
		p := decodeBody[map[string]any](t, resp)
		assert.Equal(t, "New Name", p["name"])
	})
}

func TestUpload(t *testing.T) {
	env := newTestEnv(t)

	upload := func(t *testing.T, filename string, content []byte) *http.Response {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req, err := http.NewRequest("POST", env.server.URL+"/api/upload", &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+env.token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("accepted image is served back", func(t *testing.T) {
		resp := upload(t, "photo.jpg", []byte("fake-jpeg-bytes"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[map[string]string](t, resp)
		require.True(t, strings.HasPrefix(body["url"], "/api/uploads/"))

		served := env.request(t, "GET", body["url"], "", nil)
		defer served.Body.Close()
		require.Equal(t, http.StatusOK, served.StatusCode)
		data, err := io.ReadAll(served.Body)
		require.NoError(t, err)
		assert.Equal(t, "fake-jpeg-bytes", string(data))
	})

	t.Run("rejected extension", func(t *testing.T) {
		resp := upload(t, "script.sh", []byte("#!/bin/sh"))
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req, err := http.NewRequest("OPTIONS", env.server.URL+"/api/projects", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://lwr.ro")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://lwr.ro", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestUpdateAcceptsFetchedEntity(t *testing.T) {
	// The natural editing flow is fetch, change a field, PUT the whole
	// thing back. The server-assigned fields riding along must not make
	// the request invalid.
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/projects", env.token, map[string]any{
		"title":           "Smart Mirror",
		"description":     "A mirror with a display behind it",
		"longDescription": "## Build log",
		"category":        "electronics",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeBody[map[string]any](t, resp)
	id := created["id"].(string)

	resp = env.request(t, "GET", "/api/projects/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decodeBody[map[string]any](t, resp)
	require.NotEmpty(t, fetched["createdAt"])
	require.NotEmpty(t, fetched["longDescriptionHtml"])

	fetched["title"] = "Smart Mirror v2"
	resp = env.request(t, "PUT", "/api/projects/"+id, env.token, fetched)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "Smart Mirror v2", got["title"])
	assert.Equal(t, created["createdAt"], got["createdAt"], "server fields survive the round-trip")
}

// ABOUTME: Multipart image upload handler for gallery and project assets
// ABOUTME: Files land on disk under a random UUID name, never the client's

package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.uploads.MaxSizeBytes)
	if err := r.ParseMultipartForm(s.uploads.MaxSizeBytes); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		writeError(w, http.StatusBadRequest, "unsupported file type")
		return
	}

	if err := os.MkdirAll(s.uploads.Dir, 0o755); err != nil {
		s.logger.Error("creating uploads dir", "dir", s.uploads.Dir, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.uploads.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		s.logger.Error("creating upload file", "path", path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		s.logger.Error("writing upload", "path", path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info("stored upload", "name", name, "size", header.Size)
	writeJSON(w, http.StatusOK, map[string]string{
		"url":      fmt.Sprintf("/api/uploads/%s", name),
		"filename": name,
	})
}

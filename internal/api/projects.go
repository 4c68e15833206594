// ABOUTME: CRUD handlers for portfolio projects
// ABOUTME: Server assigns IDs and timestamps; markdown is rendered on reads

package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lwr/portfolio/internal/store"
)

// projectInput is the client-supplied portion of a project
type projectInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Category        string   `json:"category"`
	Image           string   `json:"image"`
	Gallery         []string `json:"gallery"`
	Technologies    []string `json:"technologies"`
	Featured        bool     `json:"featured"`
	Date            string   `json:"date"`
}

func (in *projectInput) validate() string {
	if in.Title == "" {
		return "title is required"
	}
	if in.Description == "" {
		return "description is required"
	}
	if in.Category == "" {
		return "category is required"
	}
	return ""
}

func (in *projectInput) apply(p *store.Project) {
	p.Title = in.Title
	p.Description = in.Description
	p.LongDescription = in.LongDescription
	p.Category = in.Category
	p.Image = in.Image
	p.Gallery = in.Gallery
	p.Technologies = in.Technologies
	p.Featured = in.Featured
	p.Date = in.Date
}

func (s *Server) handleProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		writeStoreError(w, err, "projects")
		return
	}
	for _, p := range projects {
		renderProjectMarkdown(p)
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleProjectGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "project")
		return
	}
	renderProjectMarkdown(p)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	var in projectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now().UTC()
	p := &store.Project{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	in.apply(p)
	if p.Date == "" {
		p.Date = now.Format("2006-01-02")
	}

	if err := s.store.CreateProject(r.Context(), p); err != nil {
		writeStoreError(w, err, "project")
		return
	}

	renderProjectMarkdown(p)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	var in projectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	p, err := s.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "project")
		return
	}

	in.apply(p)
	if err := s.store.UpdateProject(r.Context(), p); err != nil {
		writeStoreError(w, err, "project")
		return
	}

	renderProjectMarkdown(p)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err, "project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

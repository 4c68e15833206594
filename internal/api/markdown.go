// ABOUTME: Markdown rendering for project long descriptions
// ABOUTME: Uses goldmark; rendered HTML is derived on read, never stored

package api

import (
	"bytes"
	"log/slog"

	"github.com/yuin/goldmark"

	"github.com/lwr/portfolio/internal/store"
)

var markdown = goldmark.New()

// renderProjectMarkdown fills in LongDescriptionHTML from LongDescription.
// Rendering failures degrade to the raw text being the only representation.
func renderProjectMarkdown(p *store.Project) {
	if p.LongDescription == "" {
		return
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(p.LongDescription), &buf); err != nil {
		slog.Default().Warn("rendering project markdown", "project", p.ID, "error", err)
		return
	}
	p.LongDescriptionHTML = buf.String()
}

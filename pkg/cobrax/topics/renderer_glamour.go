package topics

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through untouched.
type GlamourRenderer struct {
	Style string // "auto", a builtin style name ("dark", "light", "notty") or a style file path
	Width int    // word wrap column, 0 keeps glamour's default

	once     sync.Once
	renderer *glamour.TermRenderer
	initErr  error
}

// NewGlamourRenderer creates a markdown renderer that detects the terminal background
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) init() {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	r.renderer, r.initErr = glamour.NewTermRenderer(options...)
}

// Render converts markdown to styled terminal output, falling back to the
// raw content on any error
func (r *GlamourRenderer) Render(content string, format string) string {
	switch strings.ToLower(format) {
	case ".md", ".markdown":
	default:
		return content
	}

	r.once.Do(r.init)
	if r.initErr != nil {
		return content
	}

	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

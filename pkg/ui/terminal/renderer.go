// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/decor/pkg/ui/display"
	"github.com/arthur-debert/decor/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output   io.Writer
	renderer *lipgloss.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output:   w,
		renderer: lipgloss.NewRenderer(w),
	}, nil
}

func (r *Renderer) paint(style, text string) string {
	if text == "" {
		return text
	}
	return styles.GetStyle(style).Renderer(r.renderer).Render(text)
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	out, ok, err := display.Layout(result, r.paint, true)
	if err != nil {
		return err
	}
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "%s %v\n", r.paint("Error", "Error:"), err)
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), JSON, YAML, TOML and XML output.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/ui/json"
	"github.com/arthur-debert/decor/pkg/ui/terminal"
	"github.com/arthur-debert/decor/pkg/ui/text"
	"github.com/arthur-debert/decor/pkg/ui/toml"
	"github.com/arthur-debert/decor/pkg/ui/xml"
	"github.com/arthur-debert/decor/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
// It provides methods for rendering different types of data and messages.
type Renderer interface {
	// RenderResult renders any result type (compositions, policy tables, catalogs, etc.)
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		// Detect terminal capabilities and choose appropriate format
		if file, ok := output.(*os.File); ok {
			detectedFormat := DetectFormat(file)
			return NewRenderer(detectedFormat, output)
		}
		// If not a file, default to terminal format
		return NewRenderer(FormatTerminal, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	case FormatTOML:
		return toml.New(output)
	case FormatXML:
		return xml.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// Package toml renders results as TOML documents
package toml

import (
	"io"

	toml "github.com/pelletier/go-toml/v2"
)

// Renderer writes TOML documents
type Renderer struct {
	output io.Writer
}

// New creates a new TOML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) encode(v interface{}) error {
	enc := toml.NewEncoder(r.output)
	enc.SetIndentTables(true)
	return enc.Encode(v)
}

// RenderResult renders any result type as TOML. TOML documents are tables,
// so the result is encoded under a "result" key when it is not one already.
func (r *Renderer) RenderResult(result interface{}) error {
	if err := r.encode(result); err != nil {
		return r.encode(map[string]interface{}{"result": result})
	}
	return nil
}

// RenderError renders an error as TOML
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as TOML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

// Package display holds the view models every renderer understands.
package display

import (
	"github.com/arthur-debert/decor/pkg/core"
	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/registry"
)

// Composition is the rendered outcome of a describe or render command
type Composition struct {
	// Source is the recipe path, empty for inline chains
	Source string       `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Result *core.Result `json:"result" yaml:"result" toml:"result"`
}

// PolicyRow describes how one policy treats a repeated decorator kind
type PolicyRow struct {
	Name           string `json:"name" yaml:"name" toml:"name"`
	OnConstruction string `json:"on_construction" yaml:"on_construction" toml:"on_construction"`
	OnRender       string `json:"on_render" yaml:"on_render" toml:"on_render"`
	Default        bool   `json:"default" yaml:"default" toml:"default"`
}

// PolicyTable lists the registered policies
type PolicyTable struct {
	Policies []PolicyRow `json:"policies" yaml:"policies" toml:"policies"`
}

// CatalogEntry describes a registered shape or decorator
type CatalogEntry struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Param   string `json:"param" yaml:"param" toml:"param"`
	Summary string `json:"summary" yaml:"summary" toml:"summary"`
	Example string `json:"example" yaml:"example" toml:"example"`
}

// Catalog lists what can be composed
type Catalog struct {
	Shapes     []CatalogEntry `json:"shapes" yaml:"shapes" toml:"shapes"`
	Decorators []CatalogEntry `json:"decorators" yaml:"decorators" toml:"decorators"`
}

// Message is a one-line notice, optionally followed by paths
type Message struct {
	Text  string   `json:"message" yaml:"message" toml:"message"`
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty" toml:"paths,omitempty"`
}

// Behaviour labels used in PolicyRow
const (
	Record   = "record"
	Drop     = "drop"
	Reject   = "reject"
	Render   = "render"
	Suppress = "suppress"
)

// sampleKind is the kind used to observe how a policy handles a repeat
const sampleKind = cycle.KindColored

// NewPolicyTable builds the table by asking every registered policy how it
// handles a decorator kind that is already in the chain.
func NewPolicyTable(defaultName string) *PolicyTable {
	table := &PolicyTable{Policies: []PolicyRow{}}
	existing := []cycle.Kind{sampleKind}

	for _, p := range registry.Policies() {
		row := PolicyRow{Name: p.Name(), Default: p.Name() == defaultName}

		switch ok, err := p.AdmitOnConstruction(sampleKind, existing); {
		case err != nil:
			row.OnConstruction = Reject
		case ok:
			row.OnConstruction = Record
		default:
			row.OnConstruction = Drop
		}

		switch ok, err := p.AdmitOnRender(sampleKind, existing); {
		case err != nil:
			row.OnRender = Reject
		case ok:
			row.OnRender = Render
		default:
			row.OnRender = Suppress
		}

		table.Policies = append(table.Policies, row)
	}
	return table
}

// NewCatalog lists the registered shapes and decorators
func NewCatalog() *Catalog {
	c := &Catalog{Shapes: []CatalogEntry{}, Decorators: []CatalogEntry{}}
	for _, s := range registry.Shapes() {
		c.Shapes = append(c.Shapes, CatalogEntry{
			Name:    s.Name,
			Param:   s.Param,
			Summary: s.Summary,
			Example: s.Name + ":" + exampleValue(s.Param),
		})
	}
	for _, d := range registry.Decorators() {
		c.Decorators = append(c.Decorators, CatalogEntry{
			Name:    d.Name,
			Param:   d.Param,
			Summary: d.Summary,
			Example: d.Name + ":" + exampleValue(d.Param),
		})
	}
	return c
}

func exampleValue(param string) string {
	switch param {
	case "color":
		return "red"
	case "transparency":
		return "0.5"
	default:
		return "2"
	}
}

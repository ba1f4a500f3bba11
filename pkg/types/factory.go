package types

import (
	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/shapes"
)

// ShapeFactory creates a base shape from its parameters
type ShapeFactory func(params Params) (shapes.Shape, error)

// DecoratorFactory wraps inner with a decorator built from its parameters
type DecoratorFactory func(inner shapes.Shape, params Params, policy cycle.Policy) (shapes.Shape, error)

// Descriptor documents a registered shape or decorator
type Descriptor struct {
	// Name is the registry name ("circle", "colored")
	Name string

	// Param is the parameter filled by the inline "name:value" syntax
	Param string

	// Summary is a one-line description
	Summary string
}

// ShapeEntry is what the shape registry stores
type ShapeEntry struct {
	Descriptor
	New ShapeFactory
}

// DecoratorEntry is what the decorator registry stores
type DecoratorEntry struct {
	Descriptor
	Kind cycle.Kind
	Wrap DecoratorFactory
}

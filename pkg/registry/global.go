package registry

import (
	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/types"
)

// Global registries for the catalog
var (
	policyRegistry    Registry[cycle.Policy]
	shapeRegistry     Registry[types.ShapeEntry]
	decoratorRegistry Registry[types.DecoratorEntry]
)

func init() {
	policyRegistry = NewNamed[cycle.Policy]("policy", errors.ErrPolicyUnknown)
	shapeRegistry = NewNamed[types.ShapeEntry]("shape", errors.ErrShapeUnknown)
	decoratorRegistry = NewNamed[types.DecoratorEntry]("decorator", errors.ErrDecoratorUnknown)
}

// GetRegistry returns the global registry for the specified type.
// It uses a type switch to return the correct singleton instance.
func GetRegistry[T any]() Registry[T] {
	var zero T
	switch any(&zero).(type) {
	case *cycle.Policy:
		return any(policyRegistry).(Registry[T])
	case *types.ShapeEntry:
		return any(shapeRegistry).(Registry[T])
	case *types.DecoratorEntry:
		return any(decoratorRegistry).(Registry[T])
	default:
		return New[T]()
	}
}

// RegisterPolicy registers a cycle policy under its own name
func RegisterPolicy(p cycle.Policy) error {
	return policyRegistry.Register(p.Name(), p)
}

// GetPolicy retrieves a cycle policy by name
func GetPolicy(name string) (cycle.Policy, error) {
	return policyRegistry.Get(name)
}

// RegisterShape registers a base shape factory
func RegisterShape(entry types.ShapeEntry) error {
	if entry.New == nil {
		return errors.Newf(errors.ErrInvalidInput, "shape '%s' has no factory", entry.Name)
	}
	return shapeRegistry.Register(entry.Name, entry)
}

// GetShape retrieves a shape factory entry by name
func GetShape(name string) (types.ShapeEntry, error) {
	return shapeRegistry.Get(name)
}

// RegisterDecorator registers a decorator factory
func RegisterDecorator(entry types.DecoratorEntry) error {
	if entry.Wrap == nil {
		return errors.Newf(errors.ErrInvalidInput, "decorator '%s' has no factory", entry.Name)
	}
	return decoratorRegistry.Register(entry.Name, entry)
}

// GetDecorator retrieves a decorator factory entry by name
func GetDecorator(name string) (types.DecoratorEntry, error) {
	return decoratorRegistry.Get(name)
}

// Policies returns all registered policies in name order
func Policies() []cycle.Policy { return All(policyRegistry) }

// Shapes returns all registered shape entries in name order
func Shapes() []types.ShapeEntry { return All(shapeRegistry) }

// Decorators returns all registered decorator entries in name order
func Decorators() []types.DecoratorEntry { return All(decoratorRegistry) }

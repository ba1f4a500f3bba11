package core

import (
	"sync"

	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/decorators"
	"github.com/arthur-debert/decor/pkg/logging"
	"github.com/arthur-debert/decor/pkg/registry"
	"github.com/arthur-debert/decor/pkg/shapes"
	"github.com/arthur-debert/decor/pkg/types"
)

var (
	initOnce sync.Once
	initErr  error
)

// Initialize registers the built-in catalog. It is safe to call repeatedly.
func Initialize() error {
	initOnce.Do(func() {
		initErr = registerBuiltins()
		logger := logging.GetLogger("core.init")
		logger.Debug().
			Err(initErr).
			Int("policies", len(registry.Policies())).
			Int("shapes", len(registry.Shapes())).
			Int("decorators", len(registry.Decorators())).
			Msg("Core initialization completed")
	})
	return initErr
}

// MustInitialize calls Initialize and panics on error.
func MustInitialize() {
	if err := Initialize(); err != nil {
		panic("Core initialization failed: " + err.Error())
	}
}

func registerBuiltins() error {
	for _, p := range cycle.Policies() {
		if err := registry.RegisterPolicy(p); err != nil {
			return err
		}
	}

	builtinShapes := []types.ShapeEntry{
		{
			Descriptor: types.Descriptor{Name: "circle", Param: "radius", Summary: "A circle with a resizable radius"},
			New: func(params types.Params) (shapes.Shape, error) {
				r, err := params.Length("radius")
				if err != nil {
					return nil, err
				}
				return shapes.NewCircle(r), nil
			},
		},
		{
			Descriptor: types.Descriptor{Name: "square", Param: "side", Summary: "A square with a fixed side"},
			New: func(params types.Params) (shapes.Shape, error) {
				side, err := params.Length("side")
				if err != nil {
					return nil, err
				}
				return shapes.NewSquare(side), nil
			},
		},
	}
	for _, entry := range builtinShapes {
		if err := registry.RegisterShape(entry); err != nil {
			return err
		}
	}

	builtinDecorators := []types.DecoratorEntry{
		{
			Descriptor: types.Descriptor{Name: string(cycle.KindColored), Param: "color", Summary: "Gives the shape a color"},
			Kind:       cycle.KindColored,
			Wrap: func(inner shapes.Shape, params types.Params, policy cycle.Policy) (shapes.Shape, error) {
				color, err := params.String("color")
				if err != nil {
					return nil, err
				}
				return decorators.Colored(color).Wrap(inner, policy)
			},
		},
		{
			Descriptor: types.Descriptor{Name: string(cycle.KindTransparent), Param: "transparency", Summary: "Makes the shape partly transparent (0 to 1)"},
			Kind:       cycle.KindTransparent,
			Wrap: func(inner shapes.Shape, params types.Params, policy cycle.Policy) (shapes.Shape, error) {
				t, err := params.Float32("transparency")
				if err != nil {
					return nil, err
				}
				return decorators.Transparent(t).Wrap(inner, policy)
			},
		},
	}
	for _, entry := range builtinDecorators {
		if err := registry.RegisterDecorator(entry); err != nil {
			return err
		}
	}

	return nil
}

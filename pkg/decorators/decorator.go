package decorators

import (
	"slices"

	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/logging"
	"github.com/arthur-debert/decor/pkg/shapes"
)

// Chained is a shape that records the decorator kinds applied to it
type Chained interface {
	shapes.Shape
	Kinds() []cycle.Kind
	Render() (string, error)
}

// Decorator holds what every concrete decorator shares: the wrapped shape,
// its own kind and policy, and the recorded kind chain.
type Decorator struct {
	inner     shapes.Shape
	kind      cycle.Kind
	policy    cycle.Policy
	inherited []cycle.Kind
	kinds     []cycle.Kind
	effect    string
}

func newDecorator(inner shapes.Shape, kind cycle.Kind, policy cycle.Policy, effect string) (Decorator, error) {
	if inner == nil {
		return Decorator{}, errors.Newf(errors.ErrInvalidInput, "%s decorator needs a shape to wrap", kind)
	}
	if policy == nil {
		policy = cycle.Default
	}

	inherited := KindsOf(inner)
	admitted, err := policy.AdmitOnConstruction(kind, inherited)
	if err != nil {
		return Decorator{}, err
	}

	kinds := slices.Clone(inherited)
	if admitted {
		kinds = append(kinds, kind)
	}

	logger := logging.GetLogger("decorators")
	logger.Trace().
		Str("kind", string(kind)).
		Str("policy", policy.Name()).
		Str("chain", cycle.Join(kinds)).
		Bool("admitted", admitted).
		Msg("Decorator constructed")

	return Decorator{
		inner:     inner,
		kind:      kind,
		policy:    policy,
		inherited: inherited,
		kinds:     kinds,
		effect:    effect,
	}, nil
}

// Kind returns the decorator's own kind
func (d *Decorator) Kind() cycle.Kind { return d.kind }

// Policy returns the policy the decorator was built with
func (d *Decorator) Policy() cycle.Policy { return d.policy }

// Kinds returns a copy of the recorded chain, inner first
func (d *Decorator) Kinds() []cycle.Kind { return slices.Clone(d.kinds) }

// Unwrap returns the wrapped shape
func (d *Decorator) Unwrap() shapes.Shape { return d.inner }

// Effect returns the text this decorator contributes when applied
func (d *Decorator) Effect() string { return d.effect }

// Applied reports whether the decorator's effect shows up when rendered
func (d *Decorator) Applied() (bool, error) {
	return d.policy.AdmitOnRender(d.kind, d.inherited)
}

// Render describes the wrapped shape and appends this decorator's effect
// when the policy admits it.
func (d *Decorator) Render() (string, error) {
	base, err := render(d.inner)
	if err != nil {
		return "", err
	}

	applied, err := d.Applied()
	if err != nil {
		return "", err
	}
	if !applied {
		return base, nil
	}
	return base + d.effect, nil
}

// Describe implements shapes.Shape. Unlike Render it cannot fail: a policy
// error at render time suppresses this decorator's effect.
func (d *Decorator) Describe() string {
	base := d.inner.Describe()

	applied, err := d.Applied()
	if err != nil {
		logger := logging.GetLogger("decorators")
		logger.Warn().
			Err(err).
			Str("kind", string(d.kind)).
			Msg("Decorator effect suppressed")
		return base
	}
	if !applied {
		return base
	}
	return base + d.effect
}

func render(s shapes.Shape) (string, error) {
	if c, ok := s.(Chained); ok {
		return c.Render()
	}
	return s.Describe(), nil
}

// KindsOf returns the recorded chain of s, or an empty chain for a plain shape
func KindsOf(s shapes.Shape) []cycle.Kind {
	if c, ok := s.(Chained); ok {
		return c.Kinds()
	}
	return []cycle.Kind{}
}

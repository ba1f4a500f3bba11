package decorators

import (
	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/shapes"
)

// Step is one decorator application waiting for a shape and a policy
type Step struct {
	Kind cycle.Kind
	Wrap func(inner shapes.Shape, policy cycle.Policy) (shapes.Shape, error)
}

// Colored returns a step that applies NewColored
func Colored(color string) Step {
	return Step{
		Kind: cycle.KindColored,
		Wrap: func(inner shapes.Shape, policy cycle.Policy) (shapes.Shape, error) {
			c, err := NewColored(inner, color, policy)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
}

// Transparent returns a step that applies NewTransparent
func Transparent(transparency float32) Step {
	return Step{
		Kind: cycle.KindTransparent,
		Wrap: func(inner shapes.Shape, policy cycle.Policy) (shapes.Shape, error) {
			t, err := NewTransparent(inner, transparency, policy)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
	}
}

// PolicyFunc picks the policy for a decorator kind
type PolicyFunc func(cycle.Kind) cycle.Policy

// Apply wraps base with each step in order under one policy
func Apply(base shapes.Shape, policy cycle.Policy, steps ...Step) (shapes.Shape, error) {
	return ApplyEach(base, func(cycle.Kind) cycle.Policy { return policy }, steps...)
}

// ApplyEach wraps base with each step in order, asking policyFor for the
// policy of every step. It stops at the first construction error.
func ApplyEach(base shapes.Shape, policyFor PolicyFunc, steps ...Step) (shapes.Shape, error) {
	s := base
	for _, step := range steps {
		next, err := step.Wrap(s, policyFor(step.Kind))
		if err != nil {
			return nil, err
		}
		s = next
	}
	return s, nil
}

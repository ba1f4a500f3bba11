package core

import (
	"github.com/arthur-debert/decor/pkg/config"
	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/decorators"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/logging"
	"github.com/arthur-debert/decor/pkg/registry"
	"github.com/arthur-debert/decor/pkg/shapes"
	"github.com/arthur-debert/decor/pkg/types"
)

// Spec names a registered shape or decorator and its parameters
type Spec struct {
	Name   string
	Params types.Params
}

// Request describes a chain to build
type Request struct {
	Shape Spec
	Steps []Spec

	// Policy, when set, is used for every step
	Policy string

	// Config supplies per-kind policies when Policy is empty. Nil means defaults.
	Config *config.Config
}

// StepResult reports what happened to one decorator step
type StepResult struct {
	Kind     string `json:"kind" yaml:"kind" toml:"kind"`
	Policy   string `json:"policy" yaml:"policy" toml:"policy"`
	Recorded bool   `json:"recorded" yaml:"recorded" toml:"recorded"`
	Applied  bool   `json:"applied" yaml:"applied" toml:"applied"`
	Effect   string `json:"effect" yaml:"effect" toml:"effect"`
}

// Result is the rendered outcome of a Request
type Result struct {
	ShapeID     string       `json:"shape_id" yaml:"shape_id" toml:"shape_id"`
	Shape       string       `json:"shape" yaml:"shape" toml:"shape"`
	Description string       `json:"description" yaml:"description" toml:"description"`
	Chain       []string     `json:"chain" yaml:"chain" toml:"chain"`
	Policy      string       `json:"policy,omitempty" yaml:"policy,omitempty" toml:"policy,omitempty"`
	Steps       []StepResult `json:"steps" yaml:"steps" toml:"steps"`
}

// effected is what Compose needs from a built decorator
type effected interface {
	Applied() (bool, error)
	Effect() string
}

// Compose builds the chain described by req and renders it.
// A cycle rejected at construction is returned with code CYCLE and the
// *cycle.CycleError still reachable through errors.As.
func Compose(req Request) (*Result, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("core.compose")
	done := logging.LogOperationStart(logger, "compose")
	defer done()

	policyFor, err := policyResolver(req)
	if err != nil {
		return nil, err
	}

	shapeEntry, err := registry.GetShape(req.Shape.Name)
	if err != nil {
		return nil, err
	}
	base, err := shapeEntry.New(req.Shape.Params)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "shape %s", shapeEntry.Name)
	}

	result := &Result{
		ShapeID: shapes.IDOf(base).String(),
		Shape:   shapeEntry.Name,
		Policy:  req.Policy,
		Steps:   make([]StepResult, 0, len(req.Steps)),
	}

	current := base
	for i, step := range req.Steps {
		entry, err := registry.GetDecorator(step.Name)
		if err != nil {
			return nil, err
		}
		policy := policyFor(entry.Kind)

		before := len(decorators.KindsOf(current))
		next, err := entry.Wrap(current, step.Params, policy)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "decorator step %d (%s)", i+1, entry.Name).
				WithDetail("step", i+1).
				WithDetail("policy", policy.Name())
		}

		sr := StepResult{
			Kind:     string(entry.Kind),
			Policy:   policy.Name(),
			Recorded: len(decorators.KindsOf(next)) > before,
		}
		if e, ok := next.(effected); ok {
			sr.Effect = e.Effect()
			applied, err := e.Applied()
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrRender, "decorator step %d (%s)", i+1, entry.Name)
			}
			sr.Applied = applied
		}
		logger.Trace().
			Int("step", i+1).
			Str("kind", sr.Kind).
			Str("policy", sr.Policy).
			Bool("recorded", sr.Recorded).
			Bool("applied", sr.Applied).
			Msg("Step composed")

		result.Steps = append(result.Steps, sr)
		current = next
	}

	description, err := render(current)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to render chain")
	}
	result.Description = description

	result.Chain = make([]string, 0)
	for _, k := range decorators.KindsOf(current) {
		result.Chain = append(result.Chain, string(k))
	}

	return result, nil
}

func render(s shapes.Shape) (string, error) {
	if c, ok := s.(decorators.Chained); ok {
		return c.Render()
	}
	return s.Describe(), nil
}

// policyResolver returns the policy lookup for a request: the explicit
// policy for every kind, or the config's per-kind entries.
func policyResolver(req Request) (decorators.PolicyFunc, error) {
	if req.Policy != "" {
		p, err := registry.GetPolicy(req.Policy)
		if err != nil {
			// Aliases are not registered, only canonical names
			alias, aliasErr := cycle.Parse(req.Policy)
			if aliasErr != nil {
				return nil, err
			}
			p = alias
		}
		return func(cycle.Kind) cycle.Policy { return p }, nil
	}

	cfg := req.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Default(); err != nil {
			return nil, err
		}
	}

	resolved := map[cycle.Kind]cycle.Policy{}
	for _, kind := range cycle.Kinds() {
		name := cfg.PolicyFor(kind)
		p, err := registry.GetPolicy(name)
		if err != nil {
			if p, err = cycle.Parse(name); err != nil {
				return nil, err
			}
		}
		resolved[kind] = p
	}
	return func(kind cycle.Kind) cycle.Policy {
		if p, ok := resolved[kind]; ok {
			return p
		}
		return cycle.Default
	}, nil
}

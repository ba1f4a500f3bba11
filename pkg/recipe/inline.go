package recipe

import (
	"strings"

	"github.com/arthur-debert/decor/pkg/core"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/registry"
	"github.com/arthur-debert/decor/pkg/types"
)

// Separator splits a kind from its value in inline specs
const Separator = ":"

// ParseShape parses "circle:2" into a shape spec
func ParseShape(s string) (core.Spec, error) {
	if err := core.Initialize(); err != nil {
		return core.Spec{}, err
	}
	name, value, err := split(s)
	if err != nil {
		return core.Spec{}, err
	}
	entry, err := registry.GetShape(name)
	if err != nil {
		return core.Spec{}, err
	}
	return core.Spec{Name: entry.Name, Params: types.Params{entry.Param: value}}, nil
}

// ParseStep parses "colored:red" into a decorator spec
func ParseStep(s string) (core.Spec, error) {
	if err := core.Initialize(); err != nil {
		return core.Spec{}, err
	}
	name, value, err := split(s)
	if err != nil {
		return core.Spec{}, err
	}
	entry, err := registry.GetDecorator(name)
	if err != nil {
		return core.Spec{}, err
	}
	return core.Spec{Name: entry.Name, Params: types.Params{entry.Param: value}}, nil
}

// ParseSteps parses each inline step in order
func ParseSteps(specs []string) ([]core.Spec, error) {
	steps := make([]core.Spec, 0, len(specs))
	for _, s := range specs {
		step, err := ParseStep(s)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func split(s string) (string, string, error) {
	name, value, ok := strings.Cut(strings.TrimSpace(s), Separator)
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)
	if !ok || name == "" || value == "" {
		return "", "", errors.Newf(errors.ErrInvalidInput, "invalid spec %q, expected kind%svalue", s, Separator).
			WithDetail("spec", s)
	}
	return name, value, nil
}

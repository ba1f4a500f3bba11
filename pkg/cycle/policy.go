package cycle

import (
	"strings"

	"github.com/arthur-debert/decor/pkg/errors"
)

// Policy names
const (
	NameThrow  = "throw"
	NameAbsorb = "absorb"
	NameAllow  = "allow"
)

// Policy decides whether a repeated decorator kind is admitted.
// Both checks receive the candidate kind and the kinds already applied by
// the chain being wrapped, inner first.
type Policy interface {
	// Name returns the policy's registry name
	Name() string

	// AdmitOnConstruction reports whether candidate may be recorded in the chain
	AdmitOnConstruction(candidate Kind, existing []Kind) (bool, error)

	// AdmitOnRender reports whether candidate's effect should be rendered
	AdmitOnRender(candidate Kind, existing []Kind) (bool, error)
}

// ThrowOnDuplicate rejects a repeated kind with a CycleError
type ThrowOnDuplicate struct{}

func (ThrowOnDuplicate) Name() string { return NameThrow }

func (ThrowOnDuplicate) check(candidate Kind, existing []Kind) (bool, error) {
	if Contains(existing, candidate) {
		return false, newCycleError(candidate, existing)
	}
	return true, nil
}

func (p ThrowOnDuplicate) AdmitOnConstruction(candidate Kind, existing []Kind) (bool, error) {
	return p.check(candidate, existing)
}

func (p ThrowOnDuplicate) AdmitOnRender(candidate Kind, existing []Kind) (bool, error) {
	return p.check(candidate, existing)
}

// AbsorbDuplicate accepts a repeated kind but keeps only the first effect
type AbsorbDuplicate struct{}

func (AbsorbDuplicate) Name() string { return NameAbsorb }

func (AbsorbDuplicate) AdmitOnConstruction(Kind, []Kind) (bool, error) {
	return true, nil
}

func (AbsorbDuplicate) AdmitOnRender(candidate Kind, existing []Kind) (bool, error) {
	return !Contains(existing, candidate), nil
}

// AllowAll admits and renders every application
type AllowAll struct{}

func (AllowAll) Name() string { return NameAllow }

func (AllowAll) AdmitOnConstruction(Kind, []Kind) (bool, error) { return true, nil }

func (AllowAll) AdmitOnRender(Kind, []Kind) (bool, error) { return true, nil }

// Default is the policy used when none is configured
var Default Policy = AbsorbDuplicate{}

// Policies returns one instance of every built-in policy
func Policies() []Policy {
	return []Policy{ThrowOnDuplicate{}, AbsorbDuplicate{}, AllowAll{}}
}

// Parse resolves a policy by name or alias
func Parse(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameThrow, "throw-on-duplicate", "throwonduplicate":
		return ThrowOnDuplicate{}, nil
	case NameAbsorb, "absorb-duplicate", "absorbduplicate":
		return AbsorbDuplicate{}, nil
	case NameAllow, "allow-all", "allowall":
		return AllowAll{}, nil
	default:
		return nil, errors.Newf(errors.ErrPolicyUnknown, "unknown cycle policy: %q", name).
			WithDetail("policy", name)
	}
}

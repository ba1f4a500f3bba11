package cycle

import (
	"fmt"
	"slices"

	"github.com/arthur-debert/decor/pkg/errors"
)

// CycleError reports a decorator kind that is already present in the chain
// it is being added to or rendered over.
type CycleError struct {
	Kind     Kind
	Existing []Kind
}

func newCycleError(k Kind, existing []Kind) *CycleError {
	return &CycleError{Kind: k, Existing: slices.Clone(existing)}
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: decorator kind %q is already applied (%s)", e.Kind, Join(e.Existing))
}

// Unwrap exposes the error under the CYCLE code so callers can use
// errors.IsErrorCode without knowing about this type.
func (e *CycleError) Unwrap() error {
	return errors.New(errors.ErrCycle, e.Error()).
		WithDetail("kind", string(e.Kind)).
		WithDetail("chain", Join(e.Existing))
}

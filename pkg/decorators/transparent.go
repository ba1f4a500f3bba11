package decorators

import (
	"fmt"

	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/shapes"
)

// TransparentShape makes the wrapped shape partly transparent
type TransparentShape struct {
	Decorator
	transparency float32
}

// NewTransparent wraps s with a transparency between 0 and 1
func NewTransparent(s shapes.Shape, transparency float32, policy cycle.Policy) (*TransparentShape, error) {
	if !(transparency >= 0 && transparency <= 1) {
		return nil, errors.Newf(errors.ErrInvalidInput, "transparency must be between 0 and 1, got %s",
			shapes.FormatNumber(transparency))
	}

	effect := fmt.Sprintf(" has %s%% transparency", shapes.FormatPercent(transparency))
	d, err := newDecorator(s, cycle.KindTransparent, policy, effect)
	if err != nil {
		return nil, err
	}
	return &TransparentShape{Decorator: d, transparency: transparency}, nil
}

// Transparency returns the transparency as a fraction
func (t *TransparentShape) Transparency() float32 { return t.transparency }

package decorators

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/shapes"
)

// ColoredShape gives the wrapped shape a color
type ColoredShape struct {
	Decorator
	color string
}

// NewColored wraps s with a color under the given policy
func NewColored(s shapes.Shape, color string, policy cycle.Policy) (*ColoredShape, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return nil, errors.New(errors.ErrInvalidInput, "color cannot be empty")
	}

	d, err := newDecorator(s, cycle.KindColored, policy, fmt.Sprintf(" has the color %s", color))
	if err != nil {
		return nil, err
	}
	return &ColoredShape{Decorator: d, color: color}, nil
}

// Color returns the decorator's color
func (c *ColoredShape) Color() string { return c.color }

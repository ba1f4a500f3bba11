package shapes

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// Shape is anything that can describe itself as text
type Shape interface {
	Describe() string
}

// Unwrapper is implemented by shapes that wrap another shape
type Unwrapper interface {
	Unwrap() Shape
}

// Identified is implemented by base shapes
type Identified interface {
	ID() uuid.UUID
}

// Root follows Unwrap until it reaches a shape that wraps nothing
func Root(s Shape) Shape {
	for s != nil {
		u, ok := s.(Unwrapper)
		if !ok {
			return s
		}
		s = u.Unwrap()
	}
	return nil
}

// IDOf returns the identity of the base shape under s, or uuid.Nil
func IDOf(s Shape) uuid.UUID {
	if id, ok := Root(s).(Identified); ok {
		return id.ID()
	}
	return uuid.Nil
}

// Circle is a shape with a resizable radius
type Circle struct {
	id     uuid.UUID
	radius float32
}

// NewCircle creates a circle with the given radius
func NewCircle(radius float32) *Circle {
	return &Circle{id: uuid.New(), radius: radius}
}

// ID returns the circle's identity
func (c *Circle) ID() uuid.UUID { return c.id }

// Radius returns the current radius
func (c *Circle) Radius() float32 { return c.radius }

// Resize multiplies the radius by factor
func (c *Circle) Resize(factor float32) {
	c.radius *= factor
}

// Describe implements Shape
func (c *Circle) Describe() string {
	return fmt.Sprintf("A circle of radius %s", FormatNumber(c.radius))
}

// Square is a shape with a fixed side
type Square struct {
	id   uuid.UUID
	side float32
}

// NewSquare creates a square with the given side
func NewSquare(side float32) *Square {
	return &Square{id: uuid.New(), side: side}
}

// ID returns the square's identity
func (s *Square) ID() uuid.UUID { return s.id }

// Side returns the side length
func (s *Square) Side() float32 { return s.side }

// Describe implements Shape
func (s *Square) Describe() string {
	return fmt.Sprintf("A square with side %s", FormatNumber(s.side))
}

// FormatNumber prints f in its shortest form: 2, 1.23, 0.5
func FormatNumber(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// FormatPercent prints the fraction f as a percentage rounded to two
// decimals: 0.3 gives 30, 0.125 gives 12.5
func FormatPercent(f float32) string {
	pct := math.Round(float64(f)*10000) / 100
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

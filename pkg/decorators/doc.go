// Package decorators wraps shapes with extra rendering effects and keeps
// track of which decorator kinds a chain has accumulated.
//
// Every decorator inherits the kind chain of the shape it wraps, asks its
// cycle.Policy whether its own kind may join that chain, and records it if
// so. At render time it asks the same policy whether its effect should be
// applied, looking only at the kinds inherited from the decorators it wraps:
//
//	circle := shapes.NewCircle(2)
//	red, _ := decorators.NewColored(circle, "red", cycle.AbsorbDuplicate{})
//	blue, _ := decorators.NewColored(red, "blue", cycle.AbsorbDuplicate{})
//	blue.Describe() // "A circle of radius 2 has the color red"
//
// Decorators never change after construction, so Describe always returns the
// same string for the same value.
package decorators

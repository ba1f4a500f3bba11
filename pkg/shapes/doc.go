// Package shapes defines the plain shapes that decorators wrap.
//
// A base shape has an immutable identity assigned when it is created and
// mutable geometry. Decorators from pkg/decorators also satisfy Shape and
// expose the shape they wrap through Unwrapper, so Root can always find the
// base shape at the bottom of a chain.
package shapes

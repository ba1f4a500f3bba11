// Package cycle decides what happens when the same decorator kind shows up
// twice in one wrapping chain.
//
// A Policy answers two separate questions: may a kind be added to a chain
// that already holds it (checked once, when a decorator is constructed), and
// should that decorator's effect show up when the chain is rendered. Keeping
// the two apart lets AbsorbDuplicate accept the construction but silently
// drop the later effect, while ThrowOnDuplicate rejects it with a CycleError
// and AllowAll lets every application through.
//
// Policies are stateless values; the same instance may be shared by any
// number of decorators.
package cycle

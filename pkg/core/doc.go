// Package core wires the catalog together and composes decorator chains.
//
// Initialize registers the built-in cycle policies, shapes and decorators in
// the global registries. Compose takes a Request naming a base shape and an
// ordered list of decorator steps, resolves a cycle policy for every step
// (an explicit policy name wins over the configuration's per-kind and default
// entries), builds the chain and renders it into a Result.
package core

// Package registry provides a generic, type-safe registry and the global
// catalogs of cycle policies, shapes and decorators that the CLI and
// recipes look names up in. Lookups are case-insensitive.
package registry

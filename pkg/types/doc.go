// Package types defines the factory signatures and catalog entries that
// connect the registries with shapes, decorators and cycle policies.
package types

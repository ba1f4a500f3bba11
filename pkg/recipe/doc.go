// Package recipe loads decorator chains from files and parses the inline
// "kind:value" syntax used on the command line.
//
// A recipe names a base shape, an optional cycle policy and an ordered list
// of decorators. YAML and TOML are supported, chosen by file extension:
//
//	version: 1
//	name: red circle
//	policy: absorb
//	shape: circle:2
//	decorators:
//	  - colored:red
//	  - kind: transparent
//	    with:
//	      transparency: 0.5
//
// In YAML any entry may be written inline; TOML uses the table form
// (kind plus a "with" table). Recipes are validated with
// go-playground/validator before they are turned into a core.Request.
package recipe

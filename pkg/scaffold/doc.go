// Package scaffold writes starter files for a decor project.
//
// Init creates a sample recipe.yaml and a project .decor.toml in a target
// directory. Files are written through a synthfs pipeline; existing files are
// never replaced unless Force is set.
package scaffold

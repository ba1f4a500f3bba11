// Package config loads decor's configuration.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file ($XDG_CONFIG_HOME/decor/config.toml), or the
//     file given explicitly with --config
//  3. a project file in the working directory (.decor.toml or .decor.yaml)
//  4. DECOR_ environment variables, with "_" separating key segments
package config

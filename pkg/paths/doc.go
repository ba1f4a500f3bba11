// Package paths resolves where decor keeps its files.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/decor (config.toml)
//   - State: $XDG_STATE_HOME/decor (decor.log)
//
// # Environment Variables
//
//   - DECOR_CONFIG_DIR: Override the config directory
//   - DECOR_STATE_DIR: Override the state directory
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := p.ConfigFile()   // /home/user/.config/decor/config.toml
//	logFile := p.LogFile()  // /home/user/.local/state/decor/decor.log
package paths

package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for decor
	EnvConfigDir = "DECOR_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for decor
	EnvStateDir = "DECOR_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for decor-specific files
	AppDirName = "decor"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "decor.log"
)

// ProjectConfigFiles are looked up in the working directory, first match wins
var ProjectConfigFiles = []string{".decor.toml", ".decor.yaml", ".decor.yml"}

// Paths provides centralized path management for decor
type Paths interface {
	ConfigDir() string
	ConfigFile() string
	StateDir() string
	LogFile() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the decor directories, respecting environment overrides
func New() (Paths, error) {
	p := &paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.configDir = ExpandHome(configDir)
	} else if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		p.configDir = filepath.Join(configHome, AppDirName)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.stateDir = ExpandHome(stateDir)
	} else if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.stateDir = filepath.Join(stateHome, AppDirName)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p, nil
}

// ConfigDir returns the decor config directory
func (p *paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the path of the user configuration file
func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StateDir returns the decor state directory
func (p *paths) StateDir() string {
	return p.stateDir
}

// LogFile returns the path of the log file
func (p *paths) LogFile() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

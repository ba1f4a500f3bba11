package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/decor/pkg/paths"
)

// TestEnvironment points decor at temporary directories for one test
type TestEnvironment struct {
	ConfigDir string
	StateDir  string
	WorkDir   string
}

// NewTestEnvironment isolates the test from the user's config: every
// DECOR_ variable is cleared, config and state live in temp directories and
// file logging is off. Variables are restored when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
		WorkDir:   filepath.Join(root, "work"),
	}
	for _, dir := range []string{env.ConfigDir, env.StateDir, env.WorkDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "DECOR_") {
			t.Setenv(name, "")
			if err := os.Unsetenv(name); err != nil {
				t.Fatalf("Failed to unset %s: %v", name, err)
			}
		}
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv("DECOR_LOGGING_FILE", "false")

	return env
}

// UserConfig writes the user config file and returns its path
func (env *TestEnvironment) UserConfig(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, env.ConfigDir, paths.ConfigFileName, content)
}

// ProjectConfig writes a project config file into WorkDir
func (env *TestEnvironment) ProjectConfig(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, env.WorkDir, name, content)
}

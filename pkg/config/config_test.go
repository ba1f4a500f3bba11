package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	configDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)
	for _, key := range []string{"DECOR_POLICY_DEFAULT", "DECOR_OUTPUT_FORMAT", "DECOR_LOGGING_FILE", "DECOR_POLICY_KINDS_COLORED"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return configDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "absorb", cfg.Policy.Default)
	assert.Empty(t, cfg.Policy.Kinds)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.True(t, cfg.Logging.File)
	assert.Empty(t, cfg.Sources)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, cfg.Policy.Default, def.Policy.Default)
}

func TestLayering(t *testing.T) {
	configDir := isolate(t)
	workDir := t.TempDir()

	writeFile(t, filepath.Join(configDir, paths.ConfigFileName), `
[policy]
default = "throw"

[output]
format = "json"
`)
	writeFile(t, filepath.Join(workDir, ".decor.toml"), `
[policy.kinds]
colored = "allow"
`)

	cfg, err := Load(Options{WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, "throw", cfg.Policy.Default)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "allow", cfg.PolicyFor(cycle.KindColored))
	assert.Equal(t, "throw", cfg.PolicyFor(cycle.KindTransparent))
	assert.Len(t, cfg.Sources, 2)

	t.Run("env wins", func(t *testing.T) {
		t.Setenv("DECOR_POLICY_DEFAULT", "allow")
		t.Setenv("DECOR_LOGGING_FILE", "false")

		cfg, err := Load(Options{WorkDir: workDir})
		require.NoError(t, err)
		assert.Equal(t, "allow", cfg.Policy.Default)
		assert.False(t, cfg.Logging.File)
	})
}

func TestYAMLProjectConfig(t *testing.T) {
	isolate(t)
	workDir := t.TempDir()
	writeFile(t, filepath.Join(workDir, ".decor.yaml"), `
policy:
  default: allow
  kinds:
    transparent: throw
output:
  format: yaml
`)

	cfg, err := Load(Options{WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, "allow", cfg.PolicyFor(cycle.KindColored))
	assert.Equal(t, "throw", cfg.PolicyFor(cycle.KindTransparent))
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestExplicitFile(t *testing.T) {
	configDir := isolate(t)
	writeFile(t, filepath.Join(configDir, paths.ConfigFileName), "[policy]\ndefault = \"throw\"\n")

	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, "[policy]\ndefault = \"allow\"\n")

	cfg, err := Load(Options{File: explicit, WorkDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "allow", cfg.Policy.Default)
	assert.Equal(t, []string{explicit}, cfg.Sources)
}

func TestOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DECOR_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(Options{
		WorkDir:   t.TempDir(),
		Overrides: map[string]interface{}{"output.format": "json", "policy.kinds.transparent": "throw"},
	})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "throw", cfg.PolicyFor(cycle.KindTransparent))
	assert.Equal(t, "absorb", cfg.PolicyFor(cycle.KindColored))

	_, err = Load(Options{WorkDir: t.TempDir(), Overrides: map[string]interface{}{"output.format": "csv"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.ErrorCode
	}{
		{"unknown policy", "c.toml", "[policy]\ndefault = \"lenient\"\n", errors.ErrConfigValid},
		{"unknown kind", "c.toml", "[policy.kinds]\nglowing = \"throw\"\n", errors.ErrConfigValid},
		{"unknown format", "c.toml", "[output]\nformat = \"csv\"\n", errors.ErrConfigValid},
		{"broken toml", "c.toml", "[policy\n", errors.ErrConfigParse},
		{"unsupported extension", "c.ini", "policy=throw", errors.ErrConfigLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			_, err := Load(Options{File: path, WorkDir: t.TempDir()})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "want %s, got %v", tt.wantCode, err)
		})
	}
}

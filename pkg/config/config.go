package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "DECOR_"

// OutputFormats lists the accepted values of output.format
var OutputFormats = []string{"auto", "term", "text", "json", "yaml", "toml", "xml"}

// Config is decor's resolved configuration
type Config struct {
	Policy  PolicyConfig  `koanf:"policy"`
	Output  OutputConfig  `koanf:"output"`
	Logging LoggingConfig `koanf:"logging"`

	// Sources lists the files that were loaded, in order
	Sources []string `koanf:"-"`
}

// PolicyConfig selects cycle policies
type PolicyConfig struct {
	Default string            `koanf:"default"`
	Kinds   map[string]string `koanf:"kinds"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format string `koanf:"format"`
}

// LoggingConfig controls log destinations
type LoggingConfig struct {
	File bool `koanf:"file"`
}

// Options tells Load where to look
type Options struct {
	// File replaces the user config file when set
	File string
	// WorkDir is searched for project config files; defaults to the current directory
	WorkDir string
	// Overrides are dotted keys applied after every other layer, e.g. from flags
	Overrides map[string]interface{}
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

// Default returns the embedded defaults alone
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k, nil)
}

// Load builds the configuration from all layers
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config, or the explicit file
	if opts.File != "" {
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
		sources = append(sources, opts.File)
	} else if p, err := paths.New(); err == nil {
		if _, statErr := os.Stat(p.ConfigFile()); statErr == nil {
			if err := loadFile(k, p.ConfigFile()); err != nil {
				return nil, err
			}
			sources = append(sources, p.ConfigFile())
		}
	}

	// 3. Project config, first match wins
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	for _, name := range paths.ProjectConfigFiles {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			sources = append(sources, path)
			break
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k, sources)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = koanfyaml.Parser()
	default:
		return errors.Newf(errors.ErrConfigLoad, "unsupported config file type: %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func unmarshal(k *koanf.Koanf, sources []string) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if cfg.Policy.Kinds == nil {
		cfg.Policy.Kinds = map[string]string{}
	}
	cfg.Sources = sources
	return &cfg, nil
}

// Validate rejects unknown policy names, decorator kinds and output formats
func (c *Config) Validate() error {
	if _, err := cycle.Parse(c.Policy.Default); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid policy.default")
	}
	for kind, name := range c.Policy.Kinds {
		if !cycle.Contains(cycle.Kinds(), cycle.Kind(kind)) {
			return errors.Newf(errors.ErrConfigValid, "policy.kinds: unknown decorator kind %q", kind)
		}
		if _, err := cycle.Parse(name); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid policy.kinds.%s", kind)
		}
	}
	if !slices.Contains(OutputFormats, strings.ToLower(c.Output.Format)) {
		return errors.Newf(errors.ErrConfigValid, "output.format: unknown format %q", c.Output.Format)
	}
	return nil
}

// PolicyFor returns the configured policy name for a decorator kind
func (c *Config) PolicyFor(kind cycle.Kind) string {
	if name, ok := c.Policy.Kinds[string(kind)]; ok && name != "" {
		return name
	}
	return c.Policy.Default
}

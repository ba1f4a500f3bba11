package recipe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/decor/pkg/config"
	"github.com/arthur-debert/decor/pkg/core"
	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/logging"
	"github.com/arthur-debert/decor/pkg/registry"
	"github.com/arthur-debert/decor/pkg/types"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Version is the recipe format version this package reads
const Version = 1

// Format is a recipe file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Recipe is a decorator chain stored in a file
type Recipe struct {
	Version    int     `yaml:"version,omitempty" toml:"version,omitempty" validate:"omitempty,eq=1"`
	Name       string  `yaml:"name,omitempty" toml:"name,omitempty" validate:"omitempty,max=64"`
	Policy     string  `yaml:"policy,omitempty" toml:"policy,omitempty" validate:"omitempty,policy"`
	Shape      Entry   `yaml:"shape" toml:"shape" validate:"required"`
	Decorators []Entry `yaml:"decorators,omitempty" toml:"decorators,omitempty" validate:"max=64,dive"`

	// Path is where the recipe was loaded from
	Path string `yaml:"-" toml:"-"`
}

// Entry names a shape or decorator and its parameters
type Entry struct {
	Kind string                 `yaml:"kind" toml:"kind" validate:"required"`
	With map[string]interface{} `yaml:"with,omitempty" toml:"with,omitempty"`

	// value holds the inline "kind:value" argument until the
	// registry says which parameter it fills
	value string
}

// UnmarshalText parses the inline "kind:value" form
func (e *Entry) UnmarshalText(text []byte) error {
	kind, value, err := split(string(text))
	if err != nil {
		return err
	}
	*e = Entry{Kind: kind, value: value}
	return nil
}

// UnmarshalYAML accepts both the mapping form and the inline "kind:value" form
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return e.UnmarshalText([]byte(node.Value))
	}

	if node.Kind == yaml.MappingNode {
		for i := 0; i < len(node.Content); i += 2 {
			key := node.Content[i]
			if !isEntryField(key.Value) {
				return fmt.Errorf("line %d: unknown field %q in %q entry", key.Line, key.Value, entryKind(node))
			}
		}
	}

	type plain Entry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

func isEntryField(key string) bool {
	return key == "kind" || key == "with"
}

func entryKind(node *yaml.Node) string {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "kind" {
			return node.Content[i+1].Value
		}
	}
	return ""
}

// tomlRecipe holds a TOML recipe before its entries are decoded. Entries
// are either strings or tables, which a struct field cannot express.
type tomlRecipe struct {
	Version    int           `toml:"version"`
	Name       string        `toml:"name"`
	Policy     string        `toml:"policy"`
	Shape      interface{}   `toml:"shape"`
	Decorators []interface{} `toml:"decorators"`
}

func (t tomlRecipe) recipe() (Recipe, error) {
	r := Recipe{Version: t.Version, Name: t.Name, Policy: t.Policy}

	shape, err := tomlEntry(t.Shape)
	if err != nil {
		return Recipe{}, fmt.Errorf("shape: %w", err)
	}
	r.Shape = shape

	for i, v := range t.Decorators {
		d, err := tomlEntry(v)
		if err != nil {
			return Recipe{}, fmt.Errorf("decorators[%d]: %w", i, err)
		}
		r.Decorators = append(r.Decorators, d)
	}
	return r, nil
}

func tomlEntry(v interface{}) (Entry, error) {
	var e Entry
	switch val := v.(type) {
	case nil:
		return e, nil
	case string:
		err := e.UnmarshalText([]byte(val))
		return e, err
	case map[string]interface{}:
		for key, field := range val {
			switch key {
			case "kind":
				kind, ok := field.(string)
				if !ok {
					return Entry{}, fmt.Errorf("kind must be a string, got %T", field)
				}
				e.Kind = kind
			case "with":
				with, ok := field.(map[string]interface{})
				if !ok {
					return Entry{}, fmt.Errorf("with must be a table, got %T", field)
				}
				e.With = with
			default:
				return Entry{}, fmt.Errorf("unknown field %q", key)
			}
		}
		return e, nil
	default:
		return Entry{}, fmt.Errorf("entry must be a string or a table, got %T", v)
	}
}

// params merges the inline value into With under the given parameter name
func (e Entry) params(param string) types.Params {
	params := types.Params{}
	for k, v := range e.With {
		params[k] = v
	}
	if e.value != "" && param != "" {
		params[param] = e.value
	}
	return params
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("policy", validatePolicy)
	validate.RegisterStructValidation(validateCatalog, Recipe{})
}

func validatePolicy(fl validator.FieldLevel) bool {
	_, err := cycle.Parse(fl.Field().String())
	return err == nil
}

// validateCatalog checks shape and decorator kinds against the registries
func validateCatalog(sl validator.StructLevel) {
	r := sl.Current().Interface().(Recipe)

	if r.Shape.Kind != "" {
		if _, err := registry.GetShape(r.Shape.Kind); err != nil {
			sl.ReportError(r.Shape.Kind, "Shape.Kind", "Kind", "shape", r.Shape.Kind)
		}
	}
	for i, d := range r.Decorators {
		if d.Kind == "" {
			continue
		}
		if _, err := registry.GetDecorator(d.Kind); err != nil {
			field := fmt.Sprintf("Decorators[%d].Kind", i)
			sl.ReportError(d.Kind, field, "Kind", "decorator", d.Kind)
		}
	}
}

// Load reads a recipe, picking the decoder from the file extension
func Load(path string) (*Recipe, error) {
	logger := logging.GetLogger("recipe")

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRecipeLoad, "failed to read recipe %s", path).
			WithDetail("path", path)
	}

	r, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "recipe %s", path).
			WithDetail("path", path)
	}
	r.Path = path

	logger.Debug().
		Str("path", path).
		Str("shape", r.Shape.Kind).
		Int("decorators", len(r.Decorators)).
		Msg("Recipe loaded")
	return r, nil
}

// FormatFor maps a file extension to a recipe format
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrRecipeLoad, "unsupported recipe file type: %s", path).
			WithDetail("path", path)
	}
}

// Parse decodes and validates a recipe
func Parse(data []byte, format Format) (*Recipe, error) {
	var r Recipe
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil {
			return nil, errors.Wrap(err, errors.ErrRecipeLoad, "failed to parse YAML")
		}
	case FormatTOML:
		var raw tomlRecipe
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrRecipeLoad, "failed to parse TOML")
		}
		decoded, err := raw.recipe()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRecipeLoad, "failed to parse TOML")
		}
		r = decoded
	default:
		return nil, errors.Newf(errors.ErrRecipeLoad, "unknown recipe format %q", format)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the recipe's structure and that every kind is registered
func (r *Recipe) Validate() error {
	if err := core.Initialize(); err != nil {
		return err
	}

	r.Shape.Kind = strings.ToLower(strings.TrimSpace(r.Shape.Kind))
	for i := range r.Decorators {
		r.Decorators[i].Kind = strings.ToLower(strings.TrimSpace(r.Decorators[i].Kind))
	}

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.ErrRecipeInvalid, "invalid recipe")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describeFieldError(fe))
	}
	return errors.Newf(errors.ErrRecipeInvalid, "invalid recipe: %s", strings.Join(problems, "; ")).
		WithDetail("fields", problems)
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Recipe.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "shape":
		return fmt.Sprintf("%s: unknown shape %q", field, fe.Param())
	case "decorator":
		return fmt.Sprintf("%s: unknown decorator %q", field, fe.Param())
	case "policy":
		return fmt.Sprintf("%s: unknown policy %q", field, fe.Value())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s fails %s=%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s fails %s", field, fe.Tag())
	}
}

// Request turns the recipe into a compose request. A non-empty policy
// overrides the recipe's own; cfg supplies per-kind policies otherwise.
func (r *Recipe) Request(policy string, cfg *config.Config) (core.Request, error) {
	if err := core.Initialize(); err != nil {
		return core.Request{}, err
	}

	shapeEntry, err := registry.GetShape(r.Shape.Kind)
	if err != nil {
		return core.Request{}, err
	}
	req := core.Request{
		Shape:  core.Spec{Name: shapeEntry.Name, Params: r.Shape.params(shapeEntry.Param)},
		Steps:  make([]core.Spec, 0, len(r.Decorators)),
		Policy: r.Policy,
		Config: cfg,
	}
	if policy != "" {
		req.Policy = policy
	}

	for _, d := range r.Decorators {
		entry, err := registry.GetDecorator(d.Kind)
		if err != nil {
			return core.Request{}, err
		}
		req.Steps = append(req.Steps, core.Spec{Name: entry.Name, Params: d.params(entry.Param)})
	}
	return req, nil
}

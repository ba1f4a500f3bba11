package scaffold

import (
	"context"
	"embed"
	"path/filepath"

	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/logging"
	"github.com/arthur-debert/decor/pkg/paths"
)

//go:embed templates/recipe.yaml templates/decor.toml
var templates embed.FS

// RecipeFile is the name of the sample recipe
const RecipeFile = "recipe.yaml"

// Options controls Init
type Options struct {
	// Dir is the target directory, "." when empty
	Dir    string
	Force  bool
	DryRun bool
}

// Report lists what Init wrote
type Report struct {
	Dir   string
	Files []string
}

// Files returns the starter files, keyed by their name on disk
func Files() ([]File, error) {
	sources := []struct{ template, name string }{
		{"templates/recipe.yaml", RecipeFile},
		{"templates/decor.toml", paths.ProjectConfigFiles[0]},
	}

	files := make([]File, 0, len(sources))
	for _, s := range sources {
		content, err := templates.ReadFile(s.template)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "missing template %s", s.template)
		}
		files = append(files, File{Path: s.name, Content: content, Mode: 0644})
	}
	return files, nil
}

// Init writes the starter files into opts.Dir
func Init(ctx context.Context, opts Options) (*Report, error) {
	logger := logging.GetLogger("scaffold")
	done := logging.LogOperationStart(logger, "init")
	defer done()

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	dir = paths.ExpandHome(dir)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %s", dir)
	}

	files, err := Files()
	if err != nil {
		return nil, err
	}

	w := NewWriter(abs).EnableForce(opts.Force).EnableDryRun(opts.DryRun)
	if err := w.Write(ctx, files); err != nil {
		return nil, err
	}

	report := &Report{Dir: abs}
	for _, f := range files {
		report.Files = append(report.Files, filepath.Join(abs, f.Path))
	}
	return report, nil
}

package scaffold_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/decor/pkg/config"
	"github.com/arthur-debert/decor/pkg/core"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/recipe"
	"github.com/arthur-debert/decor/pkg/scaffold"
	"github.com/arthur-debert/decor/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesStarterFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")

	report, err := scaffold.Init(context.Background(), scaffold.Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, dir, report.Dir)
	assert.Equal(t, []string{
		filepath.Join(dir, "recipe.yaml"),
		filepath.Join(dir, ".decor.toml"),
	}, report.Files)

	for _, f := range report.Files {
		assert.FileExists(t, f)
	}
}

func TestInit_StarterFilesAreUsable(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	dir := env.WorkDir

	_, err := scaffold.Init(context.Background(), scaffold.Options{Dir: dir})
	require.NoError(t, err)

	r, err := recipe.Load(filepath.Join(dir, scaffold.RecipeFile))
	require.NoError(t, err)

	cfg, err := config.Load(config.Options{WorkDir: dir})
	require.NoError(t, err)
	assert.Contains(t, cfg.Sources, filepath.Join(dir, ".decor.toml"))

	req, err := r.Request("", cfg)
	require.NoError(t, err)
	res, err := core.Compose(req)
	require.NoError(t, err)
	assert.Equal(t, "A circle of radius 2 has the color red has 50% transparency", res.Description)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := testutil.CreateFile(t, dir, "recipe.yaml", "mine")

	_, err := scaffold.Init(context.Background(), scaffold.Options{Dir: dir})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileExists))
	assert.Equal(t, existing, errors.GetErrorDetails(err)["path"])
	assert.Equal(t, "mine", testutil.ReadFile(t, existing))
	assert.NoFileExists(t, filepath.Join(dir, ".decor.toml"), "nothing is written when a target exists")
}

func TestInit_Force(t *testing.T) {
	dir := t.TempDir()
	existing := testutil.CreateFile(t, dir, "recipe.yaml", "mine")

	_, err := scaffold.Init(context.Background(), scaffold.Options{Dir: dir, Force: true})
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, existing), "shape: circle:2")
}

func TestInit_DryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dry")

	report, err := scaffold.Init(context.Background(), scaffold.Options{Dir: dir, DryRun: true})
	require.NoError(t, err)
	assert.Len(t, report.Files, 2)
	assert.NoDirExists(t, dir)
}

func TestWriter_RejectsEscapingPaths(t *testing.T) {
	w := scaffold.NewWriter(t.TempDir())
	for _, p := range []string{"", "../x", "/etc/passwd"} {
		err := w.Write(context.Background(), []scaffold.File{{Path: p, Content: []byte("x")}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), p)
	}
}

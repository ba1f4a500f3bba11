package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

// File is one file to write, relative to the writer's root
type File struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

// Writer writes files below a root directory through a synthfs pipeline
type Writer struct {
	logger     zerolog.Logger
	root       string
	force      bool
	dryRun     bool
	filesystem synthfs.FileSystem
}

// NewWriter creates a writer rooted at dir
func NewWriter(dir string) *Writer {
	return &Writer{
		logger:     logging.GetLogger("scaffold.writer"),
		root:       dir,
		filesystem: filesystem.NewOSFileSystem(dir),
	}
}

// EnableForce allows existing files to be replaced
func (w *Writer) EnableForce(force bool) *Writer {
	w.force = force
	return w
}

// EnableDryRun logs what would be written without touching the disk
func (w *Writer) EnableDryRun(dryRun bool) *Writer {
	w.dryRun = dryRun
	return w
}

// Root returns the directory files are written to
func (w *Writer) Root() string { return w.root }

// Write checks every target, then writes all files in one pipeline.
// Nothing is written when any target exists and force is off.
func (w *Writer) Write(ctx context.Context, files []File) error {
	for _, f := range files {
		if err := validateRelPath(f.Path); err != nil {
			return err
		}
		target := filepath.Join(w.root, f.Path)
		if _, err := os.Lstat(target); err == nil && !w.force {
			return errors.Newf(errors.ErrFileExists, "%s already exists (use --force to overwrite)", target).
				WithDetail("path", target)
		}
	}

	if w.dryRun {
		for _, f := range files {
			w.logger.Info().
				Str("path", filepath.Join(w.root, f.Path)).
				Int("bytes", len(f.Content)).
				Msg("Dry run: would write file")
		}
		return nil
	}

	if err := os.MkdirAll(w.root, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create directory %s", w.root)
	}

	// synthfs refuses to create over an existing file
	if w.force {
		for _, f := range files {
			target := filepath.Join(w.root, f.Path)
			if _, err := os.Lstat(target); err == nil {
				w.logger.Debug().Str("path", target).Msg("Removing existing file to allow overwrite")
				if err := os.Remove(target); err != nil {
					return errors.Wrapf(err, errors.ErrFileCreate, "failed to replace %s", target)
				}
			}
		}
	}

	pipeline := synthfs.NewMemPipeline()
	for _, f := range files {
		op := w.createFile(f)
		if err := pipeline.Add(op); err != nil {
			return errors.Wrapf(err, errors.ErrFileCreate, "failed to queue %s", f.Path)
		}
	}

	w.logger.Debug().Str("root", w.root).Int("files", len(files)).Msg("Writing files")

	result := synthfs.NewExecutor().Run(ctx, pipeline, w.filesystem)
	if err := result.GetError(); err != nil {
		w.logger.Error().Err(err).Msg("Pipeline execution failed")
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to write files to %s", w.root)
	}
	return nil
}

func (w *Writer) createFile(f File) synthfs.Operation {
	mode := f.Mode
	if mode == 0 {
		mode = 0644
	}

	opID := core.OperationID(fmt.Sprintf("write-file-%s", f.Path))
	createOp := operations.NewCreateFileOperation(opID, f.Path)
	createOp.SetItem(&fileItem{
		path:    f.Path,
		content: f.Content,
		mode:    mode,
	})
	return synthfs.NewOperationsPackageAdapter(createOp)
}

// validateRelPath keeps writes inside the root
func validateRelPath(p string) error {
	clean := filepath.Clean(p)
	if p == "" || filepath.IsAbs(p) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.Newf(errors.ErrInvalidInput, "path %q must be relative to the target directory", p)
	}
	return nil
}

// fileItem is the synthfs item for a file with content
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

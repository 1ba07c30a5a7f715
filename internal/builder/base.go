package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/zoro11031/treesketch/internal/system"
)

// ErrOverwriteDeclined is returned when an existing base directory may not be replaced.
var ErrOverwriteDeclined = errors.New("overwrite of existing base directory declined")

// Confirmer answers yes/no questions, usually by asking the user.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// BaseResolver decides where the hierarchy is built and prepares that
// directory.
type BaseResolver struct {
	fs      system.FileSystemManager
	confirm Confirmer
	log     *slog.Logger
}

// NewBaseResolver creates a BaseResolver.
func NewBaseResolver(fs system.FileSystemManager, confirm Confirmer, log *slog.Logger) *BaseResolver {
	return &BaseResolver{fs: fs, confirm: confirm, log: log}
}

// Locate maps the root entry name onto a base directory inside output,
// which must be absolute and clean. A root that does not sit directly in
// output falls back to output itself.
func (r *BaseResolver) Locate(rootName, output string) string {
	rootPath := rootName
	if !filepath.IsAbs(rootPath) {
		rootPath = filepath.Join(output, rootPath)
	}
	rootPath = filepath.Clean(rootPath)

	switch {
	case rootPath == output:
		return output
	case filepath.Dir(rootPath) != output:
		r.log.Warn("root entry is not inside the output directory, building into the output directory instead",
			"root", rootName, "output", output)
		return output
	default:
		return rootPath
	}
}

// Resolve locates the base directory and makes sure it exists and is empty.
// An existing base is only removed after confirmation. When the base is the
// output directory itself it is used as is.
func (r *BaseResolver) Resolve(rootName, output string) (string, error) {
	base := r.Locate(rootName, output)
	if base == output {
		r.log.Debug("using output directory as base", "path", base)
		return base, nil
	}

	exists, err := r.fs.FileExists(base)
	if err != nil {
		return "", err
	}
	if exists {
		isDir, err := r.fs.DirectoryExists(base)
		if err != nil {
			return "", err
		}
		kind := "file"
		if isDir {
			kind = "directory"
		}
		ok, err := r.confirm.Confirm(fmt.Sprintf("%s already exists as a %s. Remove it and recreate?", base, kind))
		if err != nil {
			return "", fmt.Errorf("failed to confirm overwrite of %s: %w", base, err)
		}
		if !ok {
			return "", fmt.Errorf("%s: %w", base, ErrOverwriteDeclined)
		}
		if err := r.fs.RemoveDirectory(base); err != nil {
			return "", fmt.Errorf("failed to clear existing base directory: %w", err)
		}
		r.log.Info("removed existing base directory", "path", base)
	}

	if err := r.fs.CreateDirectory(base, DirPerm); err != nil {
		return "", fmt.Errorf("failed to create base directory: %w", err)
	}
	return base, nil
}

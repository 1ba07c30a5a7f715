package system

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zoro11031/treesketch/internal/common"
)

// FileSystem handles file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// CreateDirectory creates a single directory with the given permissions.
// If the directory already exists, it does nothing
func (fs *FileSystem) CreateDirectory(path string, perms os.FileMode) error {
	err := os.Mkdir(path, perms)
	if err == nil {
		return nil
	}
	if os.IsExist(err) {
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	return fmt.Errorf("failed to create directory %s: %w", path, err)
}

// Touch creates an empty file, or updates the timestamps of an existing one
func (fs *FileSystem) Touch(path string, perms os.FileMode) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s exists but is a directory", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, perms)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return fmt.Errorf("failed to touch %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file or directory exists
func (fs *FileSystem) FileExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (fs *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// RemoveDirectory removes a directory and all its contents, or a single file.
// Safety checks are in place to prevent accidental deletion of critical directories.
func (fs *FileSystem) RemoveDirectory(path string) error {
	if path == "" {
		return fmt.Errorf("refusing to remove empty path")
	}

	if err := common.ValidatePath(path); err != nil {
		return fmt.Errorf("refusing to remove: %w", err)
	}

	clean := filepath.Clean(path)
	if isCriticalPath(clean) {
		return fmt.Errorf("refusing to remove critical system path: %s", clean)
	}

	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("failed to remove %s: %w", clean, err)
	}
	return nil
}

var criticalPaths = []string{
	"/",
	"/bin",
	"/boot",
	"/dev",
	"/etc",
	"/home",
	"/lib",
	"/lib64",
	"/proc",
	"/root",
	"/sbin",
	"/srv",
	"/sys",
	"/tmp",
	"/usr",
	"/var",
}

// Only exact matches are refused: callers remove a direct child of an output
// directory that has already been checked as writable.
func isCriticalPath(path string) bool {
	for _, critical := range criticalPaths {
		if path == critical {
			return true
		}
	}
	if home, err := os.UserHomeDir(); err == nil && path == filepath.Clean(home) {
		return true
	}
	return false
}

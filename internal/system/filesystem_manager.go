package system

import "os"

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	CreateDirectory(path string, perms os.FileMode) error
	Touch(path string, perms os.FileMode) error
	RemoveDirectory(path string) error
	FileExists(path string) (bool, error)
	DirectoryExists(path string) (bool, error)
}

var _ FileSystemManager = (*FileSystem)(nil)

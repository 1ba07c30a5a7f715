package system

import (
	"os"
	"sync"
)

// MockFileSystem is a mock of the FileSystem for testing purposes.
// Operations go to the real filesystem unless a failure has been injected
// for the path; every successful creation is recorded.
type MockFileSystem struct {
	FileSystem
	mu       sync.Mutex
	failures map[string]error
	Created  []string
	Removed  []string
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		failures: make(map[string]error),
	}
}

// FailOn makes every operation on path return err.
func (m *MockFileSystem) FailOn(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[path] = err
}

func (m *MockFileSystem) failure(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures[path]
}

func (m *MockFileSystem) record(list *[]string, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*list = append(*list, path)
}

// CreateDirectory is a mock implementation of FileSystemManager.CreateDirectory.
func (m *MockFileSystem) CreateDirectory(path string, perms os.FileMode) error {
	if err := m.failure(path); err != nil {
		return err
	}
	if err := m.FileSystem.CreateDirectory(path, perms); err != nil {
		return err
	}
	m.record(&m.Created, path)
	return nil
}

// Touch is a mock implementation of FileSystemManager.Touch.
func (m *MockFileSystem) Touch(path string, perms os.FileMode) error {
	if err := m.failure(path); err != nil {
		return err
	}
	if err := m.FileSystem.Touch(path, perms); err != nil {
		return err
	}
	m.record(&m.Created, path)
	return nil
}

// RemoveDirectory is a mock implementation of FileSystemManager.RemoveDirectory.
func (m *MockFileSystem) RemoveDirectory(path string) error {
	if err := m.failure(path); err != nil {
		return err
	}
	if err := m.FileSystem.RemoveDirectory(path); err != nil {
		return err
	}
	m.record(&m.Removed, path)
	return nil
}

package system

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCreateDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	fs := NewFileSystem()

	existingFile := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(existingFile, nil, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	existingDir := filepath.Join(tmpDir, "existing")
	if err := os.Mkdir(existingDir, 0755); err != nil {
		t.Fatalf("Failed to create test directory: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"new directory", filepath.Join(tmpDir, "new"), false},
		{"existing directory is a no-op", existingDir, false},
		{"existing file conflicts", existingFile, true},
		{"missing parent", filepath.Join(tmpDir, "missing", "child"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.CreateDirectory(tt.path, 0755)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateDirectory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			exists, err := fs.DirectoryExists(tt.path)
			if err != nil || !exists {
				t.Errorf("DirectoryExists() = %v, %v after CreateDirectory()", exists, err)
			}
		})
	}
}

func TestTouch(t *testing.T) {
	tmpDir := t.TempDir()
	fs := NewFileSystem()

	path := filepath.Join(tmpDir, "empty.txt")
	if err := fs.Touch(path, 0644); err != nil {
		t.Fatalf("Touch() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat touched file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Touch() created file of size %d, want 0", info.Size())
	}

	// Touching again keeps content and succeeds.
	if err := os.WriteFile(path, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}
	if err := fs.Touch(path, 0644); err != nil {
		t.Fatalf("Touch() on existing file error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "keep" {
		t.Errorf("Touch() changed content to %q", data)
	}
	info, _ = os.Stat(path)
	if !info.ModTime().After(old) {
		t.Errorf("Touch() did not update modification time")
	}

	if err := fs.Touch(tmpDir, 0644); err == nil {
		t.Error("Touch() on a directory succeeded")
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	fs := NewFileSystem()

	exists, err := fs.FileExists(tmpDir)
	if err != nil || !exists {
		t.Errorf("FileExists(tmpDir) = %v, %v, want true", exists, err)
	}
	exists, err = fs.FileExists(filepath.Join(tmpDir, "nope"))
	if err != nil || exists {
		t.Errorf("FileExists(missing) = %v, %v, want false", exists, err)
	}
}

func TestRemoveDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	fs := NewFileSystem()

	tree := filepath.Join(tmpDir, "tree")
	if err := os.MkdirAll(filepath.Join(tree, "a", "b"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tree, "a", "f.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := fs.RemoveDirectory(tree); err != nil {
		t.Fatalf("RemoveDirectory() error = %v", err)
	}
	if exists, _ := fs.FileExists(tree); exists {
		t.Error("RemoveDirectory() left the tree behind")
	}
}

func TestRemoveDirectorySafety(t *testing.T) {
	fs := NewFileSystem()

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"relative path", "some/dir"},
		{"filesystem root", "/"},
		{"system directory", "/etc"},
		{"system directory with trailing slash", "/usr/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := fs.RemoveDirectory(tt.path); err == nil {
				t.Errorf("RemoveDirectory(%q) succeeded, want refusal", tt.path)
			}
		})
	}
}

func TestMockFileSystemFailures(t *testing.T) {
	tmpDir := t.TempDir()
	m := NewMockFileSystem()

	bad := filepath.Join(tmpDir, "bad")
	injected := errors.New("disk full")
	m.FailOn(bad, injected)

	if err := m.CreateDirectory(bad, 0755); !errors.Is(err, injected) {
		t.Errorf("CreateDirectory() error = %v, want injected failure", err)
	}
	if err := m.Touch(bad, 0644); !errors.Is(err, injected) {
		t.Errorf("Touch() error = %v, want injected failure", err)
	}

	good := filepath.Join(tmpDir, "good")
	if err := m.CreateDirectory(good, 0755); err != nil {
		t.Fatalf("CreateDirectory() error = %v", err)
	}
	if len(m.Created) != 1 || m.Created[0] != good {
		t.Errorf("Created = %v, want [%s]", m.Created, good)
	}
	if exists, _ := m.FileExists(bad); exists {
		t.Error("failed path was created on disk")
	}
}

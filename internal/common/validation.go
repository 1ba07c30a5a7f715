package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Validation failure reasons
const (
	ReasonUnreadableSource = "unreadable source"
	ReasonUnwritableOutput = "unwritable output"
)

// ValidationError reports an input path that cannot be used for a run
type ValidationError struct {
	Field  string
	Path   string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Reason, e.Field, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s %s", e.Reason, e.Field, e.Path)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateSource checks that path is an existing, readable regular file and
// returns its absolute form
func ValidateSource(path string) (string, error) {
	fail := func(err error) (string, error) {
		return "", &ValidationError{Field: "source", Path: path, Reason: ReasonUnreadableSource, Err: err}
	}

	if err := ValidateNotEmpty(path); err != nil {
		return fail(err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fail(err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fail(err)
	}
	if !info.Mode().IsRegular() {
		return fail(fmt.Errorf("not a regular file"))
	}
	if err := unix.Access(abs, unix.R_OK); err != nil {
		return fail(err)
	}

	return abs, nil
}

// ValidateOutputRoot checks that path is an existing, writable directory and
// returns its absolute form
func ValidateOutputRoot(path string) (string, error) {
	fail := func(err error) (string, error) {
		return "", &ValidationError{Field: "output", Path: path, Reason: ReasonUnwritableOutput, Err: err}
	}

	if err := ValidateNotEmpty(path); err != nil {
		return fail(err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fail(err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fail(err)
	}
	if !info.IsDir() {
		return fail(fmt.Errorf("not a directory"))
	}
	// Creating entries needs search permission as well as write.
	if err := unix.Access(abs, unix.W_OK|unix.X_OK); err != nil {
		return fail(err)
	}

	return abs, nil
}

// ValidatePath validates that a path is absolute
func ValidatePath(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("path must be absolute: %s", path)
	}
	return nil
}

// ValidateName checks that name is a single path segment that stays inside
// its parent directory
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name must not contain path separators: %q", name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("name must not contain NUL bytes: %q", name)
	}
	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

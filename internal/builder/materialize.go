package builder

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/zoro11031/treesketch/internal/common"
	"github.com/zoro11031/treesketch/internal/outline"
	"github.com/zoro11031/treesketch/internal/system"
)

// Permissions for created entries, before umask.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

type dirState int

const (
	dirCreated dirState = iota
	dirExcluded
	dirFailed
)

// dirHandle is an open directory on the cursor stack. Excluded and failed
// directories keep their slot so that depth tracking stays intact and their
// descendants inherit the outcome.
type dirHandle struct {
	path  string
	rel   string // slash-separated, relative to the base directory
	state dirState
}

// Materializer creates outline entries on disk and records the outcome in a
// Summary. Failures are logged and counted, never returned.
type Materializer struct {
	fs      system.FileSystemManager
	log     *slog.Logger
	exclude []string
	summary *Summary
}

func newMaterializer(fs system.FileSystemManager, log *slog.Logger, exclude []string, summary *Summary) *Materializer {
	return &Materializer{fs: fs, log: log, exclude: exclude, summary: summary}
}

// Materialize creates entry under parent. For a directory entry it returns
// the handle to push, whatever happened to it.
func (m *Materializer) Materialize(line int, parent dirHandle, entry outline.Entry) dirHandle {
	if entry.Kind == outline.Directory {
		return m.CreateDirectory(line, parent, entry.Name)
	}
	m.CreateFile(line, parent, entry.Name)
	return dirHandle{}
}

// CreateFile creates an empty file, or touches an existing one.
func (m *Materializer) CreateFile(line int, parent dirHandle, name string) {
	target, ok := m.prepare(line, parent, name, outline.File)
	if !ok {
		return
	}
	if err := m.fs.Touch(target.path, FilePerm); err != nil {
		m.summary.Failed++
		m.log.Warn("failed to create file", "line", line, "entry", target.rel, "err", err)
		return
	}
	m.summary.Files++
	m.log.Debug("created file", "line", line, "path", target.path)
}

// CreateDirectory creates a directory and returns its handle.
func (m *Materializer) CreateDirectory(line int, parent dirHandle, name string) dirHandle {
	target, ok := m.prepare(line, parent, name, outline.Directory)
	if !ok {
		return target
	}
	if err := m.fs.CreateDirectory(target.path, DirPerm); err != nil {
		m.summary.Failed++
		m.log.Warn("failed to create directory", "line", line, "entry", target.rel, "err", err)
		target.state = dirFailed
		return target
	}
	m.summary.Directories++
	m.log.Debug("created directory", "line", line, "path", target.path)
	return target
}

// prepare works out the target of an entry and whether it should be created.
// When it should not, the returned handle carries the reason.
func (m *Materializer) prepare(line int, parent dirHandle, name string, kind outline.Kind) (dirHandle, bool) {
	target := dirHandle{
		path: filepath.Join(parent.path, name),
		rel:  path.Join(parent.rel, name),
	}

	switch parent.state {
	case dirExcluded:
		m.summary.Excluded++
		m.log.Debug("excluded with parent", "line", line, "entry", target.rel)
		target.state = dirExcluded
		return target, false
	case dirFailed:
		m.summary.Skipped++
		m.log.Warn("skipping entry, parent directory was not created", "line", line, "entry", target.rel, "parent", parent.rel)
		target.state = dirFailed
		return target, false
	}

	if err := common.ValidateName(name); err != nil {
		m.summary.Failed++
		m.log.Warn("invalid entry name", "line", line, "kind", kind.String(), "err", err)
		target.state = dirFailed
		return target, false
	}

	if m.excluded(target.rel) {
		m.summary.Excluded++
		m.log.Info("excluded", "line", line, "entry", target.rel)
		target.state = dirExcluded
		return target, false
	}

	return target, true
}

func (m *Materializer) excluded(rel string) bool {
	for _, pattern := range m.exclude {
		// Patterns are validated with the rest of the options.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

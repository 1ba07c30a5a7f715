// Package builder materializes an outline on disk. A run validates its
// inputs, settles the base directory, then streams the outline line by line.
// Setup problems abort the run before anything is created; problems with a
// single line are logged and the line is skipped.
package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/zoro11031/treesketch/internal/common"
	"github.com/zoro11031/treesketch/internal/config"
	"github.com/zoro11031/treesketch/internal/outline"
	"github.com/zoro11031/treesketch/internal/system"
)

var (
	// ErrEmptyOutline is returned for an outline without a root entry.
	ErrEmptyOutline = outline.ErrEmptyOutline
	// ErrRootNotDirectory is returned when the root entry lacks the delimiter.
	ErrRootNotDirectory = errors.New("root entry must be a directory")
	// ErrRunInProgress is returned when Parse is called during another run.
	ErrRunInProgress = errors.New("a run is already in progress")
)

// Summary counts what a run did.
type Summary struct {
	Base        string
	Directories int
	Files       int
	Skipped     int
	Excluded    int
	Failed      int
}

// Builder runs outlines against a filesystem, one at a time.
type Builder struct {
	fs       system.FileSystemManager
	resolver *BaseResolver
	log      *slog.Logger

	running sync.Mutex
	mu      sync.Mutex
	state   State
}

// New creates a Builder. confirm is asked before an existing base directory
// is replaced.
func New(fs system.FileSystemManager, confirm Confirmer, log *slog.Logger) *Builder {
	return &Builder{
		fs:       fs,
		resolver: NewBaseResolver(fs, confirm, log),
		log:      log,
	}
}

// State returns the phase of the current or last run.
func (b *Builder) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Builder) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
	b.log.Debug("state changed", "state", s.String())
}

func (b *Builder) abort(err error) (*Summary, error) {
	b.setState(Aborted)
	b.log.Error("run aborted", "err", err)
	return nil, err
}

// Parse builds the hierarchy described by the outline at opts.Source inside
// opts.Output. It returns an error only when the run aborts during setup;
// per-line problems are reported through the logger and the Summary.
func (b *Builder) Parse(opts config.Options) (*Summary, error) {
	if !b.running.TryLock() {
		return nil, ErrRunInProgress
	}
	defer b.running.Unlock()

	b.setState(Validating)
	if err := opts.Validate(); err != nil {
		return b.abort(fmt.Errorf("invalid options: %w", err))
	}
	source, err := common.ValidateSource(opts.Source)
	if err != nil {
		return b.abort(err)
	}
	output, err := common.ValidateOutputRoot(opts.Output)
	if err != nil {
		return b.abort(err)
	}

	f, err := os.Open(source)
	if err != nil {
		return b.abort(&common.ValidationError{Field: "source", Path: source, Reason: common.ReasonUnreadableSource, Err: err})
	}
	defer f.Close()

	b.setState(ResolvingBase)
	r := outline.NewReader(f)
	rootLine, err := r.Root()
	if err != nil {
		return b.abort(fmt.Errorf("failed to read root entry: %w", err))
	}
	root := outline.Classify(rootLine.Text, opts.Indent, opts.Delimiter)
	if root.Kind != outline.Directory {
		return b.abort(fmt.Errorf("line %d: %q: %w (end it with %q)", rootLine.Number, root.Name, ErrRootNotDirectory, opts.Delimiter))
	}
	base, err := b.resolver.Resolve(root.Name, output)
	if err != nil {
		return b.abort(err)
	}

	b.setState(Streaming)
	summary := &Summary{Base: base}
	b.stream(r, opts, base, summary)

	if err := r.Err(); err != nil {
		// Whatever was read so far has been created; report the rest as lost.
		b.log.Error("failed to read the rest of the outline", "err", err)
		b.setState(Finished)
		return summary, fmt.Errorf("failed to read outline: %w", err)
	}

	b.setState(Finished)
	b.log.Info("hierarchy created",
		"base", base,
		"directories", summary.Directories,
		"files", summary.Files,
		"skipped", summary.Skipped,
		"excluded", summary.Excluded,
		"failed", summary.Failed)
	return summary, nil
}

func (b *Builder) stream(r *outline.Reader, opts config.Options, base string, summary *Summary) {
	m := newMaterializer(b.fs, b.log, opts.Exclude, summary)
	cursor := outline.NewCursor(opts.Indent, dirHandle{path: base})

	for line, ok := r.Next(); ok; line, ok = r.Next() {
		if line.Blank() {
			b.log.Debug("ignoring blank line", "line", line.Number)
			continue
		}

		parent, err := cursor.Resolve(line.Text)
		if err != nil {
			summary.Skipped++
			b.log.Warn("skipping malformed line", "line", line.Number, "err", err)
			continue
		}

		entry := outline.Classify(line.Text, opts.Indent, opts.Delimiter)
		dir := m.Materialize(line.Number, parent, entry)
		if entry.Kind == outline.Directory {
			cursor.Push(dir)
		}
	}
}

// Package cli connects the command-line layer to the builder: it assembles
// configuration, terminal UI, logger and filesystem for one invocation and
// reports the outcome to the user.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zoro11031/treesketch/internal/builder"
	"github.com/zoro11031/treesketch/internal/common"
	"github.com/zoro11031/treesketch/internal/config"
	"github.com/zoro11031/treesketch/internal/preview"
	"github.com/zoro11031/treesketch/internal/system"
	"github.com/zoro11031/treesketch/internal/ui"
)

// RunContext holds all dependencies needed for one invocation
type RunContext struct {
	Options config.Options
	UI      *ui.UI
	Logger  *slog.Logger
	Builder *builder.Builder
}

// NewRunContext creates a RunContext with all dependencies initialized
func NewRunContext(opts config.Options) (*RunContext, error) {
	return NewRunContextWithWriter(opts, os.Stderr)
}

// NewRunContextWithWriter creates a RunContext that writes messages and logs to w
func NewRunContextWithWriter(opts config.Options, w io.Writer) (*RunContext, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	uiInstance := ui.NewWithWriter(w)
	uiInstance.SetAssumeYes(opts.AssumeYes)
	logger := ui.NewLogger(uiInstance, opts.LogLevel, opts.LogFormat, w)

	return &RunContext{
		Options: opts,
		UI:      uiInstance,
		Logger:  logger,
		Builder: builder.New(system.NewFileSystem(), uiInstance, logger),
	}, nil
}

// decorate reports whether human-oriented output should be printed; JSON
// logs are meant for machines and stay clean.
func (c *RunContext) decorate() bool {
	return c.Options.LogFormat != "json"
}

// Build materializes the outline and prints a summary
func (c *RunContext) Build() error {
	if c.decorate() {
		c.UI.Header(fmt.Sprintf("Building %s", c.Options.Source))
	}

	summary, err := c.Builder.Parse(c.Options)
	if err != nil {
		return err
	}

	if c.decorate() {
		c.printSummary(summary)
	}
	return nil
}

func (c *RunContext) printSummary(s *builder.Summary) {
	c.UI.Print("")
	c.UI.Separator()
	c.UI.Successf("Created %d directories and %d files in %s", s.Directories, s.Files, s.Base)
	if s.Excluded > 0 {
		c.UI.Infof("Excluded %d entries", s.Excluded)
	}
	if problems := s.Skipped + s.Failed; problems > 0 {
		c.UI.Warningf("%d entries were not created (%d skipped, %d failed), see warnings above",
			problems, s.Skipped, s.Failed)
	}
}

// Preview renders the outline to out without creating anything
func (c *RunContext) Preview(out io.Writer) error {
	source, err := common.ValidateSource(c.Options.Source)
	if err != nil {
		return err
	}
	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open outline: %w", err)
	}
	defer f.Close()

	res, err := preview.Render(f, c.Options, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to render outline: %w", err)
	}

	fmt.Fprint(out, res.Tree)
	if c.decorate() {
		c.UI.Infof("%d entries would be created, %d skipped, %d excluded", res.Entries, res.Skipped, res.Excluded)
	}
	return nil
}

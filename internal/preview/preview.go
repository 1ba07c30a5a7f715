// Package preview renders an outline as a tree without touching the disk,
// applying the same nesting, naming and exclusion rules as a real build.
package preview

import (
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/disiqueira/gotree/v3"
	"github.com/zoro11031/treesketch/internal/common"
	"github.com/zoro11031/treesketch/internal/config"
	"github.com/zoro11031/treesketch/internal/outline"
)

// Result is a rendered outline.
type Result struct {
	Tree     string
	Entries  int
	Skipped  int
	Excluded int
}

type node struct {
	tree     gotree.Tree
	rel      string
	hidden   bool
	excluded bool
}

// Render reads the outline from r and draws the hierarchy a build would
// create. Lines a build would skip are logged the same way and left out.
func Render(r io.Reader, opts config.Options, log *slog.Logger) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	lines := outline.NewReader(r)
	rootLine, err := lines.Root()
	if err != nil {
		return nil, err
	}
	root := outline.Classify(rootLine.Text, opts.Indent, opts.Delimiter)
	if root.Kind != outline.Directory {
		return nil, fmt.Errorf("line %d: root entry %q must end with %q", rootLine.Number, root.Name, opts.Delimiter)
	}

	res := &Result{}
	top := gotree.New(root.Name + "/")
	cursor := outline.NewCursor(opts.Indent, node{tree: top})

	for line, ok := lines.Next(); ok; line, ok = lines.Next() {
		if line.Blank() {
			continue
		}
		parent, err := cursor.Resolve(line.Text)
		if err != nil {
			res.Skipped++
			log.Warn("skipping malformed line", "line", line.Number, "err", err)
			continue
		}

		entry := outline.Classify(line.Text, opts.Indent, opts.Delimiter)
		child := place(res, opts.Exclude, line.Number, parent, entry, log)
		if entry.Kind == outline.Directory {
			cursor.Push(child)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}

	res.Tree = top.Print()
	return res, nil
}

func place(res *Result, exclude []string, line int, parent node, entry outline.Entry, log *slog.Logger) node {
	child := node{rel: path.Join(parent.rel, entry.Name), hidden: true}
	label := entry.Name
	if entry.Kind == outline.Directory {
		label += "/"
	}
	// Hidden entries hang off a detached tree so their children vanish too.
	child.tree = gotree.New(label)

	switch {
	case parent.excluded:
		res.Excluded++
		child.excluded = true
	case parent.hidden:
		res.Skipped++
		log.Warn("skipping entry, parent directory was not created", "line", line, "entry", child.rel)
	case common.ValidateName(entry.Name) != nil:
		res.Skipped++
		log.Warn("invalid entry name", "line", line, "name", entry.Name)
	case matchesAny(exclude, child.rel):
		res.Excluded++
		child.excluded = true
	default:
		child.tree = parent.tree.Add(label)
		child.hidden = false
		res.Entries++
	}
	return child
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

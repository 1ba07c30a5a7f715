package outline

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrAboveRoot is returned for a non-root line that sits at depth 0, which
// would make it a sibling of the root entry.
var ErrAboveRoot = errors.New("entry is not nested under the root entry")

// DepthError reports a line that opens more than one level of nesting at once.
type DepthError struct {
	Depth    int
	Previous int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("indentation jumps from depth %d to depth %d", e.Previous, e.Depth)
}

// Cursor tracks the directories that are open at the current outline
// position. stack[0] is the base directory and the top of the stack is the
// parent of a sibling of the last accepted directory, so len(stack) is
// always previous+1.
//
// H is whatever the caller uses to identify a directory: a path on disk, a
// node in a rendered tree.
type Cursor[H any] struct {
	indent   string
	previous int
	stack    []H
}

// NewCursor starts a cursor at the root entry (depth 0) with base open.
func NewCursor[H any](indent string, base H) *Cursor[H] {
	return &Cursor[H]{
		indent: indent,
		stack:  []H{base},
	}
}

// Depth counts the leading indent markers of line. When the indentation
// cannot be read as whole markers (a partial marker, or whitespace of another
// kind) the previous depth is returned unchanged.
func (c *Cursor[H]) Depth(line string) int {
	rest := line
	n := 0
	for c.indent != "" && strings.HasPrefix(rest, c.indent) {
		rest = rest[len(c.indent):]
		n++
	}
	if rest != "" && unicode.IsSpace(rune(rest[0])) {
		return c.previous
	}
	return n
}

// Resolve returns the directory that line's entry belongs in, closing any
// directories the line has stepped out of. A malformed line returns an error
// and leaves the cursor untouched.
func (c *Cursor[H]) Resolve(line string) (H, error) {
	var zero H

	depth := c.Depth(line)
	if depth < 1 {
		return zero, ErrAboveRoot
	}
	if depth-c.previous > 1 {
		return zero, &DepthError{Depth: depth, Previous: c.previous}
	}

	for c.previous >= depth {
		c.stack = c.stack[:len(c.stack)-1]
		c.previous--
	}
	return c.stack[len(c.stack)-1], nil
}

// Push opens dir one level below the last resolved parent. It must follow a
// successful Resolve for a directory entry.
func (c *Cursor[H]) Push(dir H) {
	c.stack = append(c.stack, dir)
	c.previous++
}

// Previous is the depth of the last accepted directory.
func (c *Cursor[H]) Previous() int {
	return c.previous
}

// Len is the number of open directories, base included.
func (c *Cursor[H]) Len() int {
	return len(c.stack)
}

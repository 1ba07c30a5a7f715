// Package outline turns an indented text outline into positioned entries.
// It never touches the filesystem: callers decide what a directory handle is
// and what to do with each entry.
package outline

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrEmptyOutline is returned when the outline has no non-blank line.
var ErrEmptyOutline = errors.New("outline is empty")

// Line is one raw outline line with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// Blank reports whether the line holds nothing but whitespace.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Reader streams outline lines in order.
type Reader struct {
	sc *bufio.Scanner
	n  int
}

// NewReader wraps r. Lines up to 1 MiB are accepted.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)
	return &Reader{sc: sc}
}

// Next returns the next line, with any trailing carriage return removed.
func (r *Reader) Next() (Line, bool) {
	if !r.sc.Scan() {
		return Line{}, false
	}
	r.n++
	return Line{Number: r.n, Text: strings.TrimRight(r.sc.Text(), "\r")}, true
}

// Root returns the first non-blank line, which names the root entry.
func (r *Reader) Root() (Line, error) {
	for {
		line, ok := r.Next()
		if !ok {
			if err := r.Err(); err != nil {
				return Line{}, err
			}
			return Line{}, ErrEmptyOutline
		}
		if !line.Blank() {
			return line, nil
		}
	}
}

// Err reports the first read error, if any.
func (r *Reader) Err() error {
	return r.sc.Err()
}

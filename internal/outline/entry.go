package outline

import "strings"

// Kind says what an outline entry creates.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// Entry is a classified outline line.
type Entry struct {
	Kind Kind
	Name string
}

// Classify strips the leading indent markers from line and decides whether
// it names a directory (trailing delimiter) or a file. The delimiter is not
// part of the returned name.
func Classify(line, indent, delimiter string) Entry {
	text := line
	for indent != "" && strings.HasPrefix(text, indent) {
		text = text[len(indent):]
	}
	text = strings.TrimSpace(text)

	if delimiter != "" && strings.HasSuffix(text, delimiter) {
		return Entry{
			Kind: Directory,
			Name: strings.TrimSpace(strings.TrimSuffix(text, delimiter)),
		}
	}
	return Entry{Kind: File, Name: text}
}

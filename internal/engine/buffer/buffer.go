package buffer

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Buffer holds document content as an ordered sequence of lines.
// Lines never contain embedded newlines.
type Buffer struct {
	lines      []string
	revisionID RevisionID
}

// New creates an empty buffer (zero lines).
func New() *Buffer {
	return &Buffer{revisionID: NewRevisionID()}
}

// FromString creates a buffer from raw text. Line endings are normalized to
// LF before splitting; a trailing terminator does not produce an extra empty
// line. The empty string yields a zero-line buffer.
func FromString(s string) *Buffer {
	b := New()
	b.lines = splitLines(s)
	return b
}

// FromLines creates a buffer from an explicit line slice. The slice is copied.
func FromLines(lines []string) *Buffer {
	b := New()
	b.lines = append([]string(nil), lines...)
	return b
}

// FromReader creates a buffer from an io.Reader.
func FromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromString(string(data)), nil
}

// Read Operations

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of a line. The second return is false when the index
// is out of range; out-of-range lookup is never an error.
func (b *Buffer) Line(i int) (string, bool) {
	if i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

// LineLen returns the length of a line in runes, or 0 for an absent line.
func (b *Buffer) LineLen(i int) int {
	line, ok := b.Line(i)
	if !ok {
		return 0
	}
	return utf8.RuneCountInString(line)
}

// IsEmpty reports whether the buffer holds zero lines. A buffer whose lines
// are all empty strings is not empty by this definition.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Text returns the full content with lines joined by LF.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// Lines returns a copy of the line slice.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Write Operations

// SetText replaces the full content and bumps the revision.
func (b *Buffer) SetText(s string) {
	b.lines = splitLines(s)
	b.revisionID = NewRevisionID()
}

// SetLines replaces the full content from a line slice and bumps the revision.
// The slice is copied.
func (b *Buffer) SetLines(lines []string) {
	b.lines = append([]string(nil), lines...)
	b.revisionID = NewRevisionID()
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// splitLines normalizes line endings to LF and splits into lines. A single
// trailing empty segment produced by a trailing terminator is dropped.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

package buffer

import (
	"io"
	"strings"
	"sync"
)

// Buffer stores text as a sequence of lines.
// Lines are held without their terminators; a buffer ending in a newline
// has a final empty line. An empty buffer has exactly one empty line.
// All methods are thread-safe.
type Buffer struct {
	mu    sync.RWMutex
	lines []string
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{lines: []string{""}}
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string) *Buffer {
	b := NewBuffer()
	b.setText(NormalizeLineEndings(s))
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader) (*Buffer, error) {
	// Read everything first; CRLF sequences may be split across reads.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data)), nil
}

// NormalizeLineEndings converts CRLF and CR line endings to LF.
func NormalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (b *Buffer) setText(s string) {
	b.lines = strings.Split(s, "\n")
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, "\n")
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := len(b.lines) - 1
	for _, l := range b.lines {
		n += len(l)
	}
	return n
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && b.lines[0] == ""
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of a line without its newline.
// Returns an empty string for lines outside the buffer.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLength returns the length of a line in grapheme clusters.
// Returns 0 for lines outside the buffer.
func (b *Buffer) LineLength(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return graphemeCount(b.lines[line])
}

// Contains returns true if the position addresses a character boundary
// within the buffer, including the end of a line.
func (b *Buffer) Contains(p Position) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.byteOffset(p)
	return ok
}

// byteOffset converts a position to a byte offset into Text().
func (b *Buffer) byteOffset(p Position) (int, bool) {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return 0, false
	}
	col, ok := graphemeByteIndex(b.lines[p.Line], p.Offset)
	if !ok {
		return 0, false
	}
	offset := col
	for i := 0; i < p.Line; i++ {
		offset += len(b.lines[i]) + 1
	}
	return offset, true
}

// Read returns the text within r.
// Returns false if either end of the range lies outside the buffer.
func (b *Buffer) Read(r Range) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end, ok := b.byteRange(r)
	if !ok {
		return "", false
	}
	return strings.Join(b.lines, "\n")[start:end], true
}

func (b *Buffer) byteRange(r Range) (int, int, bool) {
	if !r.IsValid() {
		return 0, 0, false
	}
	start, ok := b.byteOffset(r.Start)
	if !ok {
		return 0, 0, false
	}
	end, ok := b.byteOffset(r.End)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

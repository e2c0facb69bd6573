package buffer

import (
	"errors"
	"strings"
)

// Errors returned by buffer edits.
var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrRangeInvalid       = errors.New("invalid range")
)

// Delete removes the text within r and returns it.
func (b *Buffer) Delete(r Range) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !r.IsValid() {
		return "", ErrRangeInvalid
	}
	start, end, ok := b.byteRange(r)
	if !ok {
		return "", ErrPositionOutOfRange
	}

	text := strings.Join(b.lines, "\n")
	removed := text[start:end]
	b.setText(text[:start] + text[end:])
	return removed, nil
}

// InsertAt inserts text at p and returns the position just past the
// inserted text.
func (b *Buffer) InsertAt(p Position, text string) (Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	offset, ok := b.byteOffset(p)
	if !ok {
		return p, ErrPositionOutOfRange
	}
	text = NormalizeLineEndings(text)
	if text == "" {
		return p, nil
	}

	current := strings.Join(b.lines, "\n")
	b.setText(current[:offset] + text + current[offset:])
	return EndPosition(p, text), nil
}

// EndPosition returns the position reached after writing text starting at p.
func EndPosition(p Position, text string) Position {
	newlines := strings.Count(text, "\n")
	if newlines == 0 {
		return Position{Line: p.Line, Offset: p.Offset + graphemeCount(text)}
	}
	tail := text[strings.LastIndexByte(text, '\n')+1:]
	return Position{Line: p.Line + newlines, Offset: graphemeCount(tail)}
}

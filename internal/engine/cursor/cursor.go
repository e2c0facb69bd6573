package cursor

import (
	"fmt"

	"github.com/dshills/cutline/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Cursor is a position handle bound to a buffer's line metrics.
// Moves that would leave the buffer are rejected, so the cursor always
// addresses a valid character boundary.
type Cursor struct {
	pos     Position
	metrics buffer.LineMetrics

	// sticky is the offset vertical moves try to return to.
	sticky int
}

// New creates a cursor at the start of the buffer described by m.
func New(m buffer.LineMetrics) *Cursor {
	return &Cursor{metrics: m}
}

// Position returns the cursor position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Line returns the cursor line.
func (c *Cursor) Line() int {
	return c.pos.Line
}

// Offset returns the cursor offset within its line.
func (c *Cursor) Offset() int {
	return c.pos.Offset
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor%s", c.pos)
}

// MoveTo moves the cursor to p.
// Returns false, leaving the cursor in place, if p is outside the buffer.
func (c *Cursor) MoveTo(p Position) bool {
	if !c.valid(p) {
		return false
	}
	c.pos = p
	c.sticky = p.Offset
	return true
}

// MoveToFirstLine moves the cursor to the first line, keeping its offset
// where the line is long enough.
func (c *Cursor) MoveToFirstLine() {
	c.moveToLine(0)
}

// MoveToLastLine moves the cursor to the last line, keeping its offset
// where the line is long enough.
func (c *Cursor) MoveToLastLine() {
	c.moveToLine(c.metrics.LineCount() - 1)
}

// MoveUp moves the cursor one line up.
func (c *Cursor) MoveUp() bool {
	if c.pos.Line == 0 {
		return false
	}
	c.moveToLine(c.pos.Line - 1)
	return true
}

// MoveDown moves the cursor one line down.
func (c *Cursor) MoveDown() bool {
	if c.pos.Line >= c.metrics.LineCount()-1 {
		return false
	}
	c.moveToLine(c.pos.Line + 1)
	return true
}

// MoveLeft moves the cursor one character left within its line.
func (c *Cursor) MoveLeft() bool {
	if c.pos.Offset == 0 {
		return false
	}
	return c.MoveTo(Position{Line: c.pos.Line, Offset: c.pos.Offset - 1})
}

// MoveRight moves the cursor one character right within its line.
func (c *Cursor) MoveRight() bool {
	return c.MoveTo(Position{Line: c.pos.Line, Offset: c.pos.Offset + 1})
}

// MoveToStartOfLine moves the cursor to offset 0 of its line.
func (c *Cursor) MoveToStartOfLine() {
	c.MoveTo(Position{Line: c.pos.Line})
}

// Clamp pulls the cursor back inside the buffer after an edit shrank it.
func (c *Cursor) Clamp() {
	lines := c.metrics.LineCount()
	if c.pos.Line >= lines {
		c.pos.Line = max(lines-1, 0)
	}
	if length := c.metrics.LineLength(c.pos.Line); c.pos.Offset > length {
		c.pos.Offset = length
	}
}

func (c *Cursor) moveToLine(line int) {
	if line < 0 {
		line = 0
	}
	c.pos = Position{
		Line:   line,
		Offset: min(c.sticky, c.metrics.LineLength(line)),
	}
}

func (c *Cursor) valid(p Position) bool {
	if p.Line < 0 || p.Offset < 0 || p.Line >= c.metrics.LineCount() {
		return false
	}
	return p.Offset <= c.metrics.LineLength(p.Line)
}

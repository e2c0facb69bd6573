package buffer

import "fmt"

// Range is an ordered span between two positions.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from two unordered positions.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if start <= end.
func (r Range) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// Contains returns true if the given position is within the range.
func (r Range) Contains(p Position) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}

// LineRange is an unordered pair of line indices.
type LineRange struct {
	Anchor int
	Cursor int
}

// NewLineRange creates a line range from an anchor line and a cursor line.
func NewLineRange(anchor, cursor int) LineRange {
	return LineRange{Anchor: anchor, Cursor: cursor}
}

// Start returns the lower of the two lines.
func (lr LineRange) Start() int {
	return min(lr.Anchor, lr.Cursor)
}

// End returns the higher of the two lines.
func (lr LineRange) End() int {
	return max(lr.Anchor, lr.Cursor)
}

// LineMetrics exposes the line shape of a buffer.
type LineMetrics interface {
	// LineCount returns the number of lines, including a final empty line
	// after a trailing newline.
	LineCount() int

	// LineLength returns the length of a line in grapheme clusters,
	// excluding its newline.
	LineLength(line int) int
}

// InclusiveRange converts a line range into a character range covering
// every line in it. When the last selected line is followed by another line
// the range ends at the start of that next line, so the newline is included.
// On the final line of the buffer it ends at the end of the line instead,
// since there is no newline to include.
func InclusiveRange(lr LineRange, m LineMetrics) Range {
	start := Position{Line: lr.Start(), Offset: 0}

	next := lr.End() + 1
	var end Position
	if next < m.LineCount() {
		end = Position{Line: next, Offset: 0}
	} else {
		end = Position{Line: lr.End(), Offset: m.LineLength(lr.End())}
	}

	return Range{Start: start, End: end}
}

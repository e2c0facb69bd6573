package mode

import (
	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/search"
)

// Mode is one of the editor's interaction modes.
//
// The set is closed: Normal, Insert, Select, SelectLine and Search are the
// only implementations. Modes are values; a selection mode carries its
// anchor and the search mode carries its query and results.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "normal", "insert").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	sealed()
}

// Standard mode names.
const (
	ModeNormal     = "normal"
	ModeInsert     = "insert"
	ModeSelect     = "select"
	ModeSelectLine = "select-line"
	ModeSearch     = "search"
)

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// Normal is the default command mode.
type Normal struct{}

func (Normal) Name() string             { return ModeNormal }
func (Normal) DisplayName() string      { return "NORMAL" }
func (Normal) CursorStyle() CursorStyle { return CursorBlock }
func (Normal) sealed()                  {}

// Insert is the text entry mode.
type Insert struct{}

func (Insert) Name() string             { return ModeInsert }
func (Insert) DisplayName() string      { return "INSERT" }
func (Insert) CursorStyle() CursorStyle { return CursorBar }
func (Insert) sealed()                  {}

// Select is character-wise selection between Anchor and the cursor.
type Select struct {
	Anchor buffer.Position
}

func (Select) Name() string             { return ModeSelect }
func (Select) DisplayName() string      { return "SELECT" }
func (Select) CursorStyle() CursorStyle { return CursorBlock }
func (Select) sealed()                  {}

// Range returns the span from the anchor to cursor, whichever comes first.
func (m Select) Range(cursor buffer.Position) buffer.Range {
	return buffer.NewRange(m.Anchor, cursor)
}

// SelectLine is line-wise selection between the Anchor line and the
// cursor line.
type SelectLine struct {
	Anchor int
}

func (SelectLine) Name() string             { return ModeSelectLine }
func (SelectLine) DisplayName() string      { return "SELECT LINE" }
func (SelectLine) CursorStyle() CursorStyle { return CursorBlock }
func (SelectLine) sealed()                  {}

// Lines returns the inclusive line span from the anchor to cursorLine.
func (m SelectLine) Lines(cursorLine int) buffer.LineRange {
	return buffer.NewLineRange(m.Anchor, cursorLine)
}

// Search is query entry and match navigation. Results is nil until a
// query has been accepted.
type Search struct {
	Query   string
	Results *search.ResultSet
}

func (Search) Name() string             { return ModeSearch }
func (Search) DisplayName() string      { return "SEARCH" }
func (Search) CursorStyle() CursorStyle { return CursorUnderline }
func (Search) sealed()                  {}

// Selection returns the selected match, if a query has been accepted and
// it matched.
func (m Search) Selection() (buffer.Range, bool) {
	return m.Results.Selection()
}

// IsSelectable reports whether commands that act on a selection can use m.
func IsSelectable(m Mode) bool {
	switch m.(type) {
	case Select, SelectLine, Search:
		return true
	default:
		return false
	}
}

package selection

import (
	"fmt"

	"github.com/dshills/cutline/internal/clipboard"
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/input/mode"
)

// Resolve returns the range the current selection covers.
//
// Select covers the characters between anchor and cursor. SelectLine covers
// whole lines from the anchor line to the cursor line, including the
// newline after the last one when it exists. Search covers the selected
// match. Any other mode fails with ErrNotSelectable.
func Resolve(m mode.Mode, e execctx.EngineInterface) (buffer.Range, error) {
	switch m := m.(type) {
	case mode.Select:
		return m.Range(e.Cursor().Position()), nil
	case mode.SelectLine:
		return buffer.InclusiveRange(m.Lines(e.Cursor().Line()), e), nil
	case mode.Search:
		r, ok := m.Selection()
		if !ok {
			return buffer.Range{}, ErrNoSearchSelection
		}
		return r, nil
	default:
		return buffer.Range{}, &ModeError{Op: "resolve selection", Mode: modeName(m), Err: ErrNotSelectable}
	}
}

// contentFor reads r and tags it for paste: line-wise selections become
// Block content, character-wise ones Inline.
func contentFor(m mode.Mode, e execctx.EngineInterface, r buffer.Range) (clipboard.Content, error) {
	text, ok := e.Read(r)
	if !ok {
		return clipboard.Content{}, fmt.Errorf("%w: %s", ErrRangeUnreadable, r)
	}
	if _, ok := m.(mode.SelectLine); ok {
		return clipboard.NewBlock(text), nil
	}
	return clipboard.NewInline(text), nil
}

func modeName(m mode.Mode) string {
	if m == nil {
		return "unknown"
	}
	return m.Name()
}

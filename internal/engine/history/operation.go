package history

import (
	"fmt"
	"time"

	"github.com/dshills/cutline/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Operation represents a single undoable edit.
// It captures all information needed to undo or redo the edit.
type Operation struct {
	// Edit data
	Start   Position // Where the edit happened (in the document before it)
	OldText string   // Text that was removed (for undo)
	NewText string   // Text that was inserted (for redo)

	// Cursor state for restore
	CursorBefore Position
	CursorAfter  Position

	Timestamp time.Time
}

// NewInsertOperation creates an operation for an insertion.
func NewInsertOperation(at Position, text string) *Operation {
	return &Operation{
		Start:     at,
		NewText:   text,
		Timestamp: time.Now(),
	}
}

// NewDeleteOperation creates an operation for a deletion.
func NewDeleteOperation(r buffer.Range, deletedText string) *Operation {
	return &Operation{
		Start:     r.Start,
		OldText:   deletedText,
		Timestamp: time.Now(),
	}
}

// WithCursors returns the operation with cursor positions recorded.
func (op *Operation) WithCursors(before, after Position) *Operation {
	op.CursorBefore = before
	op.CursorAfter = after
	return op
}

// IsInsert returns true if this operation is a pure insertion.
func (op *Operation) IsInsert() bool {
	return op.OldText == "" && op.NewText != ""
}

// IsDelete returns true if this operation is a pure deletion.
func (op *Operation) IsDelete() bool {
	return op.OldText != "" && op.NewText == ""
}

// Apply performs the operation against buf.
func (op *Operation) Apply(buf *buffer.Buffer) error {
	return op.replace(buf, op.OldText, op.NewText)
}

// Revert undoes the operation against buf.
func (op *Operation) Revert(buf *buffer.Buffer) error {
	return op.replace(buf, op.NewText, op.OldText)
}

func (op *Operation) replace(buf *buffer.Buffer, from, to string) error {
	if from != "" {
		r := buffer.Range{Start: op.Start, End: buffer.EndPosition(op.Start, from)}
		if _, err := buf.Delete(r); err != nil {
			return fmt.Errorf("remove %q at %s: %w", from, op.Start, err)
		}
	}
	if to != "" {
		if _, err := buf.InsertAt(op.Start, to); err != nil {
			return fmt.Errorf("insert %q at %s: %w", to, op.Start, err)
		}
	}
	return nil
}

// String returns a human-readable description of the operation.
func (op *Operation) String() string {
	switch {
	case op.IsInsert():
		return fmt.Sprintf("insert %q at %s", op.NewText, op.Start)
	case op.IsDelete():
		return fmt.Sprintf("delete %q at %s", op.OldText, op.Start)
	default:
		return fmt.Sprintf("replace %q with %q at %s", op.OldText, op.NewText, op.Start)
	}
}

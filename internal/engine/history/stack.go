package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/cutline/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// undoEntry is one undo unit: a single operation or a closed group.
type undoEntry struct {
	name      string
	ops       []*Operation
	timestamp time.Time
}

// History manages undo/redo state for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []*undoEntry
	redoStack []*undoEntry

	// Grouping state. Groups nest; only the outermost EndGroup closes
	// the unit.
	depth     int
	groupName string
	groupOps  []*Operation

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Record adds an already-applied operation to the history.
// Clears the redo stack.
func (h *History) Record(op *Operation) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.depth > 0 {
		h.groupOps = append(h.groupOps, op)
		return
	}

	h.pushLocked(&undoEntry{name: op.String(), ops: []*Operation{op}, timestamp: op.Timestamp})
}

// pushLocked adds an entry without acquiring the lock.
func (h *History) pushLocked(entry *undoEntry) {
	h.undoStack = append(h.undoStack, entry)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// BeginGroup starts collecting operations into a single undo unit.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.depth == 0 {
		h.groupName = name
		h.groupOps = nil
	}
	h.depth++
}

// EndGroup closes the innermost group. When the outermost group closes,
// its operations are pushed as one undo unit; an empty group is dropped.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.depth == 0 {
		return
	}
	h.depth--
	if h.depth > 0 {
		return
	}

	if len(h.groupOps) > 0 {
		h.pushLocked(&undoEntry{name: h.groupName, ops: h.groupOps, timestamp: time.Now()})
	}
	h.groupName = ""
	h.groupOps = nil
}

// IsGrouping returns true while a group is open.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.depth > 0
}

// Undo reverts the last undo unit and returns the cursor position from
// before it.
func (h *History) Undo(buf *buffer.Buffer) (Position, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return Position{}, ErrNothingToUndo
	}
	entry := h.undoStack[len(h.undoStack)-1]

	// A unit is reverted whole or not at all; on failure it stays on the
	// undo stack.
	if err := revertAll(buf, entry.ops); err != nil {
		return Position{}, err
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, entry)
	return entry.ops[0].CursorBefore, nil
}

// Redo reapplies the last undone unit and returns the cursor position from
// after it.
func (h *History) Redo(buf *buffer.Buffer) (Position, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return Position{}, ErrNothingToRedo
	}
	entry := h.redoStack[len(h.redoStack)-1]

	if err := applyAll(buf, entry.ops); err != nil {
		return Position{}, err
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, entry)
	return entry.ops[len(entry.ops)-1].CursorAfter, nil
}

// CanUndo returns true if there is something to undo.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is something to redo.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo units.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// UndoName returns the name of the next undo unit, or "".
func (h *History) UndoName() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return topName(h.undoStack)
}

// RedoName returns the name of the next redo unit, or "".
func (h *History) RedoName() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return topName(h.redoStack)
}

func topName(stack []*undoEntry) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].name
}

package engine

import (
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/engine/cursor"
	"github.com/dshills/cutline/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Position is a line/offset location in the buffer.
	Position = buffer.Position

	// Range is a half-open span between two positions.
	Range = buffer.Range

	// LineRange is an inclusive span of whole lines.
	LineRange = buffer.LineRange
)

// Engine is one open buffer: its text, its cursor and its undo history.
//
// Edits made through the Engine are recorded in history and keep the cursor
// on a valid position. The cursor itself is exposed for movement.
type Engine struct {
	mu sync.Mutex

	id   uuid.UUID
	path string

	buf     *buffer.Buffer
	cursor  *cursor.Cursor
	history *history.History

	// groups holds the scopes opened by StartOperationGroup, innermost last.
	groups []*history.GroupScope

	// version counts changes to the text.
	version uint64

	// Configuration
	maxUndoEntries int
	initContent    string
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := newEngine(opts)
	e.buf = buffer.NewBufferFromString(e.initContent)
	e.init()
	return e
}

// NewFromReader creates an Engine from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	buf, err := buffer.NewBufferFromReader(r)
	if err != nil {
		return nil, err
	}
	e.buf = buf
	e.init()
	return e, nil
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		id:             uuid.New(),
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) init() {
	e.cursor = cursor.New(e.buf)
	e.history = history.NewHistory(e.maxUndoEntries)
}

// ID returns the engine's unique identifier.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Path returns the file path the engine was loaded from, if any.
func (e *Engine) Path() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.path
}

// SetPath sets the file path.
func (e *Engine) SetPath(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.path = path
}

// Version returns a counter that changes whenever the text changes.
func (e *Engine) Version() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.version
}

// Cursor returns the buffer's cursor.
func (e *Engine) Cursor() *cursor.Cursor {
	return e.cursor
}

// Data returns the full buffer content.
func (e *Engine) Data() string {
	return e.buf.Text()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// LineLength returns the length of line in grapheme clusters.
func (e *Engine) LineLength(line int) int {
	return e.buf.LineLength(line)
}

// LineText returns the text of a line without its terminator.
func (e *Engine) LineText(line int) string {
	return e.buf.LineText(line)
}

// Read returns the text within r. It returns false if r is not fully
// inside the buffer.
func (e *Engine) Read(r Range) (string, bool) {
	return e.buf.Read(r)
}

// DeleteRange removes the text within r.
// A cursor after the range shifts back with the text; a cursor inside the
// range lands on its start.
func (e *Engine) DeleteRange(r Range) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	before := e.cursor.Position()
	removed, err := e.buf.Delete(r)
	if err != nil {
		return err
	}
	if removed == "" {
		return nil
	}

	e.version++
	after := shiftAfterDelete(before, r)
	if !e.cursor.MoveTo(after) {
		e.cursor.Clamp()
	}
	e.history.Record(history.NewDeleteOperation(r, removed).WithCursors(before, e.cursor.Position()))
	return nil
}

// shiftAfterDelete maps p to where it ends up once r is removed.
func shiftAfterDelete(p Position, r Range) Position {
	switch {
	case p.Before(r.Start):
		return p
	case p.Before(r.End):
		return r.Start
	case p.Line == r.End.Line:
		return Position{Line: r.Start.Line, Offset: r.Start.Offset + p.Offset - r.End.Offset}
	default:
		return Position{Line: p.Line - (r.End.Line - r.Start.Line), Offset: p.Offset}
	}
}

// Insert inserts text at the cursor. The cursor does not move.
func (e *Engine) Insert(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	at := e.cursor.Position()
	text = buffer.NormalizeLineEndings(text)
	if _, err := e.buf.InsertAt(at, text); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	e.version++
	e.history.Record(history.NewInsertOperation(at, text).WithCursors(at, at))
	return nil
}

// StartOperationGroup opens an undo group. Edits until the matching
// EndOperationGroup are undone and redone as one unit. Groups nest.
func (e *Engine) StartOperationGroup() {
	scope := e.history.GroupScope("edit")
	e.mu.Lock()
	e.groups = append(e.groups, scope)
	e.mu.Unlock()
}

// EndOperationGroup closes the innermost open group.
func (e *Engine) EndOperationGroup() error {
	e.mu.Lock()
	n := len(e.groups)
	if n == 0 {
		e.mu.Unlock()
		return ErrGroupNotOpen
	}
	scope := e.groups[n-1]
	e.groups = e.groups[:n-1]
	e.mu.Unlock()

	scope.End()
	return nil
}

// Transaction runs fn as one undo unit called name. If fn fails, the edits
// it made are reverted, the cursor goes back to where it was and fn's error
// is returned.
func (e *Engine) Transaction(name string, fn func() error) error {
	before := e.cursor.Position()
	scope := e.history.GroupScope(name)

	err := fn()
	if err == nil {
		scope.End()
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if rbErr := scope.Rollback(e.buf); rbErr != nil {
		e.cursor.Clamp()
		return errors.Join(err, rbErr)
	}
	e.version++
	e.restoreCursor(before)
	return err
}

// Undo reverts the last undo unit and restores the cursor from before it.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := e.history.Undo(e.buf)
	if err != nil {
		return err
	}
	e.version++
	e.restoreCursor(pos)
	return nil
}

// Redo reapplies the last undone unit and restores the cursor from after it.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := e.history.Redo(e.buf)
	if err != nil {
		return err
	}
	e.version++
	e.restoreCursor(pos)
	return nil
}

func (e *Engine) restoreCursor(pos Position) {
	if !e.cursor.MoveTo(pos) {
		e.cursor.Clamp()
	}
}

// CanUndo returns true if there is something to undo.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if there is something to redo.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// UndoCount returns the number of undo units.
func (e *Engine) UndoCount() int {
	return e.history.UndoCount()
}

// UndoName names the unit Undo would revert, or returns "".
func (e *Engine) UndoName() string {
	return e.history.UndoName()
}

// RedoName names the unit Redo would reapply, or returns "".
func (e *Engine) RedoName() string {
	return e.history.RedoName()
}

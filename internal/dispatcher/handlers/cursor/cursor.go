// Package cursor provides handlers for cursor movement operations.
package cursor

import (
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/input"
)

// Action names for cursor movements.
const (
	ActionMoveLeft      = "cursor.moveLeft"
	ActionMoveRight     = "cursor.moveRight"
	ActionMoveUp        = "cursor.moveUp"
	ActionMoveDown      = "cursor.moveDown"
	ActionMoveTo        = "cursor.moveTo"
	ActionMoveLineStart = "cursor.moveLineStart"
	ActionMoveLineEnd   = "cursor.moveLineEnd"
	ActionMoveFirstLine = "cursor.moveFirstLine"
	ActionMoveLastLine  = "cursor.moveLastLine"
)

// Handler implements namespace-based cursor movement handling.
type Handler struct{}

// NewHandler creates a new cursor handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the cursor namespace.
func (h *Handler) Namespace() string {
	return "cursor"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown, ActionMoveTo,
		ActionMoveLineStart, ActionMoveLineEnd, ActionMoveFirstLine, ActionMoveLastLine:
		return true
	}
	return false
}

// HandleAction processes a cursor action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}

	c := ctx.Engine.Cursor()
	count := ctx.GetCount()

	switch action.Name {
	case ActionMoveLeft:
		return repeat(count, c.MoveLeft)
	case ActionMoveRight:
		return repeat(count, c.MoveRight)
	case ActionMoveUp:
		return repeat(count, c.MoveUp)
	case ActionMoveDown:
		return repeat(count, c.MoveDown)
	case ActionMoveTo:
		pos := buffer.Position{
			Line:   action.Args.GetInt("line"),
			Offset: action.Args.GetInt("offset"),
		}
		if !c.MoveTo(pos) {
			return handler.Errorf("cannot move cursor to %s: outside buffer", pos)
		}
		return handler.Success()
	case ActionMoveLineStart:
		c.MoveToStartOfLine()
		return handler.Success()
	case ActionMoveLineEnd:
		c.MoveTo(buffer.Position{Line: c.Line(), Offset: ctx.Engine.LineLength(c.Line())})
		return handler.Success()
	case ActionMoveFirstLine:
		c.MoveToFirstLine()
		return handler.Success()
	case ActionMoveLastLine:
		c.MoveToLastLine()
		return handler.Success()
	default:
		return handler.Errorf("unknown cursor action: %s", action.Name)
	}
}

// repeat calls move up to count times and reports a no-op when the cursor
// could not move at all.
func repeat(count int, move func() bool) handler.Result {
	moved := false
	for i := 0; i < count; i++ {
		if !move() {
			break
		}
		moved = true
	}
	if !moved {
		return handler.NoOp()
	}
	return handler.Success()
}

package selection

import (
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/input"
	"github.com/dshills/cutline/internal/input/mode"
)

// Action names for selection operations.
const (
	ActionDelete        = "selection.delete"
	ActionCopy          = "selection.copy"
	ActionCopyAndDelete = "selection.copyAndDelete"
	ActionChange        = "selection.change"
	ActionSelectAll     = "selection.selectAll"
	ActionSortLines     = "selection.sortLines"
)

// Handler handles selection commands.
type Handler struct{}

// NewHandler creates a new selection handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the selection namespace.
func (h *Handler) Namespace() string {
	return "selection"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionDelete, ActionCopy, ActionCopyAndDelete,
		ActionChange, ActionSelectAll, ActionSortLines:
		return true
	}
	return false
}

// HandleAction processes a selection action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	switch action.Name {
	case ActionDelete:
		return handler.Error(Delete(ctx))
	case ActionCopy:
		return result(Copy(ctx), mode.ModeNormal)
	case ActionCopyAndDelete:
		return handler.Error(CopyAndDelete(ctx))
	case ActionChange:
		return result(Change(ctx), mode.ModeInsert)
	case ActionSelectAll:
		return result(SelectAll(ctx), mode.ModeSelectLine)
	case ActionSortLines:
		return result(SortLines(ctx), mode.ModeNormal)
	default:
		return handler.Errorf("unknown selection action: %s", action.Name)
	}
}

func result(err error, modeChange string) handler.Result {
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithModeChange(modeChange)
}

package editor

import (
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/input"
)

// Action names for editor operations.
const (
	ActionInsert = "editor.insert"
	ActionPaste  = "editor.paste" // p
	ActionUndo   = "editor.undo"  // u
	ActionRedo   = "editor.redo"  // Ctrl-R
)

// NewHandler returns the handler for the editor namespace.
func NewHandler() *handler.Table {
	return handler.NewTable("editor").
		On(ActionInsert, withEngine(insert)).
		On(ActionPaste, withEngine(paste)).
		On(ActionUndo, withEngine(undo)).
		On(ActionRedo, withEngine(redo))
}

// withEngine fails fn's action early when no buffer is open.
func withEngine(fn handler.Func) handler.Func {
	return func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		if err := ctx.Validate(); err != nil {
			return handler.Error(err)
		}
		return fn(action, ctx)
	}
}

package editor

import (
	"errors"

	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/engine"
	"github.com/dshills/cutline/internal/input"
)

func undo(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	return repeatHistory(ctx, "undid", ctx.Engine.UndoName, ctx.Engine.Undo)
}

func redo(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	return repeatHistory(ctx, "redid", ctx.Engine.RedoName, ctx.Engine.Redo)
}

// repeatHistory runs step [count] times, stopping early once history runs
// out. Running out before the first step is a no-op, not an error. The
// message names the last unit stepped over.
func repeatHistory(ctx *execctx.ExecutionContext, verb string, next func() string, step func() error) handler.Result {
	var last string
	for i := 0; i < ctx.GetCount(); i++ {
		name := next()
		err := step()
		if errors.Is(err, engine.ErrNothingToUndo) || errors.Is(err, engine.ErrNothingToRedo) {
			if i == 0 {
				return handler.NoOpWithMessage(err.Error())
			}
			break
		}
		if err != nil {
			return handler.Error(err)
		}
		last = name
	}
	return handler.SuccessWithMessage(verb + " " + last)
}

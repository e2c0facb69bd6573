package editor

import (
	"strings"

	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/input"
)

// insert puts the text argument at the cursor [count] times and moves the
// cursor past it.
func insert(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	text := strings.Repeat(action.Args.Text, ctx.GetCount())
	if text == "" {
		return handler.NoOp()
	}

	text = buffer.NormalizeLineEndings(text)
	c := ctx.Engine.Cursor()
	at := c.Position()
	if err := ctx.Engine.Insert(text); err != nil {
		return handler.Error(err)
	}
	c.MoveTo(buffer.EndPosition(at, text))
	return handler.Success()
}

package editor

import (
	"strings"

	"github.com/dshills/cutline/internal/clipboard"
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/input"
)

// paste inserts the clipboard content [count] times. Inline text goes in
// at the cursor; Block text goes in as whole lines below the cursor line.
func paste(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Clipboard == nil {
		return handler.Error(execctx.ErrMissingClipboard)
	}

	content := ctx.Clipboard.Content()
	if content.IsEmpty() {
		return handler.NoOp()
	}

	count := ctx.GetCount()
	if content.Kind == clipboard.Block {
		return handler.Error(pasteBlock(ctx.Engine, content.Text, count))
	}
	return handler.Error(ctx.Engine.Insert(strings.Repeat(content.Text, count)))
}

// pasteBlock inserts text as whole lines below the cursor line. The cursor
// returns to where it was.
func pasteBlock(e execctx.EngineInterface, text string, count int) error {
	c := e.Cursor()
	original := c.Position()
	defer c.MoveTo(original)

	lines := strings.TrimSuffix(text, "\n")
	next := original.Line + 1
	if next < e.LineCount() {
		c.MoveTo(buffer.Position{Line: next})
		return e.Insert(strings.Repeat(lines+"\n", count))
	}

	// Pasting below the final line starts a new one.
	c.MoveTo(buffer.Position{Line: original.Line, Offset: e.LineLength(original.Line)})
	return e.Insert(strings.Repeat("\n"+lines, count))
}

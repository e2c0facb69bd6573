package selection

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/input/mode"
)

// current returns the open buffer and the active mode.
func current(ctx *execctx.ExecutionContext) (execctx.EngineInterface, mode.Mode, error) {
	if err := ctx.ValidateForMode(); err != nil {
		return nil, nil, err
	}
	return ctx.Engine, ctx.Mode(), nil
}

// Delete removes the selection. In Select and SelectLine modes the cursor
// moves to where the removed text began; in Search mode it is left where
// the buffer puts it.
func Delete(ctx *execctx.ExecutionContext) error {
	e, m, err := current(ctx)
	if err != nil {
		return err
	}
	if !mode.IsSelectable(m) {
		return &ModeError{Op: "delete", Mode: modeName(m), Err: ErrDeleteOutsideSelect}
	}

	r, err := Resolve(m, e)
	if err != nil {
		return err
	}
	if err := e.DeleteRange(r); err != nil {
		return fmt.Errorf("delete %s: %w", r, err)
	}

	switch m.(type) {
	case mode.Select, mode.SelectLine:
		e.Cursor().MoveTo(r.Start)
	}
	return nil
}

// copyToClipboard stores the selection in the clipboard. Only Select and
// SelectLine selections can be copied; a search match cannot.
func copyToClipboard(ctx *execctx.ExecutionContext) error {
	e, m, err := current(ctx)
	if err != nil {
		return err
	}
	switch m.(type) {
	case mode.Select, mode.SelectLine:
	default:
		return &ModeError{Op: "copy", Mode: modeName(m), Err: ErrCopyOutsideSelect}
	}
	if ctx.Clipboard == nil {
		return execctx.ErrMissingClipboard
	}

	r, err := Resolve(m, e)
	if err != nil {
		return err
	}
	content, err := contentFor(m, e, r)
	if err != nil {
		return err
	}
	return ctx.Clipboard.SetContent(content)
}

// Copy stores the selection in the clipboard and returns to normal mode.
// A clipboard failure leaves the mode unchanged.
func Copy(ctx *execctx.ExecutionContext) error {
	if err := copyToClipboard(ctx); err != nil {
		return err
	}
	return ctx.ModeManager.SwitchToNormalMode()
}

// CopyAndDelete copies the selection if it can and then deletes it.
// Only the delete can fail the command.
func CopyAndDelete(ctx *execctx.ExecutionContext) error {
	_ = copyToClipboard(ctx)
	return Delete(ctx)
}

// Change cuts the selection, enters insert mode and scrolls the cursor
// into view. Without a view nothing is cut.
func Change(ctx *execctx.ExecutionContext) error {
	if ctx.Renderer == nil {
		return execctx.ErrMissingRenderer
	}
	_ = copyToClipboard(ctx)
	if err := Delete(ctx); err != nil {
		return err
	}
	if err := ctx.ModeManager.SwitchToInsertMode(); err != nil {
		return err
	}
	return ctx.Renderer.ScrollToCursor()
}

// SelectAll selects every line of the buffer in select-line mode.
func SelectAll(ctx *execctx.ExecutionContext) error {
	e, _, err := current(ctx)
	if err != nil {
		return err
	}

	e.Cursor().MoveToFirstLine()
	if err := ctx.ModeManager.SwitchToSelectLineMode(); err != nil {
		return err
	}
	e.Cursor().MoveToLastLine()
	return nil
}

// SortLines sorts the selected lines in byte order and returns to normal
// mode. The result always ends in a single newline. The delete and insert
// are undone together, and a failed insert puts the deleted lines back.
func SortLines(ctx *execctx.ExecutionContext) error {
	e, m, err := current(ctx)
	if err != nil {
		return err
	}
	sl, ok := m.(mode.SelectLine)
	if !ok {
		return &ModeError{Op: "sort lines", Mode: modeName(m), Err: ErrSortOutsideSelectLine}
	}

	r := buffer.InclusiveRange(sl.Lines(e.Cursor().Line()), e)
	text, ok := e.Read(r)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRangeUnreadable, r)
	}

	// Nothing selected: leave the buffer alone.
	if text != "" {
		sorted := sortLines(text)
		err := e.Transaction("sort lines", func() error {
			if err := e.DeleteRange(r); err != nil {
				return err
			}
			e.Cursor().MoveTo(r.Start)
			return e.Insert(sorted)
		})
		if err != nil {
			return fmt.Errorf("sort lines %s: %w", r, err)
		}
	}

	return ctx.ModeManager.SwitchToNormalMode()
}

// sortLines splits text on newline terminators, sorts the lines stably in
// byte order and joins them with a trailing newline.
func sortLines(text string) string {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	slices.SortStableFunc(lines, strings.Compare)
	return strings.Join(lines, "\n") + "\n"
}

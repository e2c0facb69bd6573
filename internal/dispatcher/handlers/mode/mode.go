package mode

import (
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/input"
	"github.com/dshills/cutline/internal/input/mode"
)

// Action names for mode operations.
const (
	ActionNormal     = "mode.normal"     // Escape
	ActionInsert     = "mode.insert"     // i
	ActionSelect     = "mode.select"     // v, anchors a selection at the cursor
	ActionSelectLine = "mode.selectLine" // V, anchors a line selection
	ActionSearch     = "mode.search"     // /
)

// switchFunc picks the mode manager method an action calls.
type switchFunc func(execctx.ModeManagerInterface) func() error

// NewHandler returns the handler for the mode namespace.
func NewHandler() *handler.Table {
	return handler.NewTable("mode").
		On(ActionNormal, switchTo(mode.ModeNormal, func(m execctx.ModeManagerInterface) func() error { return m.SwitchToNormalMode })).
		On(ActionInsert, switchTo(mode.ModeInsert, func(m execctx.ModeManagerInterface) func() error { return m.SwitchToInsertMode })).
		On(ActionSelect, switchTo(mode.ModeSelect, func(m execctx.ModeManagerInterface) func() error { return m.SwitchToSelectMode })).
		On(ActionSelectLine, switchTo(mode.ModeSelectLine, func(m execctx.ModeManagerInterface) func() error { return m.SwitchToSelectLineMode })).
		On(ActionSearch, switchTo(mode.ModeSearch, func(m execctx.ModeManagerInterface) func() error { return m.SwitchToSearchMode }))
}

func switchTo(name string, pick switchFunc) handler.Func {
	return func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		if ctx.ModeManager == nil {
			return handler.Error(execctx.ErrMissingModeManager)
		}
		if err := pick(ctx.ModeManager)(); err != nil {
			return handler.Error(err)
		}
		return handler.Success().WithModeChange(name)
	}
}

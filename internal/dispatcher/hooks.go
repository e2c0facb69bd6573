package dispatcher

import (
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/input"
)

// PreDispatchHook runs before the handler. It may adjust the action or
// context, and returning false cancels the dispatch.
type PreDispatchHook interface {
	PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool
}

// PostDispatchHook runs after the handler and may rewrite the result.
type PostDispatchHook interface {
	PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(action *input.Action, ctx *execctx.ExecutionContext) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	return f(action, ctx)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	f(action, ctx, result)
}

// Logger is the subset of the application logger the dispatcher writes to.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// LoggingHook logs every dispatched action at debug level and every failed
// one at warn level.
type LoggingHook struct {
	logger Logger
}

// NewLoggingHook creates a new logging hook.
func NewLoggingHook(logger Logger) *LoggingHook {
	return &LoggingHook{logger: logger}
}

// PreDispatch logs the action being dispatched.
func (h *LoggingHook) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	h.logger.Debug("dispatching action=%s count=%d mode=%s", action.Name, ctx.GetCount(), ctx.ModeName())
	return true
}

// PostDispatch logs failed actions.
func (h *LoggingHook) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	if result.IsError() {
		h.logger.Warn("action=%s mode=%s failed: %v", action.Name, ctx.ModeName(), result.Error)
	}
}

// countLimit caps the repeat count at limit.
func countLimit(limit int) PreDispatchFunc {
	return func(_ *input.Action, ctx *execctx.ExecutionContext) bool {
		if ctx.Count > limit {
			ctx.Count = limit
		}
		return true
	}
}

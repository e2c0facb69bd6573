package dispatcher_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cutline/internal/dispatcher"
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/dispatcher/handlers/cursor"
	"github.com/dshills/cutline/internal/engine"
	"github.com/dshills/cutline/internal/input"
)

func succeed(msg string) handler.Func {
	return func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.SuccessWithMessage(msg)
	}
}

func TestDispatchUnknown(t *testing.T) {
	d := dispatcher.New()
	d.Register(cursor.NewHandler())

	res := d.Dispatch(input.NewAction("unknown.action"), nil)
	assert.ErrorIs(t, res.Error, dispatcher.ErrUnknownNamespace)

	res = d.Dispatch(input.NewAction("cursor.teleport"), nil)
	assert.ErrorIs(t, res.Error, dispatcher.ErrUnknownAction)
	assert.Contains(t, res.Message, "cursor.teleport")

	res = d.Dispatch(input.NewAction("plain"), nil)
	assert.ErrorIs(t, res.Error, dispatcher.ErrUnknownNamespace)
}

func TestDispatchEmptyAction(t *testing.T) {
	res := dispatcher.New().Dispatch(input.Action{}, nil)
	assert.ErrorIs(t, res.Error, dispatcher.ErrEmptyAction)
}

func TestDispatchNamespaceHandler(t *testing.T) {
	d := dispatcher.New()
	d.Register(cursor.NewHandler())

	e := engine.New(engine.WithContent("amp\neditor"))
	ctx := execctx.New().WithEngine(e)

	res := d.Dispatch(input.NewAction(cursor.ActionMoveDown), ctx)
	require.True(t, res.IsOK(), "dispatch failed: %v", res.Error)
	assert.Equal(t, 1, e.Cursor().Line())
	assert.True(t, d.CanDispatch(cursor.ActionMoveDown))
	assert.False(t, d.CanDispatch("cursor.teleport"))
	assert.Equal(t, []string{"cursor"}, d.Namespaces())
}

func TestRouterReplaceAndUnregister(t *testing.T) {
	r := dispatcher.NewRouter()
	r.Register(handler.NewTable("test").On("test.a", succeed("first")))
	r.Register(handler.NewTable("test").On("test.a", succeed("second")))

	h, err := r.Lookup("test.a")
	require.NoError(t, err)
	assert.Equal(t, "second", h.HandleAction(input.NewAction("test.a"), execctx.New()).Message)

	r.Unregister("test")
	_, err = r.Lookup("test.a")
	assert.ErrorIs(t, err, dispatcher.ErrUnknownNamespace)
	assert.Empty(t, r.Namespaces())
}

func TestDispatchWithCount(t *testing.T) {
	d := dispatcher.New(dispatcher.WithMaxCount(5))

	var seen int
	d.Register(handler.NewTable("test").On("test.count", func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		seen = ctx.GetCount()
		return handler.Success()
	}))

	d.Dispatch(input.NewAction("test.count").WithCount(3), nil)
	assert.Equal(t, 3, seen)

	d.Dispatch(input.NewAction("test.count").WithCount(50), nil)
	assert.Equal(t, 5, seen, "count should be capped")
}

func TestPreDispatchHookCancel(t *testing.T) {
	d := dispatcher.New()
	called := false
	d.Register(handler.NewTable("test").On("test.run", func(input.Action, *execctx.ExecutionContext) handler.Result {
		called = true
		return handler.Success()
	}))
	d.AddPreHook(dispatcher.PreDispatchFunc(func(*input.Action, *execctx.ExecutionContext) bool {
		return false
	}))

	res := d.Dispatch(input.NewAction("test.run"), nil)
	assert.ErrorIs(t, res.Error, dispatcher.ErrCancelled)
	assert.False(t, called)
}

func TestPostDispatchHook(t *testing.T) {
	d := dispatcher.New()
	d.Register(handler.NewTable("test").On("test.run", succeed("done")))

	var got string
	d.AddPostHook(dispatcher.PostDispatchFunc(func(a *input.Action, _ *execctx.ExecutionContext, r *handler.Result) {
		got = a.Name + ":" + r.Message
	}))

	d.Dispatch(input.NewAction("test.run"), nil)
	assert.Equal(t, "test.run:done", got)
}

func TestPanicRecovery(t *testing.T) {
	d := dispatcher.New(dispatcher.WithStats())
	d.Register(handler.NewTable("test").On("test.boom", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("kaboom")
	}))

	res := d.Dispatch(input.NewAction("test.boom"), nil)
	assert.ErrorIs(t, res.Error, dispatcher.ErrPanic)
	assert.Equal(t, uint64(1), d.Stats().Panics())
	assert.Equal(t, uint64(1), d.Stats().Failed())
}

func TestWithoutPanicRecovery(t *testing.T) {
	d := dispatcher.New(dispatcher.WithoutPanicRecovery())
	d.Register(handler.NewTable("test").On("test.boom", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("kaboom")
	}))

	assert.Panics(t, func() { d.Dispatch(input.NewAction("test.boom"), nil) })
}

func TestStats(t *testing.T) {
	assert.Nil(t, dispatcher.New().Stats())

	d := dispatcher.New(dispatcher.WithStats())
	d.Register(handler.NewTable("test").
		On("test.ok", succeed("")).
		On("test.fail", func(input.Action, *execctx.ExecutionContext) handler.Result {
			return handler.Error(errors.New("nope"))
		}))

	d.Dispatch(input.NewAction("test.ok"), nil)
	d.Dispatch(input.NewAction("test.ok"), nil)
	d.Dispatch(input.NewAction("test.fail"), nil)

	s := d.Stats()
	assert.Equal(t, uint64(3), s.Total())
	assert.Equal(t, uint64(1), s.Failed())
	assert.Contains(t, s.String(), "dispatched 3 actions, 1 errors")

	fail, ok := s.Action("test.fail")
	require.True(t, ok)
	assert.Equal(t, uint64(1), fail.Failed)
	assert.Equal(t, handler.StatusError, fail.LastStatus)
	assert.InDelta(t, 100.0, fail.FailureRate(), 0.001)

	_, ok = s.Action("test.never")
	assert.False(t, ok)
	assert.Zero(t, dispatcher.ActionStats{}.FailureRate())
}

type recordingLogger struct {
	debug []string
	warn  []string
}

func (l *recordingLogger) Debug(msg string, args ...any) {
	l.debug = append(l.debug, fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Warn(msg string, args ...any) {
	l.warn = append(l.warn, fmt.Sprintf(msg, args...))
}

func TestLoggingHook(t *testing.T) {
	d := dispatcher.New()
	log := &recordingLogger{}
	d.UseLogger(log)
	d.Register(handler.NewTable("test").On("test.ok", succeed("")))

	d.Dispatch(input.NewAction("test.ok"), nil)
	d.Dispatch(input.NewAction("missing.action"), nil)

	require.Len(t, log.debug, 2)
	assert.Contains(t, log.debug[0], "action=test.ok")
	require.Len(t, log.warn, 1)
	assert.Contains(t, log.warn[0], "action=missing.action")
}

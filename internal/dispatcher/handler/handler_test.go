package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/input"
)

func TestTable(t *testing.T) {
	h := NewTable("selection").
		On("selection.copy", func(input.Action, *execctx.ExecutionContext) Result {
			return SuccessWithMessage("copied")
		}).
		On("selection.delete", func(input.Action, *execctx.ExecutionContext) Result {
			return NoOp()
		})

	assert.Equal(t, "selection", h.Namespace())
	assert.True(t, h.CanHandle("selection.copy"))
	assert.False(t, h.CanHandle("selection.paste"))
	assert.Equal(t, []string{"selection.copy", "selection.delete"}, h.Actions())

	res := h.HandleAction(input.NewAction("selection.copy"), execctx.New())
	assert.True(t, res.IsOK())
	assert.Equal(t, "copied", res.Message)

	res = h.HandleAction(input.NewAction("selection.paste"), execctx.New())
	assert.True(t, res.IsError())
	assert.Contains(t, res.Message, "selection.paste")
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in, ns, name string
	}{
		{"selection.copyAndDelete", "selection", "copyAndDelete"},
		{"cursor.moveDown", "cursor", "moveDown"},
		{"plain", "", "plain"},
		{"a.b.c", "a", "b.c"},
	}
	for _, tt := range tests {
		ns, name := SplitName(tt.in)
		assert.Equal(t, tt.ns, ns, tt.in)
		assert.Equal(t, tt.name, name, tt.in)
	}
}

func TestErrorResult(t *testing.T) {
	assert.True(t, Error(nil).IsOK())

	boom := errors.New("boom")
	res := Error(boom)
	assert.True(t, res.IsError())
	assert.ErrorIs(t, res.Error, boom)
	assert.Equal(t, "boom", res.Message)

	res = Errorf("wrap: %w", boom)
	assert.ErrorIs(t, res.Error, boom)
	assert.Equal(t, "wrap: boom", res.Message)
}

func TestResultBuilders(t *testing.T) {
	res := Success().WithModeChange("normal").WithMessage("done")
	assert.Equal(t, "normal", res.ModeChange)
	assert.Equal(t, "done", res.Message)

	assert.Equal(t, "no-op", NoOp().Status.String())
	assert.Equal(t, "nothing to undo", NoOpWithMessage("nothing to undo").Message)
	assert.Equal(t, "unknown", ResultStatus(9).String())
}

package lua

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"
)

func newTestState(t *testing.T, opts ...StateOption) *State {
	t.Helper()
	state, err := NewState(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = state.Close() })
	return state
}

func TestStateDoString(t *testing.T) {
	state := newTestState(t)

	require.NoError(t, state.DoString(`x = string.upper("ab") .. tostring(math.max(1, 2))`))
	assert.Equal(t, glua.LString("AB2"), state.GetGlobal("x"))
}

func TestStateDoFile(t *testing.T) {
	state := newTestState(t)
	path := filepath.Join(t.TempDir(), "script.lua")
	require.NoError(t, os.WriteFile(path, []byte("answer = 6 * 7\n"), 0o644))

	require.NoError(t, state.DoFile(path))
	assert.Equal(t, glua.LNumber(42), state.GetGlobal("answer"))
}

func TestStateSyntaxError(t *testing.T) {
	state := newTestState(t)

	var scriptErr *ScriptError
	require.ErrorAs(t, state.DoString(`x = `), &scriptErr)
	assert.Equal(t, "syntax", scriptErr.Kind)

	require.ErrorAs(t, state.DoString(`error("boom")`), &scriptErr)
	assert.Equal(t, "runtime", scriptErr.Kind)
	assert.Contains(t, scriptErr.Error(), "boom")

	require.ErrorAs(t, state.DoFile(filepath.Join(t.TempDir(), "missing.lua")), &scriptErr)
	assert.Equal(t, "file", scriptErr.Kind)
}

func TestStateInstructionLimit(t *testing.T) {
	state := newTestState(t, WithInstructionLimit(1000), WithExecutionTimeout(0))

	err := state.DoString(`while true do end`)
	require.ErrorIs(t, err, ErrInstructionLimit)

	// The budget is per execution.
	require.NoError(t, state.DoString(`local n = 0 for i = 1, 10 do n = n + i end`))
}

func TestStateExecutionTimeout(t *testing.T) {
	state := newTestState(t, WithInstructionLimit(0), WithExecutionTimeout(50*time.Millisecond))

	err := state.DoString(`while true do end`)
	require.ErrorIs(t, err, ErrExecutionTimeout)
}

func TestStateClosed(t *testing.T) {
	state, err := NewState()
	require.NoError(t, err)
	require.NoError(t, state.Close())
	require.NoError(t, state.Close())

	assert.True(t, state.IsClosed())
	assert.ErrorIs(t, state.DoString(`x = 1`), ErrStateClosed)
	assert.Equal(t, glua.LNil, state.GetGlobal("x"))
}

func TestStatePrintGoesToOutput(t *testing.T) {
	var out bytes.Buffer
	state := newTestState(t, WithOutput(&out))

	require.NoError(t, state.DoString(`print("sorted", 3, true)`))
	assert.Equal(t, "sorted\t3\ttrue\n", out.String())
}

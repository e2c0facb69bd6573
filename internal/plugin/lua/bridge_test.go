package lua

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"
)

func TestBridgeToGoValue(t *testing.T) {
	state := newTestState(t)
	require.NoError(t, state.DoString(`
		list = {"a", "b"}
		named = {line = 2, ratio = 0.5, ok = true}
		cyclic = {}
		cyclic.self = cyclic
	`))
	b := NewBridge(state.LuaState())

	assert.Equal(t, []any{"a", "b"}, b.ToGoValue(state.GetGlobal("list")))
	assert.Equal(t, map[string]any{"line": int64(2), "ratio": 0.5, "ok": true}, b.ToGoValue(state.GetGlobal("named")))
	assert.Equal(t, map[string]any{"self": nil}, b.ToGoValue(state.GetGlobal("cyclic")))
	assert.Nil(t, b.ToGoValue(glua.LNil))
}

func TestBridgeToLuaValue(t *testing.T) {
	state := newTestState(t)
	b := NewBridge(state.LuaState())

	tbl, ok := b.ToLuaValue(map[string]any{"line": 3, "tags": []string{"x"}}).(*glua.LTable)
	require.True(t, ok)
	assert.Equal(t, glua.LNumber(3), tbl.RawGetString("line"))

	tags, ok := tbl.RawGetString("tags").(*glua.LTable)
	require.True(t, ok)
	assert.Equal(t, glua.LString("x"), tags.RawGetInt(1))

	assert.Equal(t, glua.LNil, b.ToLuaValue(nil))

	ud, ok := b.ToLuaValue(struct{}{}).(*glua.LUserData)
	require.True(t, ok)
	assert.Equal(t, struct{}{}, ud.Value)
}

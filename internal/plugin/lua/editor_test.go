package lua

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cutline/internal/app"
	"github.com/dshills/cutline/internal/config"
)

func newScriptedApp(t *testing.T, content string) (*State, *app.Application, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.Clipboard.System = false
	a, err := app.New(app.Options{Config: &cfg, Logger: app.NullLogger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	a.AddDocument(app.NewDocument("", content))

	var out bytes.Buffer
	state := newTestState(t, WithOutput(&out))
	OpenEditor(state, a)
	return state, a, &out
}

func text(t *testing.T, a *app.Application) string {
	t.Helper()
	s, ok := a.Text()
	require.True(t, ok)
	return s
}

func TestEditorSortAll(t *testing.T) {
	state, a, _ := newScriptedApp(t, "b\nc\na\n")

	require.NoError(t, state.DoString(`
		editor.select_all()
		editor.sort_lines()
	`))

	assert.Equal(t, "a\nb\nc\n", text(t, a))
	assert.Equal(t, "normal", a.ModeName())
}

func TestEditorCutAndPasteLines(t *testing.T) {
	state, a, _ := newScriptedApp(t, "one\ntwo\nthree\n")

	require.NoError(t, state.DoString(`
		editor.move_to(1, 0)
		editor.select_line()
		editor.copy_and_delete()
		editor.normal()
		editor.move_last_line()
		editor.move_up()
		editor.paste()
	`))

	assert.Equal(t, "one\nthree\ntwo\n", text(t, a))
}

func TestEditorSearchAndDelete(t *testing.T) {
	state, a, _ := newScriptedApp(t, "keep TODO keep")

	require.NoError(t, state.DoString(`
		editor.search("TODO ")
		editor.delete()
	`))

	assert.Equal(t, "keep keep", text(t, a))
}

func TestEditorReadState(t *testing.T) {
	state, _, out := newScriptedApp(t, "abc\ndef")

	require.NoError(t, state.DoString(`
		editor.move_to(1, 2)
		local c = editor.cursor()
		print(c.line, c.offset, editor.mode())
		editor.select()
		editor.move_line_start()
		editor.copy()
		print(editor.clipboard())
		print(#editor.text())
	`))

	assert.Equal(t, "1\t2\tnormal\nde\tinline\n7\n", out.String())
}

func TestEditorCounts(t *testing.T) {
	state, a, _ := newScriptedApp(t, "abcdef")

	require.NoError(t, state.DoString(`
		editor.select()
		editor.move_right(3)
		editor.dispatch("selection.delete")
		editor.dispatch("editor.insert", {text = "xy"})
	`))

	assert.Equal(t, "xydef", text(t, a))
}

func TestEditorFailedActionRaises(t *testing.T) {
	state, a, out := newScriptedApp(t, "abc")

	err := state.DoString(`editor.delete()`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selection.delete")
	assert.Equal(t, "abc", text(t, a))

	require.NoError(t, state.DoString(`
		local ok, msg = pcall(editor.sort_lines)
		print(ok)
	`))
	assert.Equal(t, "false\n", out.String())

	assert.Error(t, state.DoString(`editor.move_to(9, 0)`))
	assert.Error(t, state.DoString(`editor.dispatch("nope.nothing")`))
}

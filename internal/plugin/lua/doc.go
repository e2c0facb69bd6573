// Package lua runs editing scripts against the editor.
//
// Scripts run in a gopher-lua state with only the base, table, string and
// math libraries. Loaders that read files or compile code at runtime are
// removed, and print writes to the configured output.
//
// # Limits
//
// Each execution gets a fresh instruction budget and a wall-clock timeout:
//
//	state, err := lua.NewState(
//	    lua.WithInstructionLimit(1_000_000),
//	    lua.WithExecutionTimeout(2 * time.Second),
//	)
//
// A script that exceeds either fails with ErrInstructionLimit or
// ErrExecutionTimeout.
//
// # Editor API
//
// OpenEditor installs a global editor table whose functions dispatch
// actions:
//
//	editor.select_all()
//	editor.sort_lines()
//
//	editor.move_to(3, 0)
//	editor.select()
//	editor.move_down(2)
//	editor.copy_and_delete()
//
//	editor.search("TODO")
//	editor.delete()
//
// Movement and other repeatable functions take an optional count. A failed
// action raises a Lua error naming the action, which pcall can catch.
// editor.dispatch(name, {text = ..., count = ...}) runs any action by name.
// editor.text(), editor.mode(), editor.cursor() and editor.clipboard()
// read state; editor.clipboard() reports what the editor itself last
// copied. Lines and offsets are zero-based.
package lua

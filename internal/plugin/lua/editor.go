package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cutline/internal/clipboard"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	cursorhandler "github.com/dshills/cutline/internal/dispatcher/handlers/cursor"
	editorhandler "github.com/dshills/cutline/internal/dispatcher/handlers/editor"
	modehandler "github.com/dshills/cutline/internal/dispatcher/handlers/mode"
	searchhandler "github.com/dshills/cutline/internal/dispatcher/handlers/search"
	selectionhandler "github.com/dshills/cutline/internal/dispatcher/handlers/selection"
	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/input"
)

// Editor is the editor a script drives.
type Editor interface {
	Dispatch(action input.Action) handler.Result
	Text() (string, bool)
	ModeName() string
	CursorPosition() (buffer.Position, bool)
	ClipboardContent() clipboard.Content
}

// countedActions maps script function names to actions taking an optional
// repeat count as their only argument.
var countedActions = map[string]string{
	"delete":          selectionhandler.ActionDelete,
	"copy":            selectionhandler.ActionCopy,
	"copy_and_delete": selectionhandler.ActionCopyAndDelete,
	"change":          selectionhandler.ActionChange,
	"select_all":      selectionhandler.ActionSelectAll,
	"sort_lines":      selectionhandler.ActionSortLines,

	"move_left":       cursorhandler.ActionMoveLeft,
	"move_right":      cursorhandler.ActionMoveRight,
	"move_up":         cursorhandler.ActionMoveUp,
	"move_down":       cursorhandler.ActionMoveDown,
	"move_line_start": cursorhandler.ActionMoveLineStart,
	"move_line_end":   cursorhandler.ActionMoveLineEnd,
	"move_first_line": cursorhandler.ActionMoveFirstLine,
	"move_last_line":  cursorhandler.ActionMoveLastLine,

	"normal":      modehandler.ActionNormal,
	"insert_mode": modehandler.ActionInsert,
	"select":      modehandler.ActionSelect,
	"select_line": modehandler.ActionSelectLine,
	"search_mode": modehandler.ActionSearch,

	"accept_search":  searchhandler.ActionAccept,
	"next_match":     searchhandler.ActionNext,
	"previous_match": searchhandler.ActionPrevious,

	"paste": editorhandler.ActionPaste,
	"undo":  editorhandler.ActionUndo,
	"redo":  editorhandler.ActionRedo,
}

// editorAPI implements the editor table.
type editorAPI struct {
	ed     Editor
	bridge *Bridge
}

// OpenEditor installs the global editor table. Every function that runs an
// action raises a Lua error when the action fails.
//
// Positions are zero-based, as in the engine.
func OpenEditor(s *State, ed Editor) {
	api := &editorAPI{ed: ed, bridge: NewBridge(s.LuaState())}
	s.RegisterModule("editor", api.funcs())
}

func (api *editorAPI) funcs() map[string]lua.LGFunction {
	funcs := map[string]lua.LGFunction{
		"insert":    api.textAction(editorhandler.ActionInsert),
		"set_query": api.textAction(searchhandler.ActionSetQuery),
		"move_to":   api.moveTo,
		"search":    api.search,
		"dispatch":  api.dispatch,
		"text":      api.text,
		"mode":      api.mode,
		"cursor":    api.cursor,
		"clipboard": api.clipboard,
	}
	for name, action := range countedActions {
		funcs[name] = api.countedAction(action)
	}
	return funcs
}

// run dispatches action and raises a Lua error on failure.
func (api *editorAPI) run(L *lua.LState, action input.Action) {
	action.Source = input.SourceScript
	result := api.ed.Dispatch(action)
	if result.IsError() {
		L.RaiseError("%s: %v", action.Name, result.Error)
	}
}

func (api *editorAPI) countedAction(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		api.run(L, input.NewAction(name).WithCount(L.OptInt(1, 0)))
		return 0
	}
}

func (api *editorAPI) textAction(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		api.run(L, input.NewAction(name).WithText(L.CheckString(1)))
		return 0
	}
}

// moveTo implements editor.move_to(line, offset).
func (api *editorAPI) moveTo(L *lua.LState) int {
	action := input.NewAction(cursorhandler.ActionMoveTo).
		WithExtra("line", L.CheckInt(1)).
		WithExtra("offset", L.OptInt(2, 0))
	api.run(L, action)
	return 0
}

// search implements editor.search(query): enter search mode, set the query
// and accept it.
func (api *editorAPI) search(L *lua.LState) int {
	query := L.CheckString(1)
	api.run(L, input.NewAction(modehandler.ActionSearch))
	api.run(L, input.NewAction(searchhandler.ActionSetQuery).WithText(query))
	api.run(L, input.NewAction(searchhandler.ActionAccept))
	return 0
}

// dispatch implements editor.dispatch(name [, args]). args.text and
// args.count fill the matching action fields; other keys become extras.
func (api *editorAPI) dispatch(L *lua.LState) int {
	action := input.NewAction(L.CheckString(1))

	if args := L.OptTable(2, nil); args != nil {
		fields, ok := api.bridge.ToGoValue(args).(map[string]any)
		if !ok {
			L.ArgError(2, "expected a table of named arguments")
			return 0
		}
		for key, value := range fields {
			switch key {
			case "text":
				action = action.WithText(fmt.Sprint(value))
			case "count":
				if n, ok := value.(int64); ok {
					action = action.WithCount(int(n))
				}
			default:
				action = action.WithExtra(key, value)
			}
		}
	}

	api.run(L, action)
	return 0
}

func (api *editorAPI) text(L *lua.LState) int {
	text, ok := api.ed.Text()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(text))
	return 1
}

func (api *editorAPI) mode(L *lua.LState) int {
	L.Push(lua.LString(api.ed.ModeName()))
	return 1
}

// cursor returns {line = n, offset = n}, or nil without a buffer.
func (api *editorAPI) cursor(L *lua.LState) int {
	pos, ok := api.ed.CursorPosition()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(api.bridge.ToLuaValue(map[string]any{
		"line":   pos.Line,
		"offset": pos.Offset,
	}))
	return 1
}

// clipboard returns the last copied text and its kind.
func (api *editorAPI) clipboard(L *lua.LState) int {
	content := api.ed.ClipboardContent()
	L.Push(lua.LString(content.Text))
	L.Push(lua.LString(content.Kind.String()))
	return 2
}

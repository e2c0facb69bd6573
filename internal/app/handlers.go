package app

import (
	"github.com/dshills/cutline/internal/dispatcher"
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	cursorhandler "github.com/dshills/cutline/internal/dispatcher/handlers/cursor"
	editorhandler "github.com/dshills/cutline/internal/dispatcher/handlers/editor"
	modehandler "github.com/dshills/cutline/internal/dispatcher/handlers/mode"
	searchhandler "github.com/dshills/cutline/internal/dispatcher/handlers/search"
	selectionhandler "github.com/dshills/cutline/internal/dispatcher/handlers/selection"
	"github.com/dshills/cutline/internal/input"
)

// RegisterHandlers registers all standard handlers with the dispatcher.
func RegisterHandlers(d *dispatcher.Dispatcher) {
	d.Register(selectionhandler.NewHandler())
	d.Register(cursorhandler.NewHandler())
	d.Register(modehandler.NewHandler())
	d.Register(searchhandler.NewHandler())
	d.Register(editorhandler.NewHandler())
}

// ExecutionContext builds the context handlers run against. Engine stays
// nil when no document is open.
func (app *Application) ExecutionContext() *execctx.ExecutionContext {
	ctx := execctx.New().
		WithModeManager(modeController{app}).
		WithSearch(searchController{app}).
		WithClipboard(app.clipboard).
		WithRenderer(viewController{app})

	if doc := app.current(); doc != nil {
		ctx.WithEngine(doc.Engine)
	}
	return ctx
}

// Dispatch runs action against the current document. A document whose
// text changed is marked modified, and the cursor is kept in view.
func (app *Application) Dispatch(action input.Action) handler.Result {
	doc := app.current()
	var before uint64
	if doc != nil {
		before = doc.Engine.Version()
	}

	result := app.dispatcher.Dispatch(action, app.ExecutionContext())

	if doc != nil {
		if doc.Engine.Version() != before {
			doc.SetModified(true)
		}
		if result.IsOK() {
			_ = viewController{app}.ScrollToCursor()
		}
	}
	return result
}

// DispatchName dispatches the action with the given name and no arguments.
func (app *Application) DispatchName(name string) handler.Result {
	return app.Dispatch(input.NewAction(name))
}

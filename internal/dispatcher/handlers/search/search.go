// Package search provides handlers for search mode operations.
package search

import (
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/input"
)

// Action names for search operations.
const (
	ActionSetQuery = "search.setQuery" // update the pending query
	ActionAccept   = "search.accept"   // Enter - run the query
	ActionNext     = "search.next"     // n - select the next match
	ActionPrevious = "search.previous" // N - select the previous match
)

// Handler implements namespace-based search handling.
type Handler struct{}

// NewHandler creates a new search handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the search namespace.
func (h *Handler) Namespace() string {
	return "search"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionSetQuery, ActionAccept, ActionNext, ActionPrevious:
		return true
	}
	return false
}

// HandleAction processes a search action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}
	if ctx.Search == nil {
		return handler.Error(execctx.ErrMissingSearch)
	}

	switch action.Name {
	case ActionSetQuery:
		query := action.Args.SearchPattern
		if query == "" {
			query = action.Args.Text
		}
		return handler.Error(ctx.Search.SetQuery(query))
	case ActionAccept:
		return handler.Error(ctx.Search.Accept())
	case ActionNext:
		return h.repeat(ctx, ctx.Search.Next)
	case ActionPrevious:
		return h.repeat(ctx, ctx.Search.Previous)
	default:
		return handler.Errorf("unknown search action: %s", action.Name)
	}
}

func (h *Handler) repeat(ctx *execctx.ExecutionContext, step func() error) handler.Result {
	for i := 0; i < ctx.GetCount(); i++ {
		if err := step(); err != nil {
			return handler.Error(err)
		}
	}
	return handler.Success()
}

// Package handler defines how action handlers plug into the dispatcher.
package handler

import (
	"sort"
	"strings"

	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/input"
)

// Handler handles all actions within a namespace.
// A namespace is the prefix before the first dot (e.g., "selection" in
// "selection.delete").
type Handler interface {
	// Namespace returns the namespace prefix (e.g., "selection", "editor").
	Namespace() string

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// HandleAction executes the action.
	HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result
}

// Func executes a single action.
type Func func(action input.Action, ctx *execctx.ExecutionContext) Result

// Table is a Handler assembled from one Func per action name.
type Table struct {
	namespace string
	actions   map[string]Func
}

// NewTable creates an empty handler for namespace.
func NewTable(namespace string) *Table {
	return &Table{
		namespace: namespace,
		actions:   make(map[string]Func),
	}
}

// On registers fn for the fully qualified action name and returns the
// table for chaining.
func (t *Table) On(actionName string, fn Func) *Table {
	t.actions[actionName] = fn
	return t
}

// Namespace implements Handler.
func (t *Table) Namespace() string {
	return t.namespace
}

// CanHandle implements Handler.
func (t *Table) CanHandle(actionName string) bool {
	_, ok := t.actions[actionName]
	return ok
}

// HandleAction implements Handler.
func (t *Table) HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result {
	fn, ok := t.actions[action.Name]
	if !ok {
		return Errorf("unknown %s action: %s", t.namespace, action.Name)
	}
	return fn(action, ctx)
}

// Actions returns the registered action names, sorted.
func (t *Table) Actions() []string {
	names := make([]string, 0, len(t.actions))
	for name := range t.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SplitName splits "selection.delete" into "selection" and "delete".
// A name without a dot has an empty namespace.
func SplitName(actionName string) (namespace, name string) {
	ns, rest, ok := strings.Cut(actionName, ".")
	if !ok {
		return "", actionName
	}
	return ns, rest
}

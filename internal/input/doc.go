// Package input defines the actions the dispatcher executes.
//
// An Action is a named command ("selection.delete", "cursor.moveDown")
// with a repeat count and optional arguments. Actions are built by the
// command line, by Lua scripts and by tests; they carry their Source so
// hooks and logs can tell them apart.
//
//	act := input.NewAction("cursor.moveTo").
//		WithExtra("line", 4).
//		WithExtra("offset", 0)
//
// The mode sub-package holds the interaction modes (Normal, Insert, Select,
// Select-line and Search) and the manager that switches between them.
package input

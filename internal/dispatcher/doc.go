// Package dispatcher routes named actions to the handlers that carry them
// out against the current buffer.
//
// Every action name has the form "namespace.action". The namespace picks
// the handler ("selection", "cursor", "mode", "search", "editor") and the
// handler decides whether it knows the action. Names that no handler
// claims come back as error results wrapping ErrUnknownNamespace or
// ErrUnknownAction; nothing is silently ignored.
//
// A dispatch runs in this order:
//
//  1. The action's count is copied into the ExecutionContext
//  2. Pre-dispatch hooks run (they can cap the count or cancel)
//  3. The handler runs, with panics turned into ErrPanic results
//  4. Post-dispatch hooks run
//  5. Stats are recorded, if enabled
//
// Usage:
//
//	d := dispatcher.New(dispatcher.WithStats())
//	d.Register(selection.NewHandler())
//	d.UseLogger(logger)
//
//	result := d.Dispatch(input.NewAction(selection.ActionCopy), ctx)
//	if result.IsError() {
//	    // result.Message is ready for the status line
//	}
package dispatcher

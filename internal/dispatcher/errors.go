package dispatcher

import "errors"

// Dispatch failures. Handler errors are passed through unchanged; these
// cover actions that never reached a handler or blew up inside one.
var (
	// ErrEmptyAction indicates an action without a name.
	ErrEmptyAction = errors.New("action has no name")

	// ErrUnknownNamespace indicates no handler owns the action's namespace.
	ErrUnknownNamespace = errors.New("unknown action namespace")

	// ErrUnknownAction indicates the namespace handler does not know the action.
	ErrUnknownAction = errors.New("unknown action")

	// ErrCancelled indicates a pre-dispatch hook rejected the action.
	ErrCancelled = errors.New("action cancelled")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("action handler panicked")
)

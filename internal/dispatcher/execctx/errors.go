package execctx

import "errors"

// Context validation errors.
var (
	// ErrBufferMissing indicates a command needs an open buffer and there is none.
	ErrBufferMissing = errors.New("no buffer open")

	// ErrMissingModeManager indicates mode manager is required but not set.
	ErrMissingModeManager = errors.New("execution context: mode manager is required")

	// ErrMissingClipboard indicates clipboard is required but not set.
	ErrMissingClipboard = errors.New("execution context: clipboard is required")

	// ErrMissingRenderer indicates renderer is required but not set.
	ErrMissingRenderer = errors.New("execution context: renderer is required")

	// ErrMissingSearch indicates search commands are required but not set.
	ErrMissingSearch = errors.New("execution context: search is required")
)

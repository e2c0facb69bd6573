// Package app provides the main application structure and coordination.
package app

import (
	"errors"
	"fmt"

	"github.com/dshills/cutline/internal/dispatcher/execctx"
)

// Application errors.
var (
	// ErrBufferMissing indicates no buffer is open.
	ErrBufferMissing = execctx.ErrBufferMissing

	// ErrDocumentNotFound indicates a document was not found.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrNotSearching indicates a search command outside search mode.
	ErrNotSearching = errors.New("not in search mode")

	// ErrNoQuery indicates a search was accepted with an empty query.
	ErrNoQuery = errors.New("no search query")

	// ErrNoMatches indicates the search query matched nothing.
	ErrNoMatches = errors.New("no matches")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "open", "accept search")
	Target string // Target of the operation (e.g., file path, query)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %q", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

package lua

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its deadline.
	ErrExecutionTimeout = errors.New("script timed out")

	// ErrInstructionLimit is returned when a script uses up its instruction budget.
	ErrInstructionLimit = errors.New("script instruction limit exceeded")
)

// ScriptError is a failure raised by the script itself.
type ScriptError struct {
	Kind    string // "syntax", "file" or "runtime"
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("lua %s error: %s", e.Kind, e.Message)
}

// Unwrap returns the Go error behind the failure, if any.
func (e *ScriptError) Unwrap() error {
	return e.Cause
}

// scriptError converts a gopher-lua API error into a ScriptError and
// passes anything else through.
func scriptError(err error) error {
	var apiErr *lua.ApiError
	if !errors.As(err, &apiErr) {
		return err
	}

	kind := "runtime"
	switch apiErr.Type {
	case lua.ApiErrorSyntax:
		kind = "syntax"
	case lua.ApiErrorFile:
		kind = "file"
	}

	msg := apiErr.Error()
	if apiErr.Object != nil {
		msg = apiErr.Object.String()
	}
	return &ScriptError{Kind: kind, Message: msg, Cause: apiErr.Cause}
}

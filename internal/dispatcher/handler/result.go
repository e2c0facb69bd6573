package handler

import (
	"fmt"
)

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action ran but changed nothing.
	StatusNoOp
	// StatusError indicates the action failed.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is what a handler reports back to the dispatcher. Errors never
// escape as panics or process exits; they travel here and end up as a
// status message.
type Result struct {
	Status ResultStatus

	// Error is set when Status is StatusError.
	Error error

	// Message is shown to the user. For errors it is the error text.
	Message string

	// ModeChange names the mode the action left the editor in, if it
	// switched modes.
	ModeChange string
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// SuccessWithMessage creates a successful result with a message.
func SuccessWithMessage(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

// NoOp creates a result for an action that had nothing to do.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NoOpWithMessage is NoOp with a message explaining why.
func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error creates an error result.
// A nil error yields a successful result, so handlers can return
// Error(op()) directly.
func Error(err error) Result {
	if err == nil {
		return Success()
	}
	return Result{Status: StatusError, Error: err, Message: err.Error()}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Error(fmt.Errorf(format, args...))
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithModeChange returns a copy of the result with a mode change.
func (r Result) WithModeChange(mode string) Result {
	r.ModeChange = mode
	return r
}

package selection

import (
	"errors"
	"fmt"

	"github.com/dshills/cutline/internal/dispatcher/execctx"
)

// Errors returned by selection commands.
var (
	// ErrBufferMissing indicates no buffer is open.
	ErrBufferMissing = execctx.ErrBufferMissing

	// ErrNoSearchSelection indicates search mode has no accepted query or
	// the query matched nothing.
	ErrNoSearchSelection = errors.New("no selection available in search mode without an accepted query/match")

	// ErrNotSelectable indicates the mode has no selection.
	ErrNotSelectable = errors.New("not a selection-capable mode")

	// ErrDeleteOutsideSelect indicates delete was used outside the select modes.
	ErrDeleteOutsideSelect = errors.New("cannot delete selection outside select modes")

	// ErrCopyOutsideSelect indicates copy was used outside the select modes.
	ErrCopyOutsideSelect = errors.New("cannot copy selection outside select modes")

	// ErrSortOutsideSelectLine indicates sort was used outside select-line mode.
	ErrSortOutsideSelectLine = errors.New("cannot sort lines outside select-line mode")

	// ErrRangeUnreadable indicates a computed range the buffer could not read.
	ErrRangeUnreadable = errors.New("selected range could not be read from buffer")
)

// ModeError reports a command used in a mode that does not support it.
type ModeError struct {
	Op   string // Command that failed (e.g., "delete")
	Mode string // Name of the active mode
	Err  error  // One of the mode sentinels
}

// Error implements the error interface.
func (e *ModeError) Error() string {
	return fmt.Sprintf("%s in %s mode: %v", e.Op, e.Mode, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ModeError) Unwrap() error {
	return e.Err
}

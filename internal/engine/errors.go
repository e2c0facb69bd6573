package engine

import (
	"errors"

	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrPositionOutOfRange indicates a position outside the buffer.
	ErrPositionOutOfRange = buffer.ErrPositionOutOfRange

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = buffer.ErrRangeInvalid

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrGroupNotOpen indicates EndOperationGroup without a matching start.
	ErrGroupNotOpen = errors.New("no operation group open")
)

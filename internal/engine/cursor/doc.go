// Package cursor provides the cursor handle used by the editor engine.
//
// A Cursor is bound to a buffer's line metrics and only ever addresses a
// valid character boundary: moves that would leave the buffer are rejected
// and report false. Vertical moves remember the offset the cursor last
// settled on, so moving through a short line and back restores the column.
//
// Selections are not stored here. The anchor of a selection belongs to the
// active interaction mode; the cursor is the moving end.
package cursor

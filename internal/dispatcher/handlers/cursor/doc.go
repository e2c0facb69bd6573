// Package cursor provides handlers for cursor movement operations.
//
// # Movements
//
//   - cursor.moveLeft, cursor.moveRight: by [count] characters within a line
//   - cursor.moveUp, cursor.moveDown: by [count] lines, keeping the column
//   - cursor.moveTo: to the "line" and "offset" action arguments
//   - cursor.moveLineStart, cursor.moveLineEnd
//   - cursor.moveFirstLine, cursor.moveLastLine
//
// Moves that would leave the buffer stop at its edge. A move that cannot
// go anywhere returns a no-op result.
package cursor

// Package buffer provides the line-oriented text storage used by the editor
// engine, together with the position and range types that address it.
//
// Positions are (line, offset) pairs. Offsets count grapheme clusters, so a
// cursor moving right over "é" or a flag emoji moves one position regardless of
// how many bytes or runes the cluster occupies.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("amp\neditor\nbuffer")
//
//	// Read the second line including its newline
//	r := buffer.InclusiveRange(buffer.NewLineRange(1, 1), buf)
//	text, _ := buf.Read(r) // "editor\n"
//
//	// Delete it
//	buf.Delete(r) // "amp\nbuffer"
//
// Range types:
//
//   - Range: ordered [Start, End) span between two Positions
//   - LineRange: unordered pair of line indices, widened to a Range that
//     covers whole lines by InclusiveRange
package buffer

// Package engine provides the editing core for Cutline.
//
// An Engine owns one buffer of text together with its cursor and undo
// history. It is the object editor commands act on: they read ranges,
// delete ranges, insert at the cursor and group edits into single undo
// units.
//
// # Architecture
//
// The engine is built on three sub-packages:
//
//   - buffer: line storage, grapheme-based positions and ranges
//   - cursor: a position handle with validated movement
//   - history: recorded operations with nestable groups
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("b\na\n"))
//
//	e.Transaction("sort lines", func() error {
//		if err := e.DeleteRange(engine.Range{End: engine.Position{Line: 2}}); err != nil {
//			return err
//		}
//		return e.Insert("a\nb\n")
//	})
//
//	e.Undo() // back to "b\na\n" in one step
//
// A failing Transaction reverts its own edits. StartOperationGroup and
// EndOperationGroup bracket a unit by hand.
//
// # Cursor Adjustment
//
// DeleteRange keeps the cursor valid. A cursor after the deleted range moves
// back with the text that follows it; a cursor inside the range lands on the
// range start. Insert leaves the cursor where it is.
package engine

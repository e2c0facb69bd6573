// Package selection implements the commands that act on the current
// selection: delete, copy, copy-and-delete, change, select-all and
// sort-lines.
//
// # Resolving the Selection
//
// What counts as "the selection" depends on the mode:
//
//   - Select: the characters between the anchor and the cursor
//   - SelectLine: whole lines from the anchor line to the cursor line,
//     with the trailing newline of the last line when it has one
//   - Search: the selected match, once a query has been accepted
//
// Normal and Insert mode have no selection; commands used there fail with a
// *ModeError wrapping the sentinel for that command.
//
// # Clipboard
//
// Only Select and SelectLine selections are copied. Copies from SelectLine
// mode are stored as Block content so paste can insert them as whole lines;
// Select copies are Inline. A search match is never copied. Copy reports a
// failing clipboard sync. CopyAndDelete and Change do not: the delete still
// happens.
//
// # Usage
//
//	d.Register(selection.NewHandler())
package selection

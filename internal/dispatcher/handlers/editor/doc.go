// Package editor provides handlers for text editing operations.
//
// # Insert Operations
//
// Text insertion:
//   - editor.insert: Insert the text argument at the cursor, [count] times,
//     leaving the cursor after it
//
// # Paste Operations
//
// Pasting reads the clipboard:
//   - editor.paste (p): Inline content goes in at the cursor. Block content
//     goes in as whole lines below the cursor line. The cursor stays put.
//
// Pasting an empty clipboard is a no-op.
//
// # Undo/Redo Support
//
// Undo and redo walk the engine history:
//   - editor.undo (u)
//   - editor.redo (Ctrl-R)
//
// Edits made by one selection command form a single undo unit, so one undo
// reverts a whole sort or change.
//
// # Usage
//
//	d.Register(editor.NewHandler())
package editor

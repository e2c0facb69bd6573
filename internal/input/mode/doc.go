// Package mode provides the modal editing states for cutline.
//
// The mode set is closed:
//   - Normal: navigation and commands
//   - Insert: text input
//   - Select: character-wise selection from an anchor position
//   - SelectLine: line-wise selection from an anchor line
//   - Search: query entry and match navigation
//
// # Architecture
//
// Modes are plain values. Entering a selection mode captures the cursor as
// the anchor at that moment; the selection itself is always derived from the
// anchor and the live cursor. The Manager holds the current mode and tells
// listeners about transitions.
//
// Code that acts on a mode switches on its concrete type:
//
//	switch m := mgr.Current().(type) {
//	case mode.Select:
//	    r := m.Range(cursor)
//	case mode.SelectLine:
//	    lines := m.Lines(cursor.Line)
//	}
package mode

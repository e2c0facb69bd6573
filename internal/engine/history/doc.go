// Package history provides undo/redo for the editor engine.
//
// Edits are applied to the buffer first and then recorded as Operations.
// Each Operation knows where it happened, what text it removed and what it
// inserted, so it can be reverted and reapplied.
//
// # Groups
//
// Operations recorded between BeginGroup and the matching EndGroup form a
// single undo unit. Groups nest; only the outermost EndGroup closes the unit.
// GroupScope pairs the two calls so early returns still close the group.
// Rollback reverts what the scope recorded when the compound edit fails
// halfway:
//
//	scope := h.GroupScope("sort lines")
//	if err := edit(); err != nil {
//		return errors.Join(err, scope.Rollback(buf))
//	}
//	scope.End()
//
// Undo and Redo apply a unit whole or not at all.
//
// # History Stack
//
//	h := NewHistory(1000) // Max 1000 undo units
//	h.Record(op)
//	cursor, err := h.Undo(buf)
package history

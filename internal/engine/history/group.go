package history

import (
	"github.com/dshills/cutline/internal/engine/buffer"
)

// GroupScope is one open group. It pairs BeginGroup with exactly one
// EndGroup, whichever of End or Rollback runs first.
//
//	scope := h.GroupScope("sort lines")
//	defer scope.End()
type GroupScope struct {
	history *History
	// mark is where this scope's operations start in the open group.
	mark   int
	active bool
}

// GroupScope opens a group and returns its scope.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)

	h.mu.Lock()
	mark := len(h.groupOps)
	h.mu.Unlock()

	return &GroupScope{history: h, mark: mark, active: true}
}

// End closes the scope. Later calls do nothing.
func (g *GroupScope) End() {
	if g.active {
		g.active = false
		g.history.EndGroup()
	}
}

// Rollback reverts the operations recorded since the scope opened, drops
// them from the group and closes the scope. If a revert fails, the
// operations stay applied and recorded.
func (g *GroupScope) Rollback(buf *buffer.Buffer) error {
	if !g.active {
		return nil
	}
	g.active = false
	h := g.history

	h.mu.Lock()
	ops := append([]*Operation(nil), h.groupOps[g.mark:]...)
	h.mu.Unlock()

	err := revertAll(buf, ops)
	if err == nil {
		h.mu.Lock()
		h.groupOps = h.groupOps[:g.mark]
		h.mu.Unlock()
	}
	h.EndGroup()
	return err
}

// revertAll reverts ops newest first. On failure the ops already reverted
// are applied again, so buf ends up either fully reverted or unchanged.
func revertAll(buf *buffer.Buffer, ops []*Operation) error {
	for i := len(ops) - 1; i >= 0; i-- {
		if err := ops[i].Revert(buf); err != nil {
			for _, op := range ops[i+1:] {
				_ = op.Apply(buf)
			}
			return err
		}
	}
	return nil
}

// applyAll applies ops oldest first, undoing the partial work on failure.
func applyAll(buf *buffer.Buffer, ops []*Operation) error {
	for i, op := range ops {
		if err := op.Apply(buf); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = ops[j].Revert(buf)
			}
			return err
		}
	}
	return nil
}

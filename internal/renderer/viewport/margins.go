package viewport

// Margins is the room kept between the cursor and the viewport edges:
// Lines above and below it, Columns to its left and right.
type Margins struct {
	Lines   int
	Columns int
}

// ScrollMargins derives margins from a line count. Columns get twice the
// room, since a cell is about half as wide as it is tall.
func ScrollMargins(lines int) Margins {
	lines = max(lines, 0)
	return Margins{Lines: lines, Columns: 2 * lines}
}

// DefaultMargins returns the margins a new viewport starts with.
func DefaultMargins() Margins {
	return ScrollMargins(5)
}

// A margin never takes more than a third of the viewport, so the cursor
// always has a middle band to sit in.
const maxMarginRatio = 3

// EffectiveMargins returns the margins clamped to the current size.
func (v *Viewport) EffectiveMargins() Margins {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.effectiveMargins()
}

func (v *Viewport) effectiveMargins() Margins {
	return Margins{
		Lines:   min(v.margins.Lines, v.height/maxMarginRatio),
		Columns: min(v.margins.Columns, v.width/maxMarginRatio),
	}
}

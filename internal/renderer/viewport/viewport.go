// Package viewport tracks which part of a buffer is visible and scrolls it
// to keep the cursor in view.
package viewport

import (
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	mu sync.RWMutex

	// Position in buffer (first visible line, first visible display column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int

	margins Margins
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return &Viewport{
		width:   width,
		height:  height,
		margins: DefaultMargins(),
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine
}

// BottomLine returns the last visible line.
func (v *Viewport) BottomLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine + v.height - 1
}

// LeftColumn returns the first visible display column.
func (v *Viewport) LeftColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftColumn
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// SetMargins sets the scroll margins. Negative values count as zero.
func (v *Viewport) SetMargins(m Margins) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.margins = Margins{Lines: max(m.Lines, 0), Columns: max(m.Columns, 0)}
}

// IsLineVisible returns true if line is on screen.
func (v *Viewport) IsLineVisible(line int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return line >= v.topLine && line < v.topLine+v.height
}

// ScrollTo makes line the first visible line.
func (v *Viewport) ScrollTo(line int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topLine = max(line, 0)
}

// ScrollToReveal scrolls minimally to reveal the given line and display
// column, keeping the effective margins around it.
// Returns true if scrolling occurred.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	m := v.effectiveMargins()
	targetTop := v.topLine
	targetLeft := v.leftColumn

	// Vertical scroll
	if line < v.topLine+m.Lines {
		targetTop = max(line-m.Lines, 0)
	} else if line > v.topLine+v.height-1-m.Lines {
		targetTop = line - v.height + 1 + m.Lines
	}

	// Horizontal scroll
	screenCol := col - v.leftColumn
	if screenCol < m.Columns {
		targetLeft = max(col-m.Columns, 0)
	} else if screenCol > v.width-1-m.Columns {
		targetLeft = col - v.width + 1 + m.Columns
	}

	if targetTop == v.topLine && targetLeft == v.leftColumn {
		return false
	}
	v.topLine = targetTop
	v.leftColumn = targetLeft
	return true
}

// ScrollToCursor reveals the cursor at the given grapheme offset of a line
// whose text is lineText. Wide characters count as two columns.
func (v *Viewport) ScrollToCursor(line int, lineText string, offset int) bool {
	return v.ScrollToReveal(line, DisplayColumn(lineText, offset))
}

// DisplayColumn returns the screen column of the grapheme at offset in text.
func DisplayColumn(text string, offset int) int {
	col := 0
	g := uniseg.NewGraphemes(text)
	for i := 0; i < offset && g.Next(); i++ {
		col += runewidth.StringWidth(g.Str())
	}
	return col
}

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cutline/internal/engine/buffer"
)

func rng(sl, so, el, eo int) buffer.Range {
	return buffer.Range{
		Start: buffer.Position{Line: sl, Offset: so},
		End:   buffer.Position{Line: el, Offset: eo},
	}
}

func TestFind(t *testing.T) {
	rs := Find("ed", "amp\neditor\nbuffer", false)

	require.Equal(t, 1, rs.Len())
	sel, ok := rs.Selection()
	require.True(t, ok)
	assert.Equal(t, rng(1, 0, 1, 2), sel)
	assert.Equal(t, "ed", rs.Query())
}

func TestFindNonOverlapping(t *testing.T) {
	rs := Find("aa", "aaaa\naaa", false)
	assert.Equal(t, []buffer.Range{
		rng(0, 0, 0, 2),
		rng(0, 2, 0, 4),
		rng(1, 0, 1, 2),
	}, rs.matches)
}

func TestFindLiteral(t *testing.T) {
	rs := Find("a.c", "abc a.c", false)
	assert.Equal(t, []buffer.Range{rng(0, 4, 0, 7)}, rs.matches)
}

func TestFindCaseInsensitive(t *testing.T) {
	assert.Equal(t, 0, Find("AMP", "amp", false).Len())
	assert.Equal(t, 1, Find("AMP", "amp", true).Len())
}

func TestFindAcrossLines(t *testing.T) {
	rs := Find("p\ne", "amp\neditor", false)
	assert.Equal(t, []buffer.Range{rng(0, 2, 1, 1)}, rs.matches)
}

func TestFindGraphemeOffsets(t *testing.T) {
	rs := Find("dit", "\u00e9dit", false)
	assert.Equal(t, []buffer.Range{rng(0, 1, 0, 4)}, rs.matches)
}

func TestFindDropsSplitGrapheme(t *testing.T) {
	// The match would end between "e" and its combining accent.
	rs := Find("e", "e\u0301", false)
	assert.Equal(t, 0, rs.Len())
}

func TestFindEmpty(t *testing.T) {
	rs := Find("", "amp", false)
	_, ok := rs.Selection()
	assert.False(t, ok)
	assert.Equal(t, -1, rs.Index())

	rs = Find("zzz", "amp", false)
	_, ok = rs.Selection()
	assert.False(t, ok)

	// Navigation on an empty set is a no-op.
	rs.SelectNext()
	rs.SelectPrevious()
	rs.SelectClosest(buffer.Position{})
	assert.Equal(t, -1, rs.Index())
}

func TestNilResultSetHasNoSelection(t *testing.T) {
	var rs *ResultSet
	_, ok := rs.Selection()
	assert.False(t, ok)
	assert.Equal(t, -1, rs.Index())
}

func TestSelectNextPreviousWrap(t *testing.T) {
	rs := Find("a", "a a a", false)
	require.Equal(t, 3, rs.Len())

	rs.SelectPrevious()
	assert.Equal(t, 2, rs.Index())
	rs.SelectNext()
	assert.Equal(t, 0, rs.Index())
	rs.SelectNext()
	assert.Equal(t, 1, rs.Index())
}

func TestSelectClosest(t *testing.T) {
	rs := Find("b", "abc\nabc\nabc", false)

	rs.SelectClosest(buffer.Position{Line: 1, Offset: 1})
	assert.Equal(t, 1, rs.Index())

	rs.SelectClosest(buffer.Position{Line: 1, Offset: 2})
	assert.Equal(t, 2, rs.Index())

	rs.SelectClosest(buffer.Position{Line: 2, Offset: 2})
	assert.Equal(t, 0, rs.Index())
}

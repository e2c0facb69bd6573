// Package search finds literal matches of a query in buffer text and tracks
// which match is selected.
package search

import (
	"regexp"

	"github.com/rivo/uniseg"

	"github.com/dshills/cutline/internal/engine/buffer"
)

// ResultSet holds the matches for one query and the selected match.
type ResultSet struct {
	query    string
	matches  []buffer.Range
	selected int
}

// Find returns every non-overlapping literal match of query in text.
// The first match, if any, is selected. Matches whose edges fall inside a
// grapheme cluster are dropped.
func Find(query, text string, caseInsensitive bool) *ResultSet {
	rs := &ResultSet{query: query}
	if query == "" {
		return rs
	}

	pattern := regexp.QuoteMeta(query)
	if caseInsensitive {
		pattern = "(?i)" + pattern
	}
	spans := regexp.MustCompile(pattern).FindAllStringIndex(text, -1)
	rs.matches = toRanges(text, spans)
	return rs
}

// toRanges converts sorted byte spans into grapheme positions in a single
// pass over text.
func toRanges(text string, spans [][]int) []buffer.Range {
	ranges := make([]buffer.Range, 0, len(spans))

	g := uniseg.NewGraphemes(text)
	var pos buffer.Position
	at := 0

	advance := func(target int) (buffer.Position, bool) {
		for at < target && g.Next() {
			start, end := g.Positions()
			if text[start:end] == "\n" {
				pos = buffer.Position{Line: pos.Line + 1}
			} else {
				pos.Offset++
			}
			at = end
		}
		return pos, at == target
	}

	for _, span := range spans {
		start, okStart := advance(span[0])
		end, okEnd := advance(span[1])
		if okStart && okEnd {
			ranges = append(ranges, buffer.Range{Start: start, End: end})
		}
	}
	return ranges
}

// Query returns the query the set was built from.
func (rs *ResultSet) Query() string {
	return rs.query
}

// Len returns the number of matches. A nil set has none.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.matches)
}

// Selection returns the selected match. It returns false when there are no
// matches.
func (rs *ResultSet) Selection() (buffer.Range, bool) {
	if rs == nil || len(rs.matches) == 0 {
		return buffer.Range{}, false
	}
	return rs.matches[rs.selected], true
}

// Index returns the index of the selected match, or -1.
func (rs *ResultSet) Index() int {
	if rs == nil || len(rs.matches) == 0 {
		return -1
	}
	return rs.selected
}

// SelectNext selects the following match, wrapping to the first.
func (rs *ResultSet) SelectNext() {
	if len(rs.matches) == 0 {
		return
	}
	rs.selected = (rs.selected + 1) % len(rs.matches)
}

// SelectPrevious selects the preceding match, wrapping to the last.
func (rs *ResultSet) SelectPrevious() {
	if len(rs.matches) == 0 {
		return
	}
	rs.selected = (rs.selected + len(rs.matches) - 1) % len(rs.matches)
}

// SelectClosest selects the first match starting at or after cursor,
// or the first match when none follows it.
func (rs *ResultSet) SelectClosest(cursor buffer.Position) {
	rs.selected = 0
	for i, m := range rs.matches {
		if !m.Start.Before(cursor) {
			rs.selected = i
			return
		}
	}
}

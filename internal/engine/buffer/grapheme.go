package buffer

import "github.com/rivo/uniseg"

// graphemeCount returns the number of grapheme clusters in s.
func graphemeCount(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(s)
}

// graphemeByteIndex returns the byte index at which the n-th grapheme
// cluster of s begins. n == graphemeCount(s) yields len(s).
// Returns false if n is negative or past the end of s.
func graphemeByteIndex(s string, n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	if n == 0 {
		return 0, true
	}

	g := uniseg.NewGraphemes(s)
	idx := 0
	for g.Next() {
		if idx == n {
			start, _ := g.Positions()
			return start, true
		}
		idx++
	}
	if idx == n {
		return len(s), true
	}
	return 0, false
}

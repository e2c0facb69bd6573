package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 1, b.LineCount())
}

func TestNewBufferFromStringMultiline(t *testing.T) {
	b := NewBufferFromString("line1\nline2\nline3")

	require.Equal(t, 3, b.LineCount())
	assert.Equal(t, "line1", b.LineText(0))
	assert.Equal(t, "line2", b.LineText(1))
	assert.Equal(t, "line3", b.LineText(2))
	assert.Equal(t, "", b.LineText(3))
}

func TestNewBufferFromStringTrailingNewline(t *testing.T) {
	b := NewBufferFromString("a\nb\n")

	assert.Equal(t, 3, b.LineCount())
	assert.Equal(t, 0, b.LineLength(2))
	assert.Equal(t, "a\nb\n", b.Text())
}

func TestNewBufferNormalizesLineEndings(t *testing.T) {
	b := NewBufferFromString("a\r\nb\rc")
	assert.Equal(t, "a\nb\nc", b.Text())
}

func TestNewBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("x\r\ny"))
	require.NoError(t, err)
	assert.Equal(t, "x\ny", b.Text())
}

func TestLineLengthCountsGraphemes(t *testing.T) {
	// "e" plus a combining acute, and a two-rune regional-indicator flag.
	b := NewBufferFromString("café \U0001F1EB\U0001F1F7")
	assert.Equal(t, 6, b.LineLength(0))
}

func TestByteOffset(t *testing.T) {
	b := NewBufferFromString("amp\nédit\nbuffer")

	tests := []struct {
		pos    Position
		offset int
	}{
		{Position{0, 0}, 0},
		{Position{0, 3}, 3},
		{Position{1, 0}, 4},
		{Position{1, 1}, 6}, // é is two bytes
		{Position{1, 4}, 9},
		{Position{2, 6}, 16},
	}

	for _, tc := range tests {
		got, ok := b.byteOffset(tc.pos)
		require.True(t, ok, "byteOffset(%s)", tc.pos)
		assert.Equal(t, tc.offset, got, "byteOffset(%s)", tc.pos)
	}
}

func TestContains(t *testing.T) {
	b := NewBufferFromString("amp\neditor")

	assert.True(t, b.Contains(Position{0, 3}))
	assert.True(t, b.Contains(Position{1, 6}))
	assert.False(t, b.Contains(Position{0, 4}))
	assert.False(t, b.Contains(Position{2, 0}))
	assert.False(t, b.Contains(Position{-1, 0}))
}

func TestRead(t *testing.T) {
	b := NewBufferFromString("amp\neditor\nbuffer")

	text, ok := b.Read(NewRange(Position{1, 0}, Position{2, 0}))
	require.True(t, ok)
	assert.Equal(t, "editor\n", text)

	text, ok = b.Read(NewRange(Position{0, 1}, Position{0, 1}))
	require.True(t, ok)
	assert.Equal(t, "", text)

	_, ok = b.Read(NewRange(Position{0, 0}, Position{5, 0}))
	assert.False(t, ok)

	_, ok = b.Read(Range{Start: Position{1, 0}, End: Position{0, 0}})
	assert.False(t, ok, "reversed ranges are unreadable")
}

func TestDelete(t *testing.T) {
	b := NewBufferFromString("amp\neditor\nbuffer")

	removed, err := b.Delete(NewRange(Position{1, 0}, Position{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, "e", removed)
	assert.Equal(t, "amp\nditor\nbuffer", b.Text())

	removed, err = b.Delete(NewRange(Position{0, 3}, Position{1, 5}))
	require.NoError(t, err)
	assert.Equal(t, "\nditor", removed)
	assert.Equal(t, "amp\nbuffer", b.Text())
}

func TestDeleteOutOfRange(t *testing.T) {
	b := NewBufferFromString("amp")

	_, err := b.Delete(NewRange(Position{0, 0}, Position{0, 9}))
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	assert.Equal(t, "amp", b.Text())

	_, err = b.Delete(Range{Start: Position{0, 2}, End: Position{0, 1}})
	assert.ErrorIs(t, err, ErrRangeInvalid)
}

func TestInsertAt(t *testing.T) {
	b := NewBufferFromString("amp\nbuffer")

	end, err := b.InsertAt(Position{1, 0}, "editor\n")
	require.NoError(t, err)
	assert.Equal(t, Position{2, 0}, end)
	assert.Equal(t, "amp\neditor\nbuffer", b.Text())

	end, err = b.InsertAt(Position{0, 3}, "!")
	require.NoError(t, err)
	assert.Equal(t, Position{0, 4}, end)
	assert.Equal(t, "amp!\neditor\nbuffer", b.Text())

	_, err = b.InsertAt(Position{9, 0}, "x")
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
}

func TestNewRangeOrdersPositions(t *testing.T) {
	a := Position{Line: 2, Offset: 1}
	c := Position{Line: 1, Offset: 4}

	r := NewRange(a, c)
	assert.Equal(t, c, r.Start)
	assert.Equal(t, a, r.End)
	assert.Equal(t, r, NewRange(c, a))
}

func TestPositionCompare(t *testing.T) {
	assert.Equal(t, -1, Position{0, 5}.Compare(Position{1, 0}))
	assert.Equal(t, 1, Position{1, 2}.Compare(Position{1, 1}))
	assert.Equal(t, 0, Position{3, 3}.Compare(Position{3, 3}))
}

func TestInclusiveRange(t *testing.T) {
	b := NewBufferFromString("amp\neditor\nbuffer")

	tests := []struct {
		name     string
		lr       LineRange
		expected Range
		text     string
	}{
		{"middle line", NewLineRange(1, 1), Range{Position{1, 0}, Position{2, 0}}, "editor\n"},
		{"last line", NewLineRange(2, 2), Range{Position{2, 0}, Position{2, 6}}, "buffer"},
		{"reversed", NewLineRange(1, 0), Range{Position{0, 0}, Position{2, 0}}, "amp\neditor\n"},
		{"whole buffer", NewLineRange(2, 0), Range{Position{0, 0}, Position{2, 6}}, "amp\neditor\nbuffer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := InclusiveRange(tc.lr, b)
			assert.Equal(t, tc.expected, r)

			text, ok := b.Read(r)
			require.True(t, ok)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestInclusiveRangeTrailingNewline(t *testing.T) {
	b := NewBufferFromString("b\na\n")

	r := InclusiveRange(NewLineRange(0, 1), b)
	assert.Equal(t, Range{Position{0, 0}, Position{2, 0}}, r)
}

func TestInclusiveRangeNeverExceedsBuffer(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,6}`), 1, 8).Draw(rt, "lines")
		b := NewBufferFromString(strings.Join(lines, "\n"))

		anchor := rapid.IntRange(0, b.LineCount()-1).Draw(rt, "anchor")
		cursor := rapid.IntRange(0, b.LineCount()-1).Draw(rt, "cursor")

		r := InclusiveRange(NewLineRange(anchor, cursor), b)
		text, ok := b.Read(r)
		if !ok {
			rt.Fatalf("range %s is not readable", r)
		}

		want := strings.Join(lines[min(anchor, cursor):max(anchor, cursor)+1], "\n")
		if max(anchor, cursor) < b.LineCount()-1 {
			want += "\n"
		}
		if text != want {
			rt.Fatalf("read %q, want %q", text, want)
		}
	})
}

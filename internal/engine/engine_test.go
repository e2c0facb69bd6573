package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	e := New(WithContent("amp\neditor"), WithPath("/tmp/amp.txt"))

	assert.Equal(t, "amp\neditor", e.Data())
	assert.Equal(t, 2, e.LineCount())
	assert.Equal(t, "/tmp/amp.txt", e.Path())
	assert.Equal(t, Position{}, e.Cursor().Position())
	assert.NotEqual(t, New().ID(), e.ID())
}

func TestNewFromReader(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("a\r\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", e.Data())
}

func TestDeleteRangeAdjustsCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor Position
		r      Range
		want   Position
	}{
		{"before range", Position{Line: 0, Offset: 1}, Range{Start: Position{Line: 1}, End: Position{Line: 2}}, Position{Line: 0, Offset: 1}},
		{"inside range", Position{Line: 1, Offset: 3}, Range{Start: Position{Line: 1}, End: Position{Line: 2}}, Position{Line: 1}},
		{"on range end line", Position{Line: 1, Offset: 4}, Range{Start: Position{Line: 0, Offset: 1}, End: Position{Line: 1, Offset: 2}}, Position{Line: 0, Offset: 3}},
		{"later line", Position{Line: 2, Offset: 4}, Range{Start: Position{Line: 0, Offset: 1}, End: Position{Line: 1, Offset: 2}}, Position{Line: 1, Offset: 4}},
		{"at range start", Position{Line: 1}, Range{Start: Position{Line: 1}, End: Position{Line: 1, Offset: 2}}, Position{Line: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(WithContent("amp\neditor\nbuffer"))
			require.True(t, e.Cursor().MoveTo(tc.cursor))

			require.NoError(t, e.DeleteRange(tc.r))
			assert.Equal(t, tc.want, e.Cursor().Position())
		})
	}
}

func TestDeleteRangeOutOfBounds(t *testing.T) {
	e := New(WithContent("amp"))
	err := e.DeleteRange(Range{End: Position{Line: 4}})
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	assert.Equal(t, "amp", e.Data())
	assert.False(t, e.CanUndo())
}

func TestInsertDoesNotMoveCursor(t *testing.T) {
	e := New(WithContent("amp"))
	e.Cursor().MoveTo(Position{Offset: 1})

	require.NoError(t, e.Insert("xy"))
	assert.Equal(t, "axymp", e.Data())
	assert.Equal(t, Position{Offset: 1}, e.Cursor().Position())
}

func TestUndoRedoRestoresCursor(t *testing.T) {
	e := New(WithContent("amp\neditor\nbuffer"))
	e.Cursor().MoveTo(Position{Line: 2, Offset: 3})

	require.NoError(t, e.DeleteRange(Range{Start: Position{Line: 1}, End: Position{Line: 2}}))
	require.Equal(t, "amp\nbuffer", e.Data())
	require.Equal(t, Position{Line: 1, Offset: 3}, e.Cursor().Position())

	require.NoError(t, e.Undo())
	assert.Equal(t, "amp\neditor\nbuffer", e.Data())
	assert.Equal(t, Position{Line: 2, Offset: 3}, e.Cursor().Position())

	require.NoError(t, e.Redo())
	assert.Equal(t, "amp\nbuffer", e.Data())
	assert.Equal(t, Position{Line: 1, Offset: 3}, e.Cursor().Position())
}

func TestOperationGroupIsSingleUndo(t *testing.T) {
	e := New(WithContent("b\na\n"))

	e.StartOperationGroup()
	require.NoError(t, e.DeleteRange(Range{End: Position{Line: 2}}))
	require.NoError(t, e.Insert("a\nb\n"))
	require.NoError(t, e.EndOperationGroup())

	require.Equal(t, "a\nb\n", e.Data())
	assert.Equal(t, 1, e.UndoCount())

	require.NoError(t, e.Undo())
	assert.Equal(t, "b\na\n", e.Data())
	assert.ErrorIs(t, e.Undo(), ErrNothingToUndo)
}

func TestNestedOperationGroups(t *testing.T) {
	e := New()

	e.StartOperationGroup()
	e.StartOperationGroup()
	require.NoError(t, e.Insert("a"))
	require.NoError(t, e.EndOperationGroup())
	require.NoError(t, e.Insert("b"))
	require.NoError(t, e.EndOperationGroup())

	assert.Equal(t, 1, e.UndoCount())
	assert.ErrorIs(t, e.EndOperationGroup(), ErrGroupNotOpen)
}

func TestTransaction(t *testing.T) {
	e := New(WithContent("b\na\n"))

	err := e.Transaction("sort lines", func() error {
		if err := e.DeleteRange(Range{End: Position{Line: 2}}); err != nil {
			return err
		}
		return e.Insert("a\nb\n")
	})
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", e.Data())
	assert.Equal(t, 1, e.UndoCount())
	assert.Equal(t, "sort lines", e.UndoName())

	require.NoError(t, e.Undo())
	assert.Equal(t, "b\na\n", e.Data())
	assert.Equal(t, "sort lines", e.RedoName())
}

func TestTransactionRollsBackOnError(t *testing.T) {
	e := New(WithContent("b\na\n"))
	require.True(t, e.Cursor().MoveTo(Position{Line: 1, Offset: 1}))
	boom := errors.New("boom")

	err := e.Transaction("sort lines", func() error {
		if err := e.DeleteRange(Range{End: Position{Line: 2}}); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "b\na\n", e.Data())
	assert.Equal(t, Position{Line: 1, Offset: 1}, e.Cursor().Position())
	assert.False(t, e.CanUndo())
	assert.ErrorIs(t, e.EndOperationGroup(), ErrGroupNotOpen)
}

func TestVersionTracksTextChanges(t *testing.T) {
	e := New(WithContent("amp"))
	v := e.Version()

	require.NoError(t, e.Insert(""))
	assert.Equal(t, v, e.Version(), "empty insert is not a change")

	require.NoError(t, e.Insert("x"))
	assert.Greater(t, e.Version(), v)

	v = e.Version()
	require.NoError(t, e.Undo())
	assert.Greater(t, e.Version(), v)
}

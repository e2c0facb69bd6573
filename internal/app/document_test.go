package app

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentNames(t *testing.T) {
	scratch := NewDocument("", "")
	assert.Equal(t, "Untitled", scratch.Name)
	assert.True(t, scratch.IsScratch())
	assert.ErrorIs(t, scratch.Save(), ErrDocumentNotFound)

	named := NewDocument(filepath.Join("dir", "main.go"), "package main\n")
	assert.Equal(t, "main.go", named.Name)
	assert.Equal(t, named.Engine.ID(), named.ID())
}

func TestWorkspaceOrderAndCurrent(t *testing.T) {
	ws := NewWorkspace()
	assert.Nil(t, ws.Current())
	assert.Nil(t, ws.Next())

	a, b, c := NewDocument("", "a"), NewDocument("", "b"), NewDocument("", "c")
	ws.Add(a)
	ws.Add(b)
	ws.Add(c)
	assert.Same(t, c, ws.Current())
	assert.Equal(t, []*Document{a, b, c}, ws.All())

	assert.Same(t, a, ws.Next())
	assert.Same(t, b, ws.Next())

	require.NoError(t, ws.Select(c.ID()))
	assert.Same(t, c, ws.Current())
	assert.ErrorIs(t, ws.Select(uuid.New()), ErrDocumentNotFound)

	got, ok := ws.Get(a.ID())
	assert.True(t, ok)
	assert.Same(t, a, got)
}

func TestWorkspaceClose(t *testing.T) {
	ws := NewWorkspace()
	a, b := NewDocument("", "a"), NewDocument("", "b")
	ws.Add(a)
	ws.Add(b)

	require.NoError(t, ws.Close(b.ID()))
	assert.Same(t, a, ws.Current())
	assert.Equal(t, 1, ws.Count())

	require.NoError(t, ws.Close(a.ID()))
	assert.Nil(t, ws.Current())
	assert.ErrorIs(t, ws.Close(a.ID()), ErrDocumentNotFound)
}

func TestWorkspaceOpenMissingFile(t *testing.T) {
	ws := NewWorkspace()
	_, err := ws.Open(filepath.Join(t.TempDir(), "absent.txt"))

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "open", opErr.Op)
	assert.Zero(t, ws.Count())
}

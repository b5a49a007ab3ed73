package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_UndoRedo(t *testing.T) {
	l := NewLog[string](0)

	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())

	l.Push("v1")
	l.Push("v2")
	require.Equal(t, 2, l.Len())

	prev, ok := l.Undo("v3")
	require.True(t, ok)
	assert.Equal(t, "v2", prev)
	assert.True(t, l.CanRedo())

	prev, ok = l.Undo(prev)
	require.True(t, ok)
	assert.Equal(t, "v1", prev)

	_, ok = l.Undo(prev)
	assert.False(t, ok, "nothing left to undo")

	next, ok := l.Redo("v1")
	require.True(t, ok)
	assert.Equal(t, "v2", next)

	next, ok = l.Redo(next)
	require.True(t, ok)
	assert.Equal(t, "v3", next)

	_, ok = l.Redo(next)
	assert.False(t, ok, "nothing left to redo")
}

func TestLog_PushClearsRedoTail(t *testing.T) {
	l := NewLog[int](0)

	l.Push(1)
	l.Push(2)

	_, ok := l.Undo(3)
	require.True(t, ok)
	require.True(t, l.CanRedo())

	l.Push(4)
	assert.False(t, l.CanRedo())
}

func TestLog_LimitDropsOldest(t *testing.T) {
	l := NewLog[int](2)

	l.Push(1)
	l.Push(2)
	l.Push(3)
	require.Equal(t, 2, l.Len())

	prev, ok := l.Undo(4)
	require.True(t, ok)
	assert.Equal(t, 3, prev)

	prev, ok = l.Undo(prev)
	require.True(t, ok)
	assert.Equal(t, 2, prev)

	_, ok = l.Undo(prev)
	assert.False(t, ok, "oldest snapshot was dropped")
}

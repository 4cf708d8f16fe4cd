package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-studio/internal/label"
)

func snapshotWith(content string) []*label.Element {
	el := label.NewElement(label.ElementText)
	el.Content = content
	return []*label.Element{el}
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10)
	h.Push(snapshotWith("a"))
	require.False(t, h.CanUndo())

	h.Push(snapshotWith("b"))
	h.Push(snapshotWith("c"))
	require.True(t, h.CanUndo())

	els, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "b", els[0].Content)

	els, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, "a", els[0].Content)

	_, ok = h.Undo()
	assert.False(t, ok)

	els, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, "b", els[0].Content)

	els, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, "c", els[0].Content)

	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := NewHistory(10)
	h.Push(snapshotWith("a"))
	h.Push(snapshotWith("b"))

	_, ok := h.Undo()
	require.True(t, ok)
	require.Equal(t, 1, h.RedoLen())

	h.Push(snapshotWith("d"))
	assert.Equal(t, 0, h.RedoLen())

	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistoryRingDropsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(snapshotWith(fmt.Sprintf("s%d", i)))
	}
	require.Equal(t, 3, h.Len())

	// Two undos reach the oldest retained snapshot (s2), then stop.
	els, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "s3", els[0].Content)

	els, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, "s2", els[0].Content)

	_, ok = h.Undo()
	assert.False(t, ok)
}

func TestHistorySnapshotsAreDeepCopies(t *testing.T) {
	h := NewHistory(10)
	live := snapshotWith("a")
	h.Push(live)
	h.Push(snapshotWith("b"))

	live[0].Content = "mutated"

	els, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "a", els[0].Content)
}

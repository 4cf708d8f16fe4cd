// Package editor provides the label template editing engine: element
// operations, drag interaction, undo/redo history, and debounced autosave.
package editor

import "label-studio/internal/label"

// HistoryCapacity is the maximum number of undo snapshots retained.
const HistoryCapacity = 50

// History is a bounded ring buffer of element-collection snapshots plus a
// redo stack. Snapshots are deep copies; the newest entry mirrors the live
// collection. Pushing a new snapshot discards the oldest entry once the
// ring is full and always clears the redo stack.
type History struct {
	buf  [][]*label.Element
	head int // index of the oldest snapshot
	size int
	redo [][]*label.Element
}

// NewHistory creates a history ring with the given capacity.
func NewHistory(capacity int) *History {
	if capacity < 2 {
		capacity = 2
	}
	return &History{buf: make([][]*label.Element, capacity)}
}

// Push records a snapshot of the element collection and clears redo.
func (h *History) Push(els []*label.Element) {
	h.push(label.CloneElements(els))
	h.redo = h.redo[:0]
}

func (h *History) push(snap []*label.Element) {
	if h.size == len(h.buf) {
		// Overwrite the oldest entry.
		h.buf[h.head] = snap
		h.head = (h.head + 1) % len(h.buf)
		return
	}
	h.buf[(h.head+h.size)%len(h.buf)] = snap
	h.size++
}

// Len returns the number of retained snapshots.
func (h *History) Len() int {
	return h.size
}

// RedoLen returns the redo stack depth.
func (h *History) RedoLen() int {
	return len(h.redo)
}

// CanUndo reports whether an undo is possible. The newest snapshot is the
// current state, so undo needs at least two entries.
func (h *History) CanUndo() bool {
	return h.size >= 2
}

// Undo moves the current snapshot onto the redo stack and returns a deep
// copy of the previous one. Returns false when fewer than two snapshots
// exist.
func (h *History) Undo() ([]*label.Element, bool) {
	if !h.CanUndo() {
		return nil, false
	}

	last := (h.head + h.size - 1) % len(h.buf)
	h.redo = append(h.redo, h.buf[last])
	h.buf[last] = nil
	h.size--

	prev := (h.head + h.size - 1) % len(h.buf)
	return label.CloneElements(h.buf[prev]), true
}

// Redo pops the most recent redo entry, re-pushes it as the current
// snapshot, and returns a deep copy. Returns false when the redo stack is
// empty. Redo does not clear the remaining redo entries.
func (h *History) Redo() ([]*label.Element, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}

	snap := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.push(snap)
	return label.CloneElements(snap), true
}

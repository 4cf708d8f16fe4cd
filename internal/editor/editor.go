package editor

import (
	"log"
	"sync"
	"time"

	"label-studio/internal/label"
	"label-studio/internal/template"
	"label-studio/pkg/geometry"
)

// SymbolInvalidator invalidates cached symbol rasters when element content
// changes. Satisfied by render.SymbolCache.
type SymbolInvalidator interface {
	Invalidate(elementID string)
	InvalidateAll()
}

// dragSession tracks an active element drag: which element is being moved
// and the last sampled pointer position in editor pixels. A nil session
// means the interaction state machine is Idle.
type dragSession struct {
	index  int
	anchor geometry.Point2D
}

// Editor mutates one template's element collection, keeping undo history
// and scheduling debounced persistence after every committed change.
//
// mu guards the element collection and element fields: the autosave timer
// fires on a background goroutine and clones the elements, so every field
// write must hold the lock.
type Editor struct {
	mu sync.Mutex

	store    *template.Store
	template *label.Template
	sample   label.SampleRecord

	selected int
	drag     *dragSession
	history  *History
	autosave *Autosave
	symbols  SymbolInvalidator
	snap     bool

	onChange func()
}

// New creates an editor for the given template. The initial element state
// is pushed as the first history snapshot.
func New(store *template.Store, t *label.Template, sample label.SampleRecord) *Editor {
	e := &Editor{
		store:    store,
		template: t,
		sample:   sample,
		selected: -1,
		history:  NewHistory(HistoryCapacity),
	}
	e.autosave = NewAutosave(AutosaveDelay, e.saveNow)
	e.history.Push(t.Elements)
	return e
}

// SetAutosaveDelay replaces the autosave debounce window. Used by tests.
func (e *Editor) SetAutosaveDelay(d time.Duration) {
	e.autosave = NewAutosave(d, e.saveNow)
}

// SetSymbolCache wires the symbol cache invalidated on content changes.
func (e *Editor) SetSymbolCache(c SymbolInvalidator) {
	e.symbols = c
}

// OnChange registers a callback invoked after every mutation, selection
// change, and undo/redo. Used by the UI to refresh.
func (e *Editor) OnChange(fn func()) {
	e.onChange = fn
}

// Template returns the template being edited.
func (e *Editor) Template() *label.Template {
	return e.template
}

// Sample returns the preview record used for variable-field resolution.
func (e *Editor) Sample() label.SampleRecord {
	return e.sample
}

// SetSample replaces the preview record and refreshes symbol previews.
func (e *Editor) SetSample(rec label.SampleRecord) {
	e.sample = rec
	e.invalidateAll()
	e.emitChange()
}

// SetSnap enables or disables snap-to-grid during drags.
func (e *Editor) SetSnap(snap bool) {
	e.snap = snap
}

// Snap reports whether snap-to-grid is enabled.
func (e *Editor) Snap() bool {
	return e.snap
}

// SelectedIndex returns the selected element index, or -1.
func (e *Editor) SelectedIndex() int {
	return e.selected
}

// SelectedElement returns the selected element, or nil.
func (e *Editor) SelectedElement() *label.Element {
	if e.selected < 0 || e.selected >= len(e.template.Elements) {
		return nil
	}
	return e.template.Elements[e.selected]
}

// AddElement appends a new element with type-dependent defaults, selects
// it, snapshots, and schedules a save.
func (e *Editor) AddElement(t label.ElementType) *label.Element {
	el := label.NewElement(t)
	e.mu.Lock()
	e.template.Elements = append(e.template.Elements, el)
	e.mu.Unlock()
	e.selected = len(e.template.Elements) - 1
	e.commit(t == label.ElementQR || t == label.ElementBarcode, el.ID)
	return el
}

// Select marks an element as selected without starting a drag. An index
// out of range clears the selection.
func (e *Editor) Select(index int) {
	if index < 0 || index >= len(e.template.Elements) {
		e.selected = -1
	} else {
		e.selected = index
	}
	e.emitChange()
}

// BeginDrag selects an element and opens a drag session anchored at the
// pointer's current position in editor pixels. One snapshot covers the
// whole drag, so undo restores the pre-drag position.
func (e *Editor) BeginDrag(index int, pointer geometry.Point2D) {
	if index < 0 || index >= len(e.template.Elements) {
		return
	}
	e.selected = index
	e.drag = &dragSession{index: index, anchor: pointer}
	e.history.Push(e.template.Elements)
	e.emitChange()
}

// Drag applies one pointer sample to the active drag session. The delta is
// incremental from the previous sample: the element position is converted
// to pixels, shifted, converted back to millimeters, optionally snapped to
// the whole-mm grid, and the anchor advances to the new pointer position.
// Every sample schedules an autosave; no snapshot is pushed per sample.
func (e *Editor) Drag(index int, pointer geometry.Point2D) {
	if e.drag == nil || e.drag.index != index || index >= len(e.template.Elements) {
		return
	}

	delta := pointer.Sub(e.drag.anchor)
	el := e.template.Elements[index]

	x := geometry.PxToMm(geometry.MmToPx(el.X) + delta.X)
	y := geometry.PxToMm(geometry.MmToPx(el.Y) + delta.Y)
	if e.snap {
		x = geometry.SnapMm(x)
		y = geometry.SnapMm(y)
	}
	e.mu.Lock()
	el.X, el.Y = x, y
	e.mu.Unlock()

	e.drag.anchor = pointer
	e.autosave.Schedule()
	e.emitChange()
}

// EndDrag closes the active drag session.
func (e *Editor) EndDrag() {
	e.drag = nil
}

// Dragging reports whether a drag session is active.
func (e *Editor) Dragging() bool {
	return e.drag != nil
}

// SetContent replaces the selected element's literal content.
func (e *Editor) SetContent(content string) {
	el := e.SelectedElement()
	if el == nil {
		return
	}
	e.mu.Lock()
	el.Content = content
	e.mu.Unlock()
	e.commit(true, el.ID)
}

// SetPosition moves the selected element to (x, y) millimeters.
func (e *Editor) SetPosition(x, y float64) {
	el := e.SelectedElement()
	if el == nil {
		return
	}
	e.mu.Lock()
	el.X, el.Y = x, y
	e.mu.Unlock()
	e.commit(false, el.ID)
}

// SetSize resizes the selected element. Values are accepted unvalidated,
// matching the reference behavior.
func (e *Editor) SetSize(width, height float64) {
	el := e.SelectedElement()
	if el == nil {
		return
	}
	e.mu.Lock()
	el.Width, el.Height = width, height
	e.mu.Unlock()
	e.commit(true, el.ID)
}

// SetRotation sets the selected element's rotation in degrees.
func (e *Editor) SetRotation(degrees float64) {
	el := e.SelectedElement()
	if el == nil {
		return
	}
	e.mu.Lock()
	el.Rotation = degrees
	e.mu.Unlock()
	e.commit(false, el.ID)
}

// SetStyle replaces the selected element's style record.
func (e *Editor) SetStyle(style label.Style) {
	el := e.SelectedElement()
	if el == nil {
		return
	}
	e.mu.Lock()
	el.Style = style
	e.mu.Unlock()
	e.commit(true, el.ID)
}

// SetBinding sets or clears the selected element's variable field.
func (e *Editor) SetBinding(b label.Binding) {
	el := e.SelectedElement()
	if el == nil {
		return
	}
	e.mu.Lock()
	el.Binding = b
	e.mu.Unlock()
	e.commit(true, el.ID)
}

// DeleteSelected removes the selected element and clears the selection.
func (e *Editor) DeleteSelected() {
	if e.selected < 0 || e.selected >= len(e.template.Elements) {
		return
	}
	id := e.template.Elements[e.selected].ID
	e.mu.Lock()
	e.template.Elements = append(
		e.template.Elements[:e.selected],
		e.template.Elements[e.selected+1:]...)
	e.mu.Unlock()
	e.selected = -1
	e.commit(true, id)
}

// Undo restores the previous element-collection snapshot. No-op when fewer
// than two snapshots exist.
func (e *Editor) Undo() {
	els, ok := e.history.Undo()
	if !ok {
		return
	}
	e.restore(els)
}

// Redo restores the most recently undone snapshot, if any.
func (e *Editor) Redo() {
	els, ok := e.history.Redo()
	if !ok {
		return
	}
	e.restore(els)
}

// CanUndo reports whether an undo is currently possible.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether a redo is currently possible.
func (e *Editor) CanRedo() bool {
	return e.history.RedoLen() > 0
}

func (e *Editor) restore(els []*label.Element) {
	e.mu.Lock()
	e.template.Elements = els
	e.mu.Unlock()

	if e.selected >= len(els) {
		e.selected = -1
	}
	e.invalidateAll()
	e.autosave.Schedule()
	e.emitChange()
}

// commit records a mutation: push a history snapshot, schedule autosave,
// and invalidate the symbol raster when the change affects rendered
// content of a QR or barcode element.
func (e *Editor) commit(contentChanged bool, elementID string) {
	e.history.Push(e.template.Elements)
	e.autosave.Schedule()

	if contentChanged && e.symbols != nil {
		e.symbols.Invalidate(elementID)
	}
	e.emitChange()
}

// Flush persists any pending autosave immediately.
func (e *Editor) Flush() {
	e.autosave.Flush()
}

// saveNow persists the current element collection through the store. A
// failure is logged but not surfaced; the next mutation retries naturally.
func (e *Editor) saveNow() {
	e.mu.Lock()
	els := label.CloneElements(e.template.Elements)
	id := e.template.ID
	e.mu.Unlock()

	if _, err := e.store.UpdateByID(id, template.Update{Elements: &els}); err != nil {
		log.Printf("Autosave: save failed for template %s: %v", id, err)
	}
}

func (e *Editor) invalidateAll() {
	if e.symbols != nil {
		e.symbols.InvalidateAll()
	}
}

func (e *Editor) emitChange() {
	if e.onChange != nil {
		e.onChange()
	}
}

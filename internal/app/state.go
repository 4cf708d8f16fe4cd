// Package app provides application lifecycle management and events.
package app

import (
	"sync"

	"label-studio/internal/label"
	"label-studio/internal/template"
)

// State holds the application state: the template store, the template
// currently open in the designer, and the event bus the UI panels use to
// stay in sync.
type State struct {
	mu sync.RWMutex

	Store    *template.Store
	Current  *label.Template
	Sample   label.SampleRecord
	Modified bool

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventTemplateLoaded EventType = iota
	EventTemplateSaved
	EventTemplatesChanged
	EventElementsChanged
	EventSelectionChanged
	EventModified
	EventSampleChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates application state backed by the given template store.
func NewState(store *template.Store) *State {
	return &State{
		Store:     store,
		Sample:    label.DefaultSampleRecord(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the open template as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// SetCurrent switches the open template and emits a load event.
func (s *State) SetCurrent(t *label.Template) {
	s.mu.Lock()
	s.Current = t
	s.Modified = false
	s.mu.Unlock()
	s.Emit(EventTemplateLoaded, t)
}

// SetSample replaces the preview record and notifies listeners.
func (s *State) SetSample(rec label.SampleRecord) {
	s.mu.Lock()
	s.Sample = rec
	s.mu.Unlock()
	s.Emit(EventSampleChanged, rec)
}

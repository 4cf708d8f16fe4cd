package editor

import (
	"sync"
	"time"
)

// AutosaveDelay is the quiet period after the last mutation before the
// template is persisted.
const AutosaveDelay = 500 * time.Millisecond

// Autosave is a single-slot cancellable save timer. Every Schedule call
// cancels the pending timer and restarts the delay, so a burst of edits
// coalesces into one write. The timer fires on a background goroutine; the
// pending flag is guarded so cancellation and firing cannot double-save.
type Autosave struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending bool
	save    func()
}

// NewAutosave creates an autosaver invoking save after the given delay.
func NewAutosave(delay time.Duration, save func()) *Autosave {
	return &Autosave{delay: delay, save: save}
}

// Schedule cancels any pending save and restarts the delay.
func (a *Autosave) Schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
	}
	a.pending = true
	a.timer = time.AfterFunc(a.delay, a.fire)
}

func (a *Autosave) fire() {
	a.mu.Lock()
	if !a.pending {
		a.mu.Unlock()
		return
	}
	a.pending = false
	a.timer = nil
	a.mu.Unlock()

	a.save()
}

// Flush persists immediately if a save is pending. Used on window close and
// template switches so the debounce window cannot drop the last edit.
func (a *Autosave) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	wasPending := a.pending
	a.pending = false
	a.mu.Unlock()

	if wasPending {
		a.save()
	}
}

// Stop cancels any pending save without persisting.
func (a *Autosave) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = false
}

// Pending reports whether a save is scheduled.
func (a *Autosave) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending
}

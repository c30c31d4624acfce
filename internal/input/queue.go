// Package input turns terminal key presses into the discrete events the game
// loop polls once per tick.
package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// DefaultCrouchHold is how long crouch stays held after the last crouch key
// press when no hold time is configured.
const DefaultCrouchHold = 500 * time.Millisecond

// Queue buffers events between a frontend's input reader and the game loop.
//
// Terminals report presses and auto-repeats but never releases. The queue
// tracks the crouch key as held while presses keep arriving and synthesises
// KeyUp(Crouch) once none has been seen for the hold duration.
type Queue struct {
	mu         sync.Mutex
	events     []core.Event
	hold       time.Duration
	now        func() time.Time
	crouchHeld bool
	lastCrouch time.Time
}

// NewQueue creates a queue that releases crouch after hold.
func NewQueue(hold time.Duration) *Queue {
	if hold <= 0 {
		hold = DefaultCrouchHold
	}
	return &Queue{
		events: make([]core.Event, 0, 16),
		hold:   hold,
		now:    time.Now,
	}
}

// Push adds an event. A crouch press while crouch is already held only
// extends the hold.
func (q *Queue) Push(ev core.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch {
	case ev.IsKeyDown(core.KeyCrouch):
		q.lastCrouch = q.now()
		if q.crouchHeld {
			return
		}
		q.crouchHeld = true
	case ev.IsKeyUp(core.KeyCrouch):
		if !q.crouchHeld {
			return
		}
		q.crouchHeld = false
	}
	q.events = append(q.events, ev)
}

// PushKey looks up a key name and pushes the bound event. It reports whether
// the name was bound.
func (q *Queue) PushKey(name string) bool {
	ev, ok := Lookup(name)
	if ok {
		q.Push(ev)
	}
	return ok
}

// Poll drains the queue without blocking.
func (q *Queue) Poll() []core.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.crouchHeld && q.now().Sub(q.lastCrouch) >= q.hold {
		q.crouchHeld = false
		q.events = append(q.events, core.KeyUp(core.KeyCrouch))
	}
	if len(q.events) == 0 {
		return nil
	}

	out := make([]core.Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

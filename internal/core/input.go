package core

// Key is a semantic key, abstracted from physical key presses.
type Key int

const (
	KeyNone   Key = iota
	KeyJump       // Space, Up, W
	KeyCrouch     // Down, S
	KeyReplay     // R - start a new session from the game-over menu
	KeyExit       // Q, Esc - leave from the game-over menu
	KeyPause      // P - pause/unpause while playing
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyJump:
		return "Jump"
	case KeyCrouch:
		return "Crouch"
	case KeyReplay:
		return "Replay"
	case KeyExit:
		return "Exit"
	case KeyPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes discrete input events.
type EventKind int

const (
	EventQuit    EventKind = iota + 1 // Global quit signal (Ctrl+C, window closed)
	EventKeyDown                      // Key pressed
	EventKeyUp                        // Key released
)

// Event is a single entry of the input queue polled once per tick.
type Event struct {
	Kind EventKind
	Key  Key
}

// QuitEvent returns the global quit event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDown returns a key-down event for k.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUp returns a key-up event for k.
func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// IsKeyDown reports whether e is a key-down of k.
func (e Event) IsKeyDown(k Key) bool {
	return e.Kind == EventKeyDown && e.Key == k
}

// IsKeyUp reports whether e is a key-up of k.
func (e Event) IsKeyUp(k Key) bool {
	return e.Kind == EventKeyUp && e.Key == k
}

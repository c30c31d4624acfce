package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/input"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Jump       key.Binding
	Crouch     key.Binding
	Pause      key.Binding
	Replay     key.Binding
	Exit       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Crouch, k.Pause, k.Replay, k.Exit, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Crouch, k.Pause},
		{k.Replay, k.Exit, k.Quit, k.Screenshot},
	}
}

// DefaultKeyMap returns the game's key bindings plus the screenshot key.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump:       gameBinding(core.KeyDown(core.KeyJump)),
		Crouch:     gameBinding(core.KeyDown(core.KeyCrouch)),
		Pause:      gameBinding(core.KeyDown(core.KeyPause)),
		Replay:     gameBinding(core.KeyDown(core.KeyReplay)),
		Exit:       gameBinding(core.KeyDown(core.KeyExit)),
		Quit:       gameBinding(core.QuitEvent()),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// gameBinding converts the input package's binding for ev.
func gameBinding(ev core.Event) key.Binding {
	b, ok := input.BindingFor(ev)
	if !ok {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Label, b.Desc),
	)
}

// MapKey translates a key message to a game event.
// Returns false for keys the game does not use.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.QuitEvent(), true
	case key.Matches(msg, k.Jump):
		return core.KeyDown(core.KeyJump), true
	case key.Matches(msg, k.Crouch):
		return core.KeyDown(core.KeyCrouch), true
	case key.Matches(msg, k.Pause):
		return core.KeyDown(core.KeyPause), true
	case key.Matches(msg, k.Replay):
		return core.KeyDown(core.KeyReplay), true
	case key.Matches(msg, k.Exit):
		return core.KeyDown(core.KeyExit), true
	}
	return core.Event{}, false
}

package input

import (
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Binding ties key names to the event they produce. Key names follow Bubble
// Tea's KeyMsg.String(); the tcell frontend converts its events to the same
// names.
type Binding struct {
	Keys  []string
	Label string // keys as shown in help text
	Desc  string
	Event core.Event
}

// bindings is the game's key map, in help display order.
var bindings = []Binding{
	{[]string{" ", "space", "up", "w"}, "space/↑/w", "jump", core.KeyDown(core.KeyJump)},
	{[]string{"down", "s"}, "↓/s", "crouch", core.KeyDown(core.KeyCrouch)},
	{[]string{"p"}, "p", "pause", core.KeyDown(core.KeyPause)},
	{[]string{"r"}, "r", "replay", core.KeyDown(core.KeyReplay)},
	{[]string{"q", "esc"}, "q/esc", "quit menu", core.KeyDown(core.KeyExit)},
	{[]string{"ctrl+c"}, "ctrl+c", "quit", core.QuitEvent()},
}

var byName = func() map[string]core.Event {
	m := make(map[string]core.Event)
	for _, b := range bindings {
		for _, k := range b.Keys {
			m[k] = b.Event
		}
	}
	return m
}()

// BindingFor returns the binding that produces ev.
func BindingFor(ev core.Event) (Binding, bool) {
	for _, b := range bindings {
		if b.Event == ev {
			return b, true
		}
	}
	return Binding{}, false
}

// Lookup returns the event bound to a key name. Letters match either case.
func Lookup(name string) (core.Event, bool) {
	if ev, ok := byName[name]; ok {
		return ev, true
	}
	ev, ok := byName[strings.ToLower(name)]
	return ev, ok
}

// Help lists the bindings as "keys description" pairs, in display order.
func Help() [][2]string {
	out := make([][2]string, len(bindings))
	for i, b := range bindings {
		out[i] = [2]string{b.Label, b.Desc}
	}
	return out
}

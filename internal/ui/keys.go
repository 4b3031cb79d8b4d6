package ui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/oakwood-commons/navtree/internal/keymap"
	"github.com/oakwood-commons/navtree/pkg/navtree"
)

// navEvents are listed in help in this order; bound custom events follow.
var navEvents = []navtree.Event{navtree.Up, navtree.Down, navtree.Left, navtree.Right, navtree.Enter, navtree.Back}

// keyMap holds the explorer's own controls plus one help entry per bound
// navigation event. It implements help.KeyMap.
type keyMap struct {
	Quit  key.Binding
	Help  key.Binding
	Reset key.Binding
	Clear key.Binding
	Nav   []key.Binding
}

func newKeyMap(km *keymap.Keymap) keyMap {
	k := keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "unfocus all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear log"),
		),
	}

	events := append([]navtree.Event{}, navEvents...)
	for _, b := range km.Bindings() {
		if !containsEvent(events, b.Event) {
			events = append(events, b.Event)
		}
	}
	for _, ev := range events {
		keys := km.KeysFor(ev)
		if len(keys) == 0 {
			continue
		}
		k.Nav = append(k.Nav, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), string(ev)),
		))
	}
	return k
}

func containsEvent(events []navtree.Event, ev navtree.Event) bool {
	for _, e := range events {
		if e == ev {
			return true
		}
	}
	return false
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Nav, {k.Reset, k.Clear, k.Help, k.Quit}}
}

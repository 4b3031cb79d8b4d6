// Package keymap turns key presses into navigation events.
package keymap

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/navtree/pkg/navtree"
)

// Mode selects a base set of bindings.
type Mode string

const (
	// ModeArrows binds arrow keys, enter and escape only.
	ModeArrows Mode = "arrows"
	// ModeVim adds h/j/k/l.
	ModeVim Mode = "vim"
	// ModeEmacs adds ctrl+p/n/b/f and ctrl+g.
	ModeEmacs Mode = "emacs"
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeArrows

// Unbind as an override value removes a binding.
const Unbind = "none"

// ValidModes lists all valid modes.
var ValidModes = []Mode{ModeArrows, ModeVim, ModeEmacs}

// IsValidMode checks if a mode string is valid.
func IsValidMode(mode string) bool {
	return slices.Contains(ValidModes, Mode(mode))
}

var arrowBindings = map[string]navtree.Event{
	"up":        navtree.Up,
	"down":      navtree.Down,
	"left":      navtree.Left,
	"right":     navtree.Right,
	"enter":     navtree.Enter,
	"esc":       navtree.Back,
	"backspace": navtree.Back,
}

var vimBindings = map[string]navtree.Event{
	"k": navtree.Up,
	"j": navtree.Down,
	"h": navtree.Left,
	"l": navtree.Right,
}

var emacsBindings = map[string]navtree.Event{
	"ctrl+p": navtree.Up,
	"ctrl+n": navtree.Down,
	"ctrl+b": navtree.Left,
	"ctrl+f": navtree.Right,
	"ctrl+m": navtree.Enter,
	"ctrl+g": navtree.Back,
}

// Binding pairs a key with the event it produces.
type Binding struct {
	Key   string
	Event navtree.Event
}

// Keymap resolves key strings, as reported by tea.KeyPressMsg.String, to
// events.
type Keymap struct {
	mode     Mode
	bindings map[string]navtree.Event
}

// New builds the keymap for mode with overrides applied on top. Override keys
// are key strings or <...> tokens; a value of "none" removes the binding.
func New(mode Mode, overrides map[string]string) (*Keymap, error) {
	if mode == "" {
		mode = DefaultMode
	}
	km := &Keymap{mode: mode, bindings: maps.Clone(arrowBindings)}
	switch mode {
	case ModeArrows:
	case ModeVim:
		maps.Copy(km.bindings, vimBindings)
	case ModeEmacs:
		maps.Copy(km.bindings, emacsBindings)
	default:
		return nil, fmt.Errorf("invalid keymap mode %q (want one of %s)", mode, modeList())
	}

	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		name, err := normalizeKey(key)
		if err != nil {
			return nil, err
		}
		ev := strings.TrimSpace(overrides[key])
		switch ev {
		case "":
			return nil, fmt.Errorf("binding for %q has no event", key)
		case Unbind:
			delete(km.bindings, name)
		default:
			km.bindings[name] = navtree.Event(ev)
		}
	}
	return km, nil
}

func modeList() string {
	names := make([]string, len(ValidModes))
	for i, m := range ValidModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// normalizeKey accepts either a key string ("ctrl+n") or a single <...>
// token ("<C-n>") and returns the key string.
func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("empty key in bindings")
	}
	if strings.HasPrefix(key, "<") && strings.HasSuffix(key, ">") {
		msg, ok := keyFromToken(key)
		if !ok {
			return "", fmt.Errorf("unknown key token %q", key)
		}
		return msg.String(), nil
	}
	return key, nil
}

// Mode returns the base mode.
func (k *Keymap) Mode() Mode {
	return k.mode
}

// Lookup returns the event bound to key.
func (k *Keymap) Lookup(key string) (navtree.Event, bool) {
	ev, ok := k.bindings[key]
	return ev, ok
}

// FromMsg returns the event bound to a key press.
func (k *Keymap) FromMsg(msg tea.KeyPressMsg) (navtree.Event, bool) {
	return k.Lookup(msg.String())
}

// KeysFor returns the keys bound to ev, sorted.
func (k *Keymap) KeysFor(ev navtree.Event) []string {
	var keys []string
	for key, bound := range k.bindings {
		if bound == ev {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// Bindings returns all bindings sorted by event, then key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for key, ev := range k.bindings {
		out = append(out, Binding{Key: key, Event: ev})
	}
	slices.SortFunc(out, func(a, b Binding) int {
		if c := strings.Compare(string(a.Event), string(b.Event)); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
	return out
}

// Events translates press tokens into events. Keys without a binding are
// reported as an error naming the key.
func (k *Keymap) Events(tokens []string) ([]navtree.Event, error) {
	msgs, err := ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	events := make([]navtree.Event, 0, len(msgs))
	for _, msg := range msgs {
		ev, ok := k.FromMsg(msg)
		if !ok {
			return nil, fmt.Errorf("key %q is not bound in %s mode", msg.String(), k.mode)
		}
		events = append(events, ev)
	}
	return events, nil
}

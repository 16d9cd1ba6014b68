package keymap

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/dshills/gridterm/internal/input/key"
)

// Errors
var (
	ErrInvalidKey    = errors.New("invalid key")
	ErrUnknownAction = errors.New("unknown action")
)

// Keymap holds key bindings.
type Keymap struct {
	bindings map[key.Event]Action
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[key.Event]Action)}
}

// Default returns the standard game bindings.
func Default() *Keymap {
	km := New()
	for name, action := range map[string]Action{
		"Up":     ActionMoveUp,
		"k":      ActionMoveUp,
		"Down":   ActionMoveDown,
		"j":      ActionMoveDown,
		"Left":   ActionMoveLeft,
		"h":      ActionMoveLeft,
		"Right":  ActionMoveRight,
		"l":      ActionMoveRight,
		":":      ActionSay,
		"n":      ActionNewline,
		"Ctrl+L": ActionClearLog,
		"q":      ActionQuit,
		"Escape": ActionQuit,
		"Ctrl+C": ActionQuit,
	} {
		if err := km.Bind(name, action); err != nil {
			panic(err)
		}
	}
	return km
}

// Bind maps the key written as name to action.
func (k *Keymap) Bind(name string, action Action) error {
	ev, err := ParseKey(name)
	if err != nil {
		return err
	}
	k.bindings[ev] = action
	return nil
}

// Unbind removes the binding for name, if any.
func (k *Keymap) Unbind(name string) error {
	ev, err := ParseKey(name)
	if err != nil {
		return err
	}
	delete(k.bindings, ev)
	return nil
}

// Lookup returns the action bound to ev.
func (k *Keymap) Lookup(ev key.Event) (Action, bool) {
	if a, ok := k.bindings[normalize(ev)]; ok {
		return a, true
	}
	return "", false
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Apply binds every key in overrides. Actions are validated first so a
// bad entry leaves the keymap unchanged.
func (k *Keymap) Apply(overrides map[string]string) error {
	parsed := make(map[key.Event]Action, len(overrides))
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		ev, err := ParseKey(name)
		if err != nil {
			return err
		}
		a, err := ParseAction(overrides[name])
		if err != nil {
			return fmt.Errorf("binding %q: %w", name, err)
		}
		parsed[ev] = a
	}
	maps.Copy(k.bindings, parsed)
	return nil
}

// Clone returns an independent copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	return &Keymap{bindings: maps.Clone(k.bindings)}
}

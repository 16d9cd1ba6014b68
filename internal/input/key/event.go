package key

import "unicode"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// Is returns true if e is the plain character r.
func (e Event) Is(r rune) bool {
	return e.IsRune() && e.Rune == r && e.Modifiers&(ModCtrl|ModAlt) == 0
}

// IsCtrl returns true if e is Ctrl plus the character r.
func (e Event) IsCtrl(r rune) bool {
	return e.IsRune() && unicode.ToLower(e.Rune) == r && e.Modifiers.Has(ModCtrl)
}

// String returns a canonical representation, e.g. "Ctrl+c" or "Up".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

package keymap

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/gridterm/internal/input/key"
)

// ParseKey parses a single key such as "j", "Up", "Ctrl+C" or "C-c".
func ParseKey(name string) (key.Event, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return key.Event{}, fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if len(s) > 2 && s[0] == '<' && s[len(s)-1] == '>' {
		s = s[1 : len(s)-1]
	}

	var mods key.Modifier
	parts := splitKey(s)
	for _, p := range parts[:len(parts)-1] {
		m, ok := parseModifier(p)
		if !ok {
			return key.Event{}, fmt.Errorf("%w: modifier %q in %q", ErrInvalidKey, p, name)
		}
		mods |= m
	}

	last := parts[len(parts)-1]
	if utf8.RuneCountInString(last) == 1 {
		r, _ := utf8.DecodeRuneInString(last)
		return normalize(key.NewRuneEvent(r, mods)), nil
	}
	if k := key.FromName(last); k != key.KeyNone {
		return key.NewSpecialEvent(k, mods), nil
	}
	return key.Event{}, fmt.Errorf("%w: key %q in %q", ErrInvalidKey, last, name)
}

// splitKey splits on '+' or '-' separators, keeping a trailing separator
// character as the key itself ("Ctrl++").
func splitKey(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if (s[i] == '+' || s[i] == '-') && i > start && i < len(s)-1 {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func parseModifier(s string) (key.Modifier, bool) {
	switch strings.ToLower(s) {
	case "c", "ctrl", "control":
		return key.ModCtrl, true
	case "a", "m", "alt", "meta", "opt", "option":
		return key.ModAlt, true
	case "s", "shift":
		return key.ModShift, true
	}
	return key.ModNone, false
}

// normalize folds Ctrl+letter to lowercase so "Ctrl+C" matches the decoded
// Ctrl-c, and drops Shift from plain characters since the rune carries it.
func normalize(ev key.Event) key.Event {
	if !ev.IsRune() {
		return ev
	}
	if ev.Modifiers.Has(key.ModCtrl) {
		ev.Rune = unicode.ToLower(ev.Rune)
	}
	ev.Modifiers &^= key.ModShift
	return ev
}

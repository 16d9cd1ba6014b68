package input

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dshills/gridterm/internal/input/key"
)

const esc = 0x1b

// decodeKey decodes one key from the start of buf, returning the event and
// the number of bytes consumed. buf must not be empty. Escape sequences
// that map to no key are consumed whole and reported as KeyNone.
func decodeKey(buf []byte) (key.Event, int) {
	b := buf[0]
	switch {
	case b == esc:
		return decodeEscape(buf)
	case b == '\r' || b == '\n':
		return key.NewSpecialEvent(key.KeyEnter, key.ModNone), 1
	case b == '\t':
		return key.NewSpecialEvent(key.KeyTab, key.ModNone), 1
	case b == 0x7f || b == 0x08:
		return key.NewSpecialEvent(key.KeyBackspace, key.ModNone), 1
	case b < 0x20:
		// Ctrl-A .. Ctrl-Z
		return key.NewRuneEvent(rune('a'+b-1), key.ModCtrl), 1
	}

	r, size := utf8.DecodeRune(buf)
	return key.NewRuneEvent(r, key.ModNone), size
}

// decodeEscape decodes a lone Escape, Alt+key, or a CSI/SS3 sequence.
func decodeEscape(buf []byte) (key.Event, int) {
	if len(buf) == 1 {
		return key.NewSpecialEvent(key.KeyEscape, key.ModNone), 1
	}
	switch {
	case buf[1] == '[' && len(buf) > 2:
		return decodeCSI(buf)
	case buf[1] == 'O' && len(buf) > 2:
		return decodeSS3(buf)
	}
	ev, n := decodeKey(buf[1:])
	ev.Modifiers |= key.ModAlt
	return ev, n + 1
}

// decodeCSI decodes ESC [ params intermediates final. buf holds at least
// three bytes.
func decodeCSI(buf []byte) (key.Event, int) {
	i := 2
	for i < len(buf) && buf[i] >= 0x30 && buf[i] <= 0x3f {
		i++
	}
	params := string(buf[2:i])
	for i < len(buf) && buf[i] >= 0x20 && buf[i] <= 0x2f {
		i++
	}
	if i == len(buf) || buf[i] < 0x40 || buf[i] > 0x7e {
		// truncated or malformed: drop what belongs to the sequence
		return key.Event{}, i
	}
	return csiKey(params, buf[i]), i + 1
}

// decodeSS3 decodes ESC O final. buf holds at least three bytes.
func decodeSS3(buf []byte) (key.Event, int) {
	if k, ok := cursorKey(buf[2]); ok {
		return key.NewSpecialEvent(k, key.ModNone), 3
	}
	return key.Event{}, 3
}

// csiKey maps a complete CSI sequence to a key. Unmapped sequences give
// KeyNone.
func csiKey(params string, final byte) key.Event {
	fields := strings.Split(params, ";")
	mods := key.ModNone
	if len(fields) > 1 {
		mods = xtermModifier(fields[1])
	}

	if k, ok := cursorKey(final); ok {
		return key.NewSpecialEvent(k, mods)
	}
	switch final {
	case 'Z':
		return key.NewSpecialEvent(key.KeyTab, key.ModShift)
	case '~':
		switch fields[0] {
		case "1", "7":
			return key.NewSpecialEvent(key.KeyHome, mods)
		case "3":
			return key.NewSpecialEvent(key.KeyDelete, mods)
		case "4", "8":
			return key.NewSpecialEvent(key.KeyEnd, mods)
		}
	}
	return key.Event{}
}

// cursorKey maps the final byte of an arrow, Home or End sequence.
func cursorKey(final byte) (key.Key, bool) {
	switch final {
	case 'A':
		return key.KeyUp, true
	case 'B':
		return key.KeyDown, true
	case 'C':
		return key.KeyRight, true
	case 'D':
		return key.KeyLeft, true
	case 'H':
		return key.KeyHome, true
	case 'F':
		return key.KeyEnd, true
	}
	return key.KeyNone, false
}

// xtermModifier decodes the modifier parameter of sequences like
// ESC [ 1 ; 5 A, which encodes 1 + (shift | alt<<1 | ctrl<<2 | meta<<3).
func xtermModifier(s string) key.Modifier {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return key.ModNone
	}
	bits := n - 1
	var mods key.Modifier
	if bits&1 != 0 {
		mods |= key.ModShift
	}
	if bits&(2|8) != 0 {
		mods |= key.ModAlt
	}
	if bits&4 != 0 {
		mods |= key.ModCtrl
	}
	return mods
}

package input

import (
	"github.com/dshills/gridterm/internal/input/key"
)

// KeyLineReader assembles lines from a KeyReader. Enter ends the line,
// Backspace deletes the last rune, and Escape or Ctrl-C abandons the line
// with ErrInterrupted. KeyNone events are ignored unless a check set with
// SetCheck fails.
type KeyLineReader struct {
	keys     KeyReader
	onChange func(pending string)
	check    func() error
}

// NewKeyLineReader creates a line reader on top of keys. onChange, if not
// nil, is called with the pending text after every edit so the caller can
// echo it.
func NewKeyLineReader(keys KeyReader, onChange func(pending string)) *KeyLineReader {
	return &KeyLineReader{keys: keys, onChange: onChange}
}

// SetCheck installs check, called on every KeyNone event. A non-nil result
// abandons the line and is returned by ReadLine. It lets a caller that
// wakes the key source stop a line in progress, for example on shutdown.
func (r *KeyLineReader) SetCheck(check func() error) {
	r.check = check
}

// ReadLine implements LineReader.
func (r *KeyLineReader) ReadLine() (string, error) {
	var line []rune
	for {
		ev, err := r.keys.ReadKey()
		if err != nil {
			return "", err
		}

		switch {
		case ev.Key == key.KeyNone:
			if r.check != nil {
				if err := r.check(); err != nil {
					return "", err
				}
			}
			continue
		case ev.Key == key.KeyEnter:
			return string(line), nil
		case ev.Key == key.KeyEscape || ev.IsCtrl('c'):
			return "", ErrInterrupted
		case ev.Key == key.KeyBackspace:
			if len(line) == 0 {
				continue
			}
			line = line[:len(line)-1]
		case ev.IsChar() && !ev.Modifiers.Has(key.ModCtrl) && !ev.Modifiers.Has(key.ModAlt):
			line = append(line, ev.Rune)
		default:
			continue
		}

		if r.onChange != nil {
			r.onChange(string(line))
		}
	}
}

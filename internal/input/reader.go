package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/gridterm/internal/input/key"
)

// ErrInterrupted is returned when the player interrupts a line read with
// Ctrl-C or Ctrl-D.
var ErrInterrupted = errors.New("input interrupted")

// KeyReader blocks until a key is pressed.
type KeyReader interface {
	ReadKey() (key.Event, error)
}

// LineReader blocks until a line of text is entered. The returned line has
// no trailing newline.
type LineReader interface {
	ReadLine() (string, error)
}

// ParseLine reads a line and converts it with parse.
func ParseLine[T any](r LineReader, parse func(string) (T, error)) (T, error) {
	var zero T
	line, err := r.ReadLine()
	if err != nil {
		return zero, err
	}
	v, err := parse(line)
	if err != nil {
		return zero, fmt.Errorf("parsing %q: %w", line, err)
	}
	return v, nil
}

// Int parses a base-10 integer, ignoring surrounding space.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Text returns the line with surrounding space removed.
func Text(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

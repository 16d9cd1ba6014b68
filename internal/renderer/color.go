package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// ErrUnknownColor is returned by ParseColor for names outside the palette.
var ErrUnknownColor = errors.New("unknown color")

// Color is one of the eight terminal foreground colours.
type Color uint8

// Palette colours.
const (
	ColorBlack Color = iota
	ColorBlue
	ColorCyan
	ColorGreen
	ColorMagenta
	ColorRed
	ColorWhite
	ColorYellow
)

var colorNames = [...]string{
	ColorBlack:   "black",
	ColorBlue:    "blue",
	ColorCyan:    "cyan",
	ColorGreen:   "green",
	ColorMagenta: "magenta",
	ColorRed:     "red",
	ColorWhite:   "white",
	ColorYellow:  "yellow",
}

// Colors returns every palette colour in declaration order.
func Colors() []Color {
	return []Color{
		ColorBlack, ColorBlue, ColorCyan, ColorGreen,
		ColorMagenta, ColorRed, ColorWhite, ColorYellow,
	}
}

// ParseColor parses a colour name, ignoring case and surrounding space.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for c, s := range colorNames {
		if s == n {
			return Color(c), nil
		}
	}
	return ColorWhite, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// IsValid returns true if c is a palette colour.
func (c Color) IsValid() bool {
	return int(c) < len(colorNames)
}

// String returns the colour name.
func (c Color) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ANSI returns the 8-colour ANSI foreground for c.
func (c Color) ANSI() termenv.ANSIColor {
	switch c {
	case ColorBlack:
		return termenv.ANSIBlack
	case ColorBlue:
		return termenv.ANSIBlue
	case ColorCyan:
		return termenv.ANSICyan
	case ColorGreen:
		return termenv.ANSIGreen
	case ColorMagenta:
		return termenv.ANSIMagenta
	case ColorRed:
		return termenv.ANSIRed
	case ColorYellow:
		return termenv.ANSIYellow
	default:
		return termenv.ANSIWhite
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

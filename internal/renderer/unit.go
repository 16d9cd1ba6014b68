package renderer

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/dshills/gridterm/internal/debug"
)

// widthCondition measures glyphs with East Asian ambiguous characters as
// narrow, independent of the process locale.
var widthCondition = &runewidth.Condition{EastAsianWidth: false}

// RuneWidth returns the console width of r: 0 for control and combining
// characters, 1 for half-width and 2 for full-width glyphs.
func RuneWidth(r rune) int {
	return widthCondition.RuneWidth(r)
}

// Unit is the smallest drawable piece of a frame. It always occupies exactly
// one square console cell (two columns): either one full-width glyph or two
// half-width glyphs.
type Unit struct {
	left  rune
	right rune // 0 when left is a full-width glyph
	color Color
}

// FullUnit creates a unit holding one full-width glyph.
// r must have a console width of 2 (checked in debug builds).
func FullUnit(r rune, color Color) Unit {
	if debug.Enabled {
		debug.Assert(RuneWidth(r) == 2, "full unit %q must have width 2, got %d", r, RuneWidth(r))
	}
	return Unit{left: r, color: color}
}

// HalfUnit creates a unit holding two half-width glyphs.
// Both runes must have a console width of 1 (checked in debug builds).
func HalfUnit(left, right rune, color Color) Unit {
	if debug.Enabled {
		debug.Assert(RuneWidth(left) == 1, "half unit %q must have width 1, got %d", left, RuneWidth(left))
		debug.Assert(RuneWidth(right) == 1, "half unit %q must have width 1, got %d", right, RuneWidth(right))
	}
	return Unit{left: left, right: right, color: color}
}

// BlankUnit returns the unit drawn for empty canvas slots.
func BlankUnit() Unit {
	return Unit{left: ' ', right: ' ', color: ColorWhite}
}

// Units segments s into square units of the given colour, scanning left to
// right. Adjacent half-width runes are packed in pairs; a half-width rune
// followed by a full-width one, or left over at the end, is padded with a
// space.
//
// Every rune of s must have a console width of 1 or 2 (checked in debug
// builds). Without checks, runes of any other width are skipped.
func Units(s string, color Color) []Unit {
	units := make([]Unit, 0, len(s)/2+1)
	var pending rune
	hasPending := false

	for _, r := range s {
		width := RuneWidth(r)
		if debug.Enabled {
			debug.Assert(width == 1 || width == 2, "rune %q in %q must have width 1 or 2, got %d", r, s, width)
		}

		switch width {
		case 1:
			if hasPending {
				units = append(units, HalfUnit(pending, r, color))
				hasPending = false
			} else {
				pending = r
				hasPending = true
			}
		case 2:
			if hasPending {
				units = append(units, HalfUnit(pending, ' ', color))
				hasPending = false
			}
			units = append(units, FullUnit(r, color))
		}
	}

	if hasPending {
		units = append(units, HalfUnit(pending, ' ', color))
	}
	return units
}

// Color returns the unit's colour.
func (u Unit) Color() Color {
	return u.color
}

// IsFull returns true if the unit holds a single full-width glyph.
func (u Unit) IsFull() bool {
	return u.right == 0
}

// Runes returns the glyphs of the unit. right is 0 for a full-width unit.
func (u Unit) Runes() (left, right rune) {
	return u.left, u.right
}

// WithColor returns a copy of the unit in another colour.
func (u Unit) WithColor(color Color) Unit {
	u.color = color
	return u
}

// Text returns the glyphs without styling.
func (u Unit) Text() string {
	if u.IsFull() {
		return string(u.left)
	}
	return string([]rune{u.left, u.right})
}

// String returns the glyphs wrapped in the ANSI foreground sequence of the
// unit's colour.
func (u Unit) String() string {
	return termenv.String(u.Text()).Foreground(u.color.ANSI()).String()
}

// WriteTo writes the styled unit to w.
func (u Unit) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, u.String())
	return int64(n), err
}

// TextOf concatenates the unstyled text of units.
func TextOf(units []Unit) string {
	buf := make([]rune, 0, len(units)*2)
	for _, u := range units {
		buf = append(buf, u.left)
		if !u.IsFull() {
			buf = append(buf, u.right)
		}
	}
	return string(buf)
}

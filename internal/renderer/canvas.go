package renderer

import (
	"cmp"
	"io"

	"github.com/dshills/gridterm/internal/debug"
	"github.com/dshills/gridterm/internal/geom"
)

// Canvas dimensions in units. The drawn frame adds one border unit on each side.
const (
	CanvasWidth  = 40 - 2
	CanvasHeight = 30

	DrawnWidth  = CanvasWidth + 2
	DrawnHeight = CanvasHeight + 2
)

// borderColor is the colour of the frame drawn around the canvas.
const borderColor = ColorWhite

// Position is a canvas coordinate in units, (0, 0) at the top-left.
type Position = geom.Pair[int]

// Bounds reports whether a position can be drawn.
type Bounds interface {
	IsDrawableAt(pos Position) bool
}

// slot is the content of one canvas position.
type slot[L cmp.Ordered] struct {
	unit   Unit
	layer  L
	filled bool
}

// Canvas is the fixed-size frame that every draw call composites into.
// Each position holds at most one unit together with the layer it was drawn
// at; a draw only replaces an existing unit if its layer is higher or equal.
//
// The zero value is a blank canvas.
type Canvas[L cmp.Ordered] struct {
	slots [CanvasHeight][CanvasWidth]slot[L]
}

// NewCanvas returns a blank canvas.
func NewCanvas[L cmp.Ordered]() *Canvas[L] {
	return &Canvas[L]{}
}

// Size returns the canvas size in units.
func (c *Canvas[L]) Size() geom.Pair[int] {
	return geom.NewPair(CanvasWidth, CanvasHeight)
}

// IsDrawableAt returns true if pos lies inside the canvas.
func (c *Canvas[L]) IsDrawableAt(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < CanvasWidth && pos.Y < CanvasHeight
}

// DrawUnit draws a unit at pos on the given layer. An existing unit drawn on
// a higher layer is kept; equal layers are overwritten by the latest draw.
//
// pos must lie inside the canvas (checked in debug builds).
func (c *Canvas[L]) DrawUnit(unit Unit, pos Position, layer L) {
	if debug.Enabled {
		debug.Assert(c.IsDrawableAt(pos), "canvas position %s out of bounds %dx%d", pos, CanvasWidth, CanvasHeight)
	}

	s := &c.slots[pos.Y][pos.X]
	if s.filled && layer < s.layer {
		return
	}
	*s = slot[L]{unit: unit, layer: layer, filled: true}
}

// SlotAt returns the unit and layer drawn at pos. ok is false for blank
// positions and positions outside the canvas.
func (c *Canvas[L]) SlotAt(pos Position) (unit Unit, layer L, ok bool) {
	if !c.IsDrawableAt(pos) {
		return Unit{}, layer, false
	}
	s := c.slots[pos.Y][pos.X]
	return s.unit, s.layer, s.filled
}

// UnitAt returns the unit that WriteTo renders at pos: the drawn unit or
// the blank unit.
func (c *Canvas[L]) UnitAt(pos Position) Unit {
	if u, _, ok := c.SlotAt(pos); ok {
		return u
	}
	return BlankUnit()
}

// Clear removes every unit from the canvas.
func (c *Canvas[L]) Clear() {
	c.slots = [CanvasHeight][CanvasWidth]slot[L]{}
}

// Border units shared by every frame presenter.
var (
	BorderTop    = HalfUnit('_', '_', borderColor)
	BorderLeft   = HalfUnit(' ', '|', borderColor)
	BorderRight  = HalfUnit('|', ' ', borderColor)
	BorderBottom = FullUnit('￣', borderColor)
)

// WriteTo writes the whole frame to w: a top border, one line per canvas
// row framed by side borders, and a bottom border, each followed by a
// newline. Blank positions are written as blank units.
//
// The first failed write stops the frame. Its error is returned as is and
// the output already written is not rolled back.
func (c *Canvas[L]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	put := func(u Unit) error {
		n, err := u.WriteTo(w)
		total += n
		return err
	}
	newline := func() error {
		n, err := io.WriteString(w, "\n")
		total += int64(n)
		return err
	}

	for range DrawnWidth {
		if err := put(BorderTop); err != nil {
			return total, err
		}
	}
	if err := newline(); err != nil {
		return total, err
	}

	for y := range CanvasHeight {
		if err := put(BorderLeft); err != nil {
			return total, err
		}
		for x := range CanvasWidth {
			if err := put(c.UnitAt(geom.NewPair(x, y))); err != nil {
				return total, err
			}
		}
		if err := put(BorderRight); err != nil {
			return total, err
		}
		if err := newline(); err != nil {
			return total, err
		}
	}

	for range DrawnWidth {
		if err := put(BorderBottom); err != nil {
			return total, err
		}
	}
	if err := newline(); err != nil {
		return total, err
	}
	return total, nil
}

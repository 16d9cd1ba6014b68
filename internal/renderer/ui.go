package renderer

import (
	"cmp"

	"github.com/dshills/gridterm/internal/geom"
)

// UIPosition is a position in UI space. UI space coincides with canvas space.
type UIPosition = Position

// UICanvas draws interface elements (logs, status lines) in canvas
// coordinates.
type UICanvas[L cmp.Ordered] struct {
	canvas *Canvas[L]
}

// NewUICanvas wraps canvas for UI drawing.
func NewUICanvas[L cmp.Ordered](canvas *Canvas[L]) *UICanvas[L] {
	return &UICanvas[L]{canvas: canvas}
}

// Size returns the drawable UI area in units.
func (u *UICanvas[L]) Size() geom.Pair[int] {
	return u.canvas.Size()
}

// DrawUnit draws unit at pos. pos must lie inside the canvas (checked in
// debug builds).
func (u *UICanvas[L]) DrawUnit(unit Unit, pos UIPosition, layer L) {
	u.canvas.DrawUnit(unit, pos, layer)
}

// DrawText segments text and draws it left to right starting at pos,
// stopping at the right edge of the canvas. It returns the number of units
// drawn.
func (u *UICanvas[L]) DrawText(text string, color Color, pos UIPosition, layer L) int {
	drawn := 0
	for _, unit := range Units(text, color) {
		p := geom.NewPair(pos.X+drawn, pos.Y)
		if !u.canvas.IsDrawableAt(p) {
			break
		}
		u.canvas.DrawUnit(unit, p, layer)
		drawn++
	}
	return drawn
}

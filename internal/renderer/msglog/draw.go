package msglog

import (
	"cmp"

	"github.com/dshills/gridterm/internal/debug"
	"github.com/dshills/gridterm/internal/geom"
	"github.com/dshills/gridterm/internal/renderer"
)

// DrawMessage draws the buffer into region of target on the given layer:
// a one unit border, a blank interior, and the newest lines wrapped to the
// interior width and stacked upward from the bottom row.
//
// region must be at least one unit wide (checked in debug builds) and lie
// inside the canvas. A region without interior gets the border only.
func DrawMessage[L cmp.Ordered](target *renderer.UICanvas[L], b *Buffer, region geom.Rect, layer L) {
	debug.Assert(region.Width() >= 1, "message region must be at least 1 unit wide, got %d", region.Width())

	drawBorderAndFill(target, region, b.border, layer)

	inner := region.Shrink(1)
	if inner.IsEmpty() {
		return
	}
	width := inner.Width()

	// Bottom row of the next line to lay out.
	end := inner.Bottom
	for i := b.lines.Len() - 1; i >= 0; i-- {
		line := b.lines.At(i)
		rows := max(1, divCeil(line.len(), width))
		start := end - rows + 1

		// Skip the units of rows clipped above the panel.
		first := 0
		if start < inner.Top {
			first = (inner.Top - start) * width
		}
		for j := first; j < line.len(); j++ {
			pos := geom.NewPair(inner.Left+j%width, start+j/width)
			target.DrawUnit(line.units.At(j), pos, layer)
		}

		// Older lines end above this one; once that is above the panel
		// nothing older can be visible.
		end -= rows
		if end < inner.Top {
			break
		}
	}
}

// drawBorderAndFill draws border units around region and blank units inside it.
func drawBorderAndFill[L cmp.Ordered](target *renderer.UICanvas[L], region geom.Rect, border renderer.Unit, layer L) {
	blank := renderer.BlankUnit()
	for row := region.Top; row <= region.Bottom; row++ {
		horizontal := row == region.Top || row == region.Bottom
		for col := region.Left; col <= region.Right; col++ {
			unit := blank
			if horizontal || col == region.Left || col == region.Right {
				unit = border
			}
			target.DrawUnit(unit, geom.NewPair(col, row), layer)
		}
	}
}

// divCeil returns x / y rounded up. y must be positive.
func divCeil(x, y int) int {
	if debug.Enabled {
		debug.Assert(y > 0, "divCeil by %d", y)
	}
	return x/y + min(1, x%y)
}

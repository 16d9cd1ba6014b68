package geom

// Rect is an axis-aligned rectangle with inclusive corners.
// A Rect whose Right < Left or Bottom < Top is empty.
type Rect struct {
	Left, Top, Right, Bottom int
}

// FromCorners creates the rectangle spanning two opposite corners.
// The corners may be given in any order.
func FromCorners(a, b Pair[int]) Rect {
	return Rect{
		Left:   min(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Right:  max(a.X, b.X),
		Bottom: max(a.Y, b.Y),
	}
}

// RectFromSize creates a rectangle from its top-left corner and size.
// A zero width or height yields an empty rectangle.
func RectFromSize(left, top, width, height int) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width - 1,
		Bottom: top + height - 1,
	}
}

// Width returns the number of columns covered, 0 if empty.
func (r Rect) Width() int {
	return max(0, r.Right-r.Left+1)
}

// Height returns the number of rows covered, 0 if empty.
func (r Rect) Height() int {
	return max(0, r.Bottom-r.Top+1)
}

// IsEmpty returns true if the rectangle covers no cell.
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Pair[int] {
	return Pair[int]{X: r.Left, Y: r.Top}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Pair[int] {
	return Pair[int]{X: r.Right, Y: r.Bottom}
}

// Contains returns true if p lies inside the rectangle.
func (r Rect) Contains(p Pair[int]) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Shrink returns the rectangle inset by n cells on every side.
// The result may be empty.
func (r Rect) Shrink(n int) Rect {
	return Rect{
		Left:   r.Left + n,
		Top:    r.Top + n,
		Right:  r.Right - n,
		Bottom: r.Bottom - n,
	}
}

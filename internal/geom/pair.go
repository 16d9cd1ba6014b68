package geom

import "fmt"

// Integer is the set of integer types a Pair can hold.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Pair is a 2-D integer coordinate or size.
type Pair[T Integer] struct {
	X, Y T
}

// NewPair creates a pair.
func NewPair[T Integer](x, y T) Pair[T] {
	return Pair[T]{X: x, Y: y}
}

// Add returns the component-wise sum. It wraps on overflow; use CheckedAdd
// when the operands are untrusted.
func (p Pair[T]) Add(o Pair[T]) Pair[T] {
	return Pair[T]{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference. It wraps on overflow; use
// CheckedSub when the operands are untrusted.
func (p Pair[T]) Sub(o Pair[T]) Pair[T] {
	return Pair[T]{X: p.X - o.X, Y: p.Y - o.Y}
}

// Less reports whether both components of p are strictly less than o's.
func (p Pair[T]) Less(o Pair[T]) bool {
	return p.X < o.X && p.Y < o.Y
}

// String returns "(x, y)".
func (p Pair[T]) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

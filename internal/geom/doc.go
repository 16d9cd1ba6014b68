// Package geom provides the small integer geometry used by the renderer:
// coordinate pairs, inclusive rectangles and checked integer conversions.
//
// Conversions never wrap. A conversion or addition that does not fit the
// destination type reports ok == false, which callers treat as "no result".
package geom

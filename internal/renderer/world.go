package renderer

import (
	"cmp"

	"github.com/dshills/gridterm/internal/geom"
)

// WorldPosition is a signed, unbounded game-field coordinate.
type WorldPosition = geom.Pair[int64]

// Reference anchors the world to the canvas: its world position is drawn at
// its canvas position, and every other world position is translated by the
// same offset.
type Reference struct {
	canvas Position
	world  WorldPosition
}

// NewReference creates a reference drawing world at canvas.
func NewReference(canvas Position, world WorldPosition) Reference {
	return Reference{canvas: canvas, world: world}
}

// CanvasPosition returns the anchor on the canvas.
func (r Reference) CanvasPosition() Position {
	return r.canvas
}

// WorldPosition returns the anchor in the world.
func (r Reference) WorldPosition() WorldPosition {
	return r.world
}

// Project returns the canvas position of world. ok is false when the result
// falls outside bounds or is not representable as a canvas coordinate;
// either case simply means the position is not visible.
func (r Reference) Project(world WorldPosition, bounds Bounds) (Position, bool) {
	offset, ok := geom.CheckedSub(world, r.world)
	if !ok {
		return Position{}, false
	}
	anchor, ok := geom.Cast[int64](r.canvas)
	if !ok {
		return Position{}, false
	}
	candidate, ok := geom.CheckedAdd(offset, anchor)
	if !ok {
		return Position{}, false
	}
	pos, ok := geom.Cast[int](candidate)
	if !ok || !bounds.IsDrawableAt(pos) {
		return Position{}, false
	}
	return pos, true
}

// WorldCanvas draws game-field objects onto a canvas through a Reference.
type WorldCanvas[L cmp.Ordered] struct {
	canvas    *Canvas[L]
	reference Reference
}

// NewWorldCanvas wraps canvas for drawing in world coordinates.
func NewWorldCanvas[L cmp.Ordered](canvas *Canvas[L], reference Reference) *WorldCanvas[L] {
	return &WorldCanvas[L]{canvas: canvas, reference: reference}
}

// Reference returns the projection in use.
func (w *WorldCanvas[L]) Reference() Reference {
	return w.reference
}

// Project returns the canvas position of a world position, if visible.
func (w *WorldCanvas[L]) Project(world WorldPosition) (Position, bool) {
	return w.reference.Project(world, w.canvas)
}

// DrawUnit draws unit at a world position. Positions that do not project
// onto the canvas are ignored.
func (w *WorldCanvas[L]) DrawUnit(unit Unit, world WorldPosition, layer L) {
	if pos, ok := w.Project(world); ok {
		w.canvas.DrawUnit(unit, pos, layer)
	}
}

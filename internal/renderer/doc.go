// Package renderer provides the frame compositor for the console game.
//
// The renderer is responsible for:
//   - Segmenting text into square Units (one full-width glyph or two half-width glyphs)
//   - Compositing Units into a fixed-size Canvas with per-cell layers
//   - Projecting world coordinates onto the canvas through a Reference
//   - Serializing the finished frame, with borders and ANSI colour, to an io.Writer
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│   WorldCanvas (projection)  UICanvas    │
//	├─────────────────────────────────────────┤
//	│         Canvas[L] (layered slots)       │
//	├─────────────────────────────────────────┤
//	│   io.Writer (stream) │ backend (tcell)  │
//	└─────────────────────────────────────────┘
//
// Every frame follows the same sequence:
//
//	canvas.Clear()
//	world := renderer.NewWorldCanvas(canvas, renderer.NewReference(center, player))
//	world.DrawUnit(renderer.FullUnit('壁', renderer.ColorWhite), wallPos, 0)
//	log.DrawMessage(renderer.NewUICanvas(canvas), region, 10)
//	canvas.WriteTo(os.Stdout)
//
// Contract violations (malformed glyphs, out-of-bounds draws) panic in
// default builds and are not checked under the "release" build tag; see
// package debug.
package renderer

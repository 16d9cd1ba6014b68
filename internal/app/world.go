package app

import (
	"strings"

	"github.com/dshills/gridterm/internal/geom"
	"github.com/dshills/gridterm/internal/renderer"
)

// Direction is a unit step in world space. Y grows downward.
type Direction struct {
	Name  string
	Delta renderer.WorldPosition
}

// Compass directions.
var (
	North = Direction{Name: "north", Delta: geom.NewPair[int64](0, -1)}
	South = Direction{Name: "south", Delta: geom.NewPair[int64](0, 1)}
	West  = Direction{Name: "west", Delta: geom.NewPair[int64](-1, 0)}
	East  = Direction{Name: "east", Delta: geom.NewPair[int64](1, 0)}
)

// defaultMap is the starting area. '#' is a wall, '@' the player start.
// Anything outside the map is open floor.
const defaultMap = `
##########################
#........................#
#...####.........####....#
#...#...............#....#
#...#......@........#....#
#...#...............#....#
#...####.........####....#
#........................#
#########....#############
`

// World holds the walls and the player.
type World struct {
	player renderer.WorldPosition
	walls  map[renderer.WorldPosition]struct{}
}

// NewWorld creates the starting world.
func NewWorld() *World {
	return ParseWorld(defaultMap)
}

// ParseWorld builds a world from a text map. Each rune is one cell; '#'
// marks a wall and '@' the player start. Leading blank lines are ignored.
func ParseWorld(text string) *World {
	w := &World{walls: make(map[renderer.WorldPosition]struct{})}
	lines := strings.Split(strings.TrimLeft(text, "\n"), "\n")
	for y, line := range lines {
		x := int64(0)
		for _, r := range line {
			pos := geom.NewPair(x, int64(y))
			switch r {
			case '#':
				w.walls[pos] = struct{}{}
			case '@':
				w.player = pos
			}
			x++
		}
	}
	return w
}

// Player returns the player position.
func (w *World) Player() renderer.WorldPosition {
	return w.player
}

// IsWall reports whether pos holds a wall.
func (w *World) IsWall(pos renderer.WorldPosition) bool {
	_, ok := w.walls[pos]
	return ok
}

// Walls calls fn for every wall.
func (w *World) Walls(fn func(pos renderer.WorldPosition)) {
	for pos := range w.walls {
		fn(pos)
	}
}

// Move steps the player in dir. It returns false, leaving the player in
// place, when a wall is in the way or the step would overflow.
func (w *World) Move(dir Direction) bool {
	next, ok := geom.CheckedAdd(w.player, dir.Delta)
	if !ok || w.IsWall(next) {
		return false
	}
	w.player = next
	return true
}

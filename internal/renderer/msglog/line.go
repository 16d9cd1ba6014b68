package msglog

import (
	"github.com/gammazero/deque"

	"github.com/dshills/gridterm/internal/debug"
	"github.com/dshills/gridterm/internal/renderer"
)

// Line is a snapshot of one message line.
type Line struct {
	Units    []renderer.Unit
	Growable bool
}

// Text returns the unstyled text of the line.
func (l Line) Text() string {
	return renderer.TextOf(l.Units)
}

// messageLine is one line of history. Units beyond capacity push the oldest
// units out of the front.
type messageLine struct {
	units    deque.Deque[renderer.Unit]
	growable bool
	capacity int
}

// newGrowableLine returns an empty line that accepts up to capacity units.
func newGrowableLine(capacity int) *messageLine {
	return &messageLine{growable: true, capacity: capacity}
}

// newSealedLine returns an empty line that accepts nothing.
func newSealedLine() *messageLine {
	return &messageLine{}
}

func (l *messageLine) len() int {
	return l.units.Len()
}

// append adds units to the end of the line, evicting from the front.
// The line must be growable.
func (l *messageLine) append(units []renderer.Unit) {
	debug.Assert(l.growable, "append to a sealed message line")
	if l.capacity <= 0 {
		return
	}
	for _, u := range units {
		if l.units.Len() == l.capacity {
			l.units.PopFront()
		}
		l.units.PushBack(u)
	}
}

// seal stops the line from accepting more text. The line must be growable.
func (l *messageLine) seal() {
	debug.Assert(l.growable, "seal of an already sealed message line")
	l.growable = false
}

func (l *messageLine) snapshot() Line {
	units := make([]renderer.Unit, l.units.Len())
	for i := range units {
		units[i] = l.units.At(i)
	}
	return Line{Units: units, Growable: l.growable}
}

// Package backend presents canvas frames on a full-screen terminal.
//
// Terminal draws frames through tcell and reads keys from tcell events. The
// screen is reached through the Screen interface, which tcell.Screen
// satisfies, so frames can be presented to a fake in tests.
package backend

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridterm/internal/renderer"
)

// Errors
var (
	ErrClosed = errors.New("terminal closed")
)

// Screen is the subset of tcell.Screen used by Terminal.
type Screen interface {
	Init() error
	Fini()
	Clear()
	Show()
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
}

// Frame is a finished canvas ready to be presented.
// *renderer.Canvas implements it.
type Frame interface {
	UnitAt(pos renderer.Position) renderer.Unit
}

// Columns is the number of terminal columns a presented frame occupies.
const Columns = renderer.DrawnWidth * 2

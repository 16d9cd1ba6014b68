package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridterm/internal/geom"
	"github.com/dshills/gridterm/internal/input/key"
	"github.com/dshills/gridterm/internal/renderer"
)

// Terminal presents frames on a tcell screen and reads keys from it.
type Terminal struct {
	screen Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal on the process TTY.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a terminal on an existing screen.
func NewTerminalWithScreen(screen Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init takes over the terminal.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Present draws frame with the same border layout as Canvas.WriteTo, then
// shows it. Each unit takes two terminal columns.
func (t *Terminal) Present(frame Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()

	for x := range renderer.DrawnWidth {
		t.setUnit(x, 0, renderer.BorderTop)
		t.setUnit(x, renderer.DrawnHeight-1, renderer.BorderBottom)
	}
	for y := range renderer.CanvasHeight {
		t.setUnit(0, y+1, renderer.BorderLeft)
		for x := range renderer.CanvasWidth {
			t.setUnit(x+1, y+1, frame.UnitAt(geom.NewPair(x, y)))
		}
		t.setUnit(renderer.DrawnWidth-1, y+1, renderer.BorderRight)
	}

	t.screen.Show()
}

// setUnit draws u at unit column x of screen row y.
func (t *Terminal) setUnit(x, y int, u renderer.Unit) {
	style := convertColor(u.Color())
	left, right := u.Runes()
	t.screen.SetContent(x*2, y, left, nil, style)
	if !u.IsFull() {
		t.screen.SetContent(x*2+1, y, right, nil, style)
	}
}

// ReadKey blocks until a key event arrives. Resizes and Wake calls return
// a KeyNone event so the caller redraws. Other events are skipped.
// It returns ErrClosed once the screen is finalized.
func (t *Terminal) ReadKey() (key.Event, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return key.Event{}, ErrClosed
		case *tcell.EventKey:
			if out, ok := convertKeyEvent(ev); ok {
				return out, nil
			}
		case *tcell.EventInterrupt, *tcell.EventResize:
			return key.Event{}, nil
		}
	}
}

// Wake makes a blocked ReadKey return a KeyNone event.
func (t *Terminal) Wake() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; the queue may be full
}

// convertColor converts a palette colour to a tcell foreground style.
func convertColor(c renderer.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(int(c.ANSI())))
}

// convertKeyEvent converts a tcell key event. Keys with no equivalent
// report false.
func convertKeyEvent(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())

	switch k := e.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := rune('a' + (k - tcell.KeyCtrlA))
			return key.NewRuneEvent(r, mods|key.ModCtrl), true
		}
		return key.Event{}, false
	}
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= key.ModAlt
	}
	return result
}

package app

import (
	"io"
	"strings"
	"unicode"

	"github.com/dshills/gridterm/internal/config"
	"github.com/dshills/gridterm/internal/geom"
	"github.com/dshills/gridterm/internal/renderer"
	"github.com/dshills/gridterm/internal/renderer/backend"
	"github.com/dshills/gridterm/internal/renderer/msglog"
)

// Presenter shows a finished frame.
type Presenter interface {
	Present(frame *renderer.Canvas[Layer]) error
}

// StreamPresenter writes each frame as text to w.
type StreamPresenter struct {
	w io.Writer
}

// NewStreamPresenter creates a presenter writing to w.
func NewStreamPresenter(w io.Writer) *StreamPresenter {
	return &StreamPresenter{w: w}
}

// Present implements Presenter. A failed write is returned as an
// *OperationError wrapping the writer's error.
func (p *StreamPresenter) Present(frame *renderer.Canvas[Layer]) error {
	if _, err := frame.WriteTo(p.w); err != nil {
		return NewOperationError("write frame", "", err)
	}
	return nil
}

// ScreenPresenter draws each frame on a full-screen terminal.
type ScreenPresenter struct {
	term *backend.Terminal
}

// NewScreenPresenter creates a presenter on term.
func NewScreenPresenter(term *backend.Terminal) *ScreenPresenter {
	return &ScreenPresenter{term: term}
}

// Present implements Presenter.
func (p *ScreenPresenter) Present(frame *renderer.Canvas[Layer]) error {
	p.term.Present(frame)
	return nil
}

// drawFrame renders the current state and presents it.
func (app *Application) drawFrame() error {
	app.canvas.Clear()

	panel := app.messageRegion()
	app.drawWorld(panel)
	ui := renderer.NewUICanvas(app.canvas)
	msglog.DrawMessage(ui, app.messages, panel, app.cfg.Messages.Layer)
	if app.pending != "" {
		app.drawPrompt(ui, panel)
	}

	if err := app.presenter.Present(app.canvas); err != nil {
		return err
	}
	app.frames++
	return nil
}

// drawPrompt echoes the text being typed on the panel's top border,
// between its corners. Text too long to fit shows its end.
func (app *Application) drawPrompt(ui *renderer.UICanvas[Layer], panel geom.Rect) {
	units := renderer.Units(":"+app.pending, app.cfg.Messages.TextColor)
	room := max(0, panel.Width()-2)
	if len(units) > room {
		units = units[len(units)-room:]
	}
	for i, u := range units {
		ui.DrawUnit(u, geom.NewPair(panel.Left+1+i, panel.Top), app.cfg.Messages.Layer+1)
	}
}

// messageRegion is the bottom panel holding the message log.
func (app *Application) messageRegion() geom.Rect {
	rows := app.cfg.Frame.MessageRows
	return geom.RectFromSize(0, renderer.CanvasHeight-rows, renderer.CanvasWidth, rows)
}

// drawWorld draws walls and the player, centred in the area above panel.
func (app *Application) drawWorld(panel geom.Rect) {
	anchor := geom.NewPair(renderer.CanvasWidth/2, panel.Top/2)
	wc := renderer.NewWorldCanvas(app.canvas, renderer.NewReference(anchor, app.world.Player()))

	wall := glyphUnit(app.cfg.World.WallGlyph, app.cfg.World.WallColor)
	app.world.Walls(func(pos renderer.WorldPosition) {
		// walls behind the panel are hidden by its higher layer
		wc.DrawUnit(wall, pos, LayerWall)
	})
	wc.DrawUnit(glyphUnit(app.cfg.World.PlayerGlyph, app.cfg.World.PlayerColor), app.world.Player(), LayerPlayer)
}

// glyphUnit converts a validated config glyph to its unit.
func glyphUnit(glyph string, color renderer.Color) renderer.Unit {
	units := renderer.Units(glyph, color)
	if len(units) == 0 {
		return renderer.BlankUnit()
	}
	return units[0]
}

// borderUnit returns the message panel border for cfg.
func borderUnit(cfg *config.Config) renderer.Unit {
	if !cfg.Messages.Border {
		return renderer.BlankUnit()
	}
	return renderer.HalfUnit('=', '=', cfg.Messages.BorderColor)
}

// sanitize replaces runes that cannot be drawn as units with '?'.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return '?'
		}
		if w := renderer.RuneWidth(r); w != 1 && w != 2 {
			return '?'
		}
		return r
	}, strings.TrimSpace(s))
}

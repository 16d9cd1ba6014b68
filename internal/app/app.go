// Package app runs the gridterm game loop.
//
// Each frame the canvas is cleared, the world is drawn around the player
// through a WorldCanvas, the message log is drawn in the bottom rows
// through a UICanvas, and the finished canvas goes to a Presenter. The loop
// then blocks for one key and handles it. Config reloads received on
// Options.Reloads are applied before the next frame.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/gridterm/internal/config"
	"github.com/dshills/gridterm/internal/input"
	"github.com/dshills/gridterm/internal/input/key"
	"github.com/dshills/gridterm/internal/input/keymap"
	"github.com/dshills/gridterm/internal/renderer"
	"github.com/dshills/gridterm/internal/renderer/msglog"
)

// Layer orders draws on the canvas. Higher layers win.
type Layer = int

// World layers. The message panel uses messages.layer, which config keeps
// at or above config.MinMessageLayer.
const (
	LayerWall   Layer = 1
	LayerPlayer Layer = 2
)

// Options configures the application.
type Options struct {
	// Config holds the starting settings. Defaults to config.Default().
	Config *config.Config

	// Keys is the key source. Required.
	Keys input.KeyReader

	// Lines reads text for the say command. Defaults to a KeyLineReader
	// over Keys that echoes pending text in the message log.
	Lines input.LineReader

	// Presenter shows finished frames. Required.
	Presenter Presenter

	// Reloads delivers configs to apply between frames. Optional.
	Reloads <-chan *config.Config

	// Wake, if set, makes a blocked Keys.ReadKey return. Run calls it when
	// its context is cancelled so shutdown does not wait for a key press.
	Wake func()

	// Logger defaults to the application-wide logger.
	Logger *Logger

	// World defaults to NewWorld().
	World *World
}

// Application runs the frame loop.
type Application struct {
	cfg       *config.Config
	keys      input.KeyReader
	lines     input.LineReader
	presenter Presenter
	reloads   <-chan *config.Config
	wake      func()
	logger    *Logger
	session   string

	keymap   *keymap.Keymap
	canvas   *renderer.Canvas[Layer]
	world    *World
	messages *msglog.Buffer
	pending  string
	frames   int

	// ctx is the context of the active Run.
	ctx     context.Context
	running atomic.Bool
}

// New creates an application.
func New(opts Options) (*Application, error) {
	if opts.Keys == nil {
		return nil, fmt.Errorf("%w: no key reader", ErrInitialization)
	}
	if opts.Presenter == nil {
		return nil, fmt.Errorf("%w: no presenter", ErrInitialization)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	km := keymap.Default()
	if err := km.Apply(cfg.Keys); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	session := uuid.New().String()
	logger := opts.Logger
	if logger == nil {
		logger = GetLogger()
	}
	logger = logger.WithField("session", session)
	logger.SetLevel(ParseLogLevel(cfg.Log.Level))

	app := &Application{
		cfg:       cfg.Clone(),
		keys:      opts.Keys,
		lines:     opts.Lines,
		presenter: opts.Presenter,
		reloads:   opts.Reloads,
		wake:      opts.Wake,
		logger:    logger,
		session:   session,
		keymap:    km,
		canvas:    renderer.NewCanvas[Layer](),
		world:     opts.World,
	}
	if app.world == nil {
		app.world = NewWorld()
	}
	if app.lines == nil {
		lines := input.NewKeyLineReader(opts.Keys, app.setPending)
		lines.SetCheck(app.cancelled)
		app.lines = lines
	}
	app.messages = msglog.New(cfg.Messages.MaxLines, cfg.Messages.MaxLength, borderUnit(cfg))
	app.announce("Welcome to gridterm.")
	app.announce("Arrows or hjkl move, : speaks, q quits.")

	return app, nil
}

// Session returns the id of this run.
func (app *Application) Session() string {
	return app.session
}

// Config returns the active settings.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// World returns the game world.
func (app *Application) World() *World {
	return app.world
}

// Messages returns the message log.
func (app *Application) Messages() *msglog.Buffer {
	return app.messages
}

// Frames returns the number of frames presented.
func (app *Application) Frames() int {
	return app.frames
}

// Run draws frames and handles keys until the player quits, input ends, or
// ctx is cancelled. Quitting and end of input return ErrQuit. Cancelling
// ctx calls Options.Wake so a blocked key read does not hold Run open.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.ctx = ctx
	if app.wake != nil {
		stop := context.AfterFunc(ctx, app.wake)
		defer stop()
	}

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("frame loop panicked: %v", r)
		}
	}()

	app.logger.Info("running in %s mode", app.cfg.Frame.Mode)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		app.applyReloads()
		if err := app.drawFrame(); err != nil {
			app.logger.Error("%v", err)
			return err
		}

		ev, err := app.keys.ReadKey()
		if err := app.cancelled(); err != nil {
			return err
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				app.logger.Info("input closed")
				return ErrQuit
			}
			return NewOperationError("read key", "", err)
		}
		if err := app.handleKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit after %d frames", app.frames)
			}
			return err
		}
	}
}

// handleKey dispatches one key through the keymap.
func (app *Application) handleKey(ev key.Event) error {
	if ev.Key == key.KeyNone {
		return nil
	}

	action, ok := app.keymap.Lookup(ev)
	if !ok {
		app.logger.Debug("unbound key %s", ev)
		return nil
	}
	app.logger.Debug("key %s -> %s", ev, action)

	switch action {
	case keymap.ActionMoveUp:
		app.move(North)
	case keymap.ActionMoveDown:
		app.move(South)
	case keymap.ActionMoveLeft:
		app.move(West)
	case keymap.ActionMoveRight:
		app.move(East)
	case keymap.ActionSay:
		return app.say()
	case keymap.ActionNewline:
		app.messages.AddNewline()
	case keymap.ActionClearLog:
		app.messages.Clear()
	case keymap.ActionQuit:
		return ErrQuit
	}
	return nil
}

func (app *Application) move(dir Direction) {
	if !app.world.Move(dir) {
		app.announce("A wall blocks the way " + dir.Name + ".")
		return
	}
	app.announce("You move " + dir.Name + ".")
	app.logger.Debug("player at %s", app.world.Player())
}

// announce logs a complete line of its own, ending any line being spoken.
func (app *Application) announce(text string) {
	if n := app.messages.Len(); n > 0 && app.messages.Line(n-1).Growable {
		app.messages.AddNewline()
	}
	app.messages.AddLine(text, app.cfg.Messages.TextColor)
}

// say reads a line and appends it to the current message line.
func (app *Application) say() error {
	defer app.setPending("")

	text, err := input.ParseLine(app.lines, input.Text)
	if cerr := app.cancelled(); cerr != nil {
		return cerr
	}
	switch {
	case errors.Is(err, input.ErrInterrupted):
		return nil
	case errors.Is(err, io.EOF):
		return ErrQuit
	case err != nil:
		return NewOperationError("read line", "", err)
	}

	if text = sanitize(text); text != "" {
		app.messages.AddText(text, app.cfg.Messages.TextColor)
	}
	return nil
}

// cancelled returns the error of the active Run's context, if done.
func (app *Application) cancelled() error {
	if app.ctx == nil {
		return nil
	}
	return app.ctx.Err()
}

// setPending records text being typed and redraws so it is echoed.
func (app *Application) setPending(text string) {
	app.pending = sanitize(text)
	if text == "" {
		return
	}
	if err := app.drawFrame(); err != nil {
		app.logger.Warn("echo failed: %v", err)
	}
}

// applyReloads applies every pending config without blocking.
func (app *Application) applyReloads() {
	if app.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-app.reloads:
			if !ok {
				app.reloads = nil
				return
			}
			app.applyConfig(cfg)
		default:
			return
		}
	}
}

// applyConfig switches to cfg. Settings that size the message buffer only
// take effect on restart.
func (app *Application) applyConfig(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		app.logger.Warn("ignoring invalid config: %v", err)
		return
	}
	km := keymap.Default()
	if err := km.Apply(cfg.Keys); err != nil {
		app.logger.Warn("ignoring config with bad keys: %v", err)
		return
	}

	if cfg.Messages.MaxLines != app.cfg.Messages.MaxLines || cfg.Messages.MaxLength != app.cfg.Messages.MaxLength {
		app.logger.Info("message buffer size changes apply on restart")
	}
	if cfg.Frame.Mode != app.cfg.Frame.Mode {
		app.logger.Info("frame mode changes apply on restart")
	}

	next := cfg.Clone()
	next.Messages.MaxLines = app.cfg.Messages.MaxLines
	next.Messages.MaxLength = app.cfg.Messages.MaxLength
	next.Frame.Mode = app.cfg.Frame.Mode

	app.cfg = next
	app.keymap = km
	app.logger.SetLevel(ParseLogLevel(next.Log.Level))
	app.messages.SetBorder(borderUnit(next))
	app.logger.Info("config reloaded")
}

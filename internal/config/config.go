package config

import (
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/gridterm/internal/input/keymap"
	"github.com/dshills/gridterm/internal/renderer"
)

// Frame modes.
const (
	ModeStream = "stream"
	ModeScreen = "screen"
)

// MinMessageLayer is the lowest layer the message panel may use. World
// layers sit below it.
const MinMessageLayer = 3

// LogLevels lists the accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all gridterm settings.
type Config struct {
	Log      LogConfig         `toml:"log" yaml:"log"`
	Messages MessagesConfig    `toml:"messages" yaml:"messages"`
	Frame    FrameConfig       `toml:"frame" yaml:"frame"`
	World    WorldConfig       `toml:"world" yaml:"world"`
	Keys     map[string]string `toml:"keys,omitempty" yaml:"keys,omitempty"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level is one of LogLevels.
	Level string `toml:"level" yaml:"level"`
	// File is the log destination. Empty means stderr.
	File string `toml:"file,omitempty" yaml:"file,omitempty"`
}

// MessagesConfig configures the message log panel.
type MessagesConfig struct {
	MaxLines    int            `toml:"max_lines" yaml:"max_lines"`
	MaxLength   int            `toml:"max_length" yaml:"max_length"`
	Border      bool           `toml:"border" yaml:"border"`
	BorderColor renderer.Color `toml:"border_color" yaml:"border_color"`
	TextColor   renderer.Color `toml:"text_color" yaml:"text_color"`
	Layer       int            `toml:"layer" yaml:"layer"`
}

// FrameConfig configures how frames are presented.
type FrameConfig struct {
	// Mode is ModeStream (frames written to stdout) or ModeScreen (tcell).
	Mode string `toml:"mode" yaml:"mode"`
	// MessageRows is the height of the message panel, borders included.
	MessageRows int `toml:"message_rows" yaml:"message_rows"`
}

// WorldConfig configures how the world is drawn.
type WorldConfig struct {
	PlayerGlyph string         `toml:"player_glyph" yaml:"player_glyph"`
	PlayerColor renderer.Color `toml:"player_color" yaml:"player_color"`
	WallGlyph   string         `toml:"wall_glyph" yaml:"wall_glyph"`
	WallColor   renderer.Color `toml:"wall_color" yaml:"wall_color"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Messages: MessagesConfig{
			MaxLines:    32,
			MaxLength:   76,
			Border:      true,
			BorderColor: renderer.ColorWhite,
			TextColor:   renderer.ColorWhite,
			Layer:       10,
		},
		Frame: FrameConfig{
			Mode:        ModeStream,
			MessageRows: 8,
		},
		World: WorldConfig{
			PlayerGlyph: "@",
			PlayerColor: renderer.ColorYellow,
			WallGlyph:   "#",
			WallColor:   renderer.ColorBlue,
		},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Keys = maps.Clone(c.Keys)
	return &out
}

// Validate checks every setting and returns the first failure as a
// *ValidationError.
func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, c.Log.Level) {
		return &ValidationError{Path: "log.level", Message: "unknown log level", Value: c.Log.Level, Code: ErrCodeInvalidEnum}
	}
	if c.Messages.MaxLines < 1 {
		return &ValidationError{Path: "messages.max_lines", Message: "must be at least 1", Value: c.Messages.MaxLines, Code: ErrCodeOutOfRange}
	}
	if c.Messages.MaxLength < 0 {
		return &ValidationError{Path: "messages.max_length", Message: "must not be negative", Value: c.Messages.MaxLength, Code: ErrCodeOutOfRange}
	}
	if c.Messages.Layer < MinMessageLayer {
		return &ValidationError{Path: "messages.layer", Message: "must be above the world layers", Value: c.Messages.Layer, Code: ErrCodeOutOfRange}
	}
	for _, field := range []struct {
		path  string
		color renderer.Color
	}{
		{"messages.border_color", c.Messages.BorderColor},
		{"messages.text_color", c.Messages.TextColor},
		{"world.player_color", c.World.PlayerColor},
		{"world.wall_color", c.World.WallColor},
	} {
		if !field.color.IsValid() {
			return &ValidationError{Path: field.path, Message: "unknown colour", Value: field.color, Code: ErrCodeInvalidEnum, Err: renderer.ErrUnknownColor}
		}
	}
	if c.Frame.Mode != ModeStream && c.Frame.Mode != ModeScreen {
		return &ValidationError{Path: "frame.mode", Message: "must be stream or screen", Value: c.Frame.Mode, Code: ErrCodeInvalidEnum}
	}
	if c.Frame.MessageRows < 3 || c.Frame.MessageRows > renderer.CanvasHeight {
		return &ValidationError{Path: "frame.message_rows", Message: "must leave room for a bordered panel inside the canvas", Value: c.Frame.MessageRows, Code: ErrCodeOutOfRange}
	}
	if !isUnitGlyph(c.World.PlayerGlyph) {
		return &ValidationError{Path: "world.player_glyph", Message: "must fill exactly one unit", Value: c.World.PlayerGlyph, Code: ErrCodeInvalidGlyph}
	}
	if !isUnitGlyph(c.World.WallGlyph) {
		return &ValidationError{Path: "world.wall_glyph", Message: "must fill exactly one unit", Value: c.World.WallGlyph, Code: ErrCodeInvalidGlyph}
	}
	if err := keymap.Default().Apply(c.Keys); err != nil {
		return &ValidationError{Path: "keys", Message: err.Error(), Value: c.Keys, Code: ErrCodeInvalidBinding, Err: err}
	}
	return nil
}

// isUnitGlyph reports whether s is one full-width rune or one or two
// half-width printable runes.
func isUnitGlyph(s string) bool {
	switch utf8.RuneCountInString(s) {
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return unicode.IsPrint(r) && renderer.RuneWidth(r) >= 1
	case 2:
		for _, r := range s {
			if !unicode.IsPrint(r) || renderer.RuneWidth(r) != 1 {
				return false
			}
		}
		return true
	}
	return false
}

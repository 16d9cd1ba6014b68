package config

import (
	"errors"
	"testing"

	"github.com/dshills/gridterm/internal/input/keymap"
	"github.com/dshills/gridterm/internal/renderer"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		path   string
		code   ValidationErrorCode
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level", ErrCodeInvalidEnum},
		{"max lines", func(c *Config) { c.Messages.MaxLines = 0 }, "messages.max_lines", ErrCodeOutOfRange},
		{"max length", func(c *Config) { c.Messages.MaxLength = -1 }, "messages.max_length", ErrCodeOutOfRange},
		{"layer", func(c *Config) { c.Messages.Layer = MinMessageLayer - 1 }, "messages.layer", ErrCodeOutOfRange},
		{"text color", func(c *Config) { c.Messages.TextColor = renderer.Color(99) }, "messages.text_color", ErrCodeInvalidEnum},
		{"mode", func(c *Config) { c.Frame.Mode = "window" }, "frame.mode", ErrCodeInvalidEnum},
		{"rows too small", func(c *Config) { c.Frame.MessageRows = 2 }, "frame.message_rows", ErrCodeOutOfRange},
		{"rows too large", func(c *Config) { c.Frame.MessageRows = renderer.CanvasHeight + 1 }, "frame.message_rows", ErrCodeOutOfRange},
		{"empty glyph", func(c *Config) { c.World.PlayerGlyph = "" }, "world.player_glyph", ErrCodeInvalidGlyph},
		{"wide plus narrow", func(c *Config) { c.World.PlayerGlyph = "あa" }, "world.player_glyph", ErrCodeInvalidGlyph},
		{"three runes", func(c *Config) { c.World.WallGlyph = "###" }, "world.wall_glyph", ErrCodeInvalidGlyph},
		{"control glyph", func(c *Config) { c.World.WallGlyph = "\t" }, "world.wall_glyph", ErrCodeInvalidGlyph},
		{"bad binding", func(c *Config) { c.Keys = map[string]string{"x": "fly"} }, "keys", ErrCodeInvalidBinding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Path != tt.path {
				t.Errorf("expected path %q, got %q", tt.path, verr.Path)
			}
			if verr.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, verr.Code)
			}
		})
	}
}

func TestValidateGlyphs(t *testing.T) {
	for _, glyph := range []string{"@", "<>", "あ"} {
		cfg := Default()
		cfg.World.PlayerGlyph = glyph
		if err := cfg.Validate(); err != nil {
			t.Errorf("%q: expected valid glyph, got %v", glyph, err)
		}
	}
}

func TestValidateBindingUnwraps(t *testing.T) {
	cfg := Default()
	cfg.Keys = map[string]string{"x": "fly"}
	if err := cfg.Validate(); !errors.Is(err, keymap.ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction in chain, got %v", err)
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	cfg.Keys = map[string]string{"w": "move.up"}

	c := cfg.Clone()
	c.Keys["w"] = "move.down"
	c.Log.Level = "debug"

	if cfg.Keys["w"] != "move.up" {
		t.Errorf("expected original keys unchanged, got %q", cfg.Keys["w"])
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected original level unchanged, got %q", cfg.Log.Level)
	}
}

func TestValidationErrorCodeString(t *testing.T) {
	if got := ErrCodeInvalidGlyph.String(); got != "invalid_glyph" {
		t.Errorf("expected invalid_glyph, got %q", got)
	}
	if got := ValidationErrorCode(200).String(); got != "unknown" {
		t.Errorf("expected unknown, got %q", got)
	}
}

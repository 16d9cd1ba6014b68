package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/gridterm/internal/renderer"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRIDTERM_"

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envSetter applies one environment value to a config.
type envSetter func(c *Config, value string) error

// envMapping maps GRIDTERM_* names (without prefix) to setters.
var envMapping = map[string]envSetter{
	"LOG_LEVEL":             setString(func(c *Config) *string { return &c.Log.Level }),
	"LOG_FILE":              setString(func(c *Config) *string { return &c.Log.File }),
	"MESSAGES_MAX_LINES":    setInt(func(c *Config) *int { return &c.Messages.MaxLines }),
	"MESSAGES_MAX_LENGTH":   setInt(func(c *Config) *int { return &c.Messages.MaxLength }),
	"MESSAGES_BORDER":       setBool(func(c *Config) *bool { return &c.Messages.Border }),
	"MESSAGES_BORDER_COLOR": setColor(func(c *Config) *renderer.Color { return &c.Messages.BorderColor }),
	"MESSAGES_TEXT_COLOR":   setColor(func(c *Config) *renderer.Color { return &c.Messages.TextColor }),
	"MESSAGES_LAYER":        setInt(func(c *Config) *int { return &c.Messages.Layer }),
	"FRAME_MODE":            setString(func(c *Config) *string { return &c.Frame.Mode }),
	"FRAME_MESSAGE_ROWS":    setInt(func(c *Config) *int { return &c.Frame.MessageRows }),
	"WORLD_PLAYER_GLYPH":    setString(func(c *Config) *string { return &c.World.PlayerGlyph }),
	"WORLD_PLAYER_COLOR":    setColor(func(c *Config) *renderer.Color { return &c.World.PlayerColor }),
	"WORLD_WALL_GLYPH":      setString(func(c *Config) *string { return &c.World.WallGlyph }),
	"WORLD_WALL_COLOR":      setColor(func(c *Config) *renderer.Color { return &c.World.WallColor }),
}

// EnvNames returns every recognized environment variable, sorted.
func EnvNames() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, EnvPrefix+name)
	}
	sort.Strings(names)
	return names
}

// ApplyEnv overrides cfg with GRIDTERM_* variables found by lookup.
// Empty string values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for _, name := range EnvNames() {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		if err := envMapping[strings.TrimPrefix(name, EnvPrefix)](cfg, value); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidEnv, name, value, err)
		}
	}
	return nil
}

func setString(field func(*Config) *string) envSetter {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}

func setInt(field func(*Config) *int) envSetter {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func setBool(field func(*Config) *bool) envSetter {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

func setColor(field func(*Config) *renderer.Color) envSetter {
	return func(c *Config, v string) error {
		return field(c).UnmarshalText([]byte(strings.TrimSpace(v)))
	}
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format for path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load resolves the configuration: defaults, then the file at path, then
// GRIDTERM_* environment overrides. An empty path or a missing file leaves
// the defaults in place. The result is validated.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup LookupFunc) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := Decode(cfg, path, data); err != nil {
				return nil, err
			}
		}
	}

	if err := ApplyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses data over cfg using the format implied by path. Settings not
// present in data keep their current values.
func Decode(cfg *Config, path string, data []byte) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			pe := &ParseError{Path: path, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				pe.Line, pe.Column = derr.Position()
			}
			var serr *toml.StrictMissingError
			if errors.As(err, &serr) {
				pe.Message = serr.String()
			}
			return pe
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	}
	return nil
}

// Encode serializes cfg in the given format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

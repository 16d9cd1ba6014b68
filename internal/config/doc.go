// Package config loads gridterm settings.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← GRIDTERM_* (highest priority)
//	├─────────────────────────────┤
//	│  2. Config File             │  ← .toml, .yaml or .yml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Default()
//	└─────────────────────────────┘
//
// Command line flags are applied by the caller after Load.
//
// # Basic Usage
//
//	cfg, err := config.Load("gridterm.toml")
//	if err != nil {
//	    return err
//	}
//
// # Live Reload
//
//	w, err := config.Watch(ctx, "gridterm.toml")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	for cfg := range w.Updates() {
//	    // apply between frames
//	}
package config

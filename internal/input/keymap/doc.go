// Package keymap maps key events to game actions.
//
// Bindings are written in a readable notation:
//
//	"j"        - Single character
//	"Up"       - Named key
//	"Ctrl+C"   - Character with modifiers
//	"C-c"      - Ctrl+C (Vim notation)
//
// Default returns the standard bindings. Config files may add or replace
// bindings with Bind; later bindings for the same key win.
//
// # Usage
//
//	km := keymap.Default()
//	if action, ok := km.Lookup(ev); ok {
//	    // dispatch action
//	}
package keymap

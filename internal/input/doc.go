// Package input reads keys and lines typed by the player.
//
// KeyReader and LineReader are the interfaces the game loop depends on.
// Keyboard implements both on top of a terminal: when the input is a TTY,
// Init switches it to raw input for the whole session (output processing
// stays on), otherwise the stream is read as plain text, which is what
// tests and piped sessions use.
//
// Reads block until input arrives. Keyboard.Wake releases a read waiting
// for input, so a cancelled game loop does not wait for a key press.
package input

// Package key provides the key event types produced by the input readers.
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: modifier keys held with the key
//   - Event: a single key press
package key

// Package msglog keeps a bounded history of game messages and draws it as a
// bordered, bottom-anchored scrollback panel.
//
// Text is appended to the last line until a newline seals it. Each line
// keeps at most MaxMessageLength units and the buffer keeps at most
// MaxLineCount lines; the oldest content is evicted first.
//
// Drawing wraps every line at the panel's interior width and lays lines out
// from the bottom row upward, newest first. Rows that fall above the panel
// are clipped. Nothing about the scroll position is stored: the layout is
// recomputed on every draw.
package msglog

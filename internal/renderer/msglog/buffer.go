package msglog

import (
	"github.com/gammazero/deque"

	"github.com/dshills/gridterm/internal/debug"
	"github.com/dshills/gridterm/internal/renderer"
)

// Buffer is the message history shown in the log panel.
// At most the last line is growable; every earlier line is sealed.
type Buffer struct {
	lines            deque.Deque[*messageLine]
	maxLineCount     int
	maxMessageLength int
	border           renderer.Unit
}

// New creates an empty buffer.
//
//   - maxLineCount: lines kept; adding more drops the oldest line.
//     Must be at least 1 (checked in debug builds).
//   - maxMessageLength: units kept per line; appending more drops the
//     oldest units of that line.
//   - border: unit drawn on the panel border.
func New(maxLineCount, maxMessageLength int, border renderer.Unit) *Buffer {
	debug.Assert(maxLineCount >= 1, "message buffer needs at least 1 line, got %d", maxLineCount)
	return &Buffer{
		maxLineCount:     maxLineCount,
		maxMessageLength: maxMessageLength,
		border:           border,
	}
}

// MaxLineCount returns the number of lines kept.
func (b *Buffer) MaxLineCount() int {
	return b.maxLineCount
}

// MaxMessageLength returns the number of units kept per line.
func (b *Buffer) MaxMessageLength() int {
	return b.maxMessageLength
}

// Border returns the border unit.
func (b *Buffer) Border() renderer.Unit {
	return b.border
}

// SetBorder changes the border unit used by later draws.
func (b *Buffer) SetBorder(border renderer.Unit) {
	b.border = border
}

// Len returns the number of lines held.
func (b *Buffer) Len() int {
	return b.lines.Len()
}

// Line returns a snapshot of line i, 0 being the oldest.
func (b *Buffer) Line(i int) Line {
	return b.lines.At(i).snapshot()
}

// Lines returns snapshots of every line, oldest first.
func (b *Buffer) Lines() []Line {
	out := make([]Line, b.lines.Len())
	for i := range out {
		out[i] = b.Line(i)
	}
	return out
}

// AddText appends text to the current line, starting a new line if the last
// one is sealed. text must not contain control characters (checked in debug
// builds).
func (b *Buffer) AddText(text string, color renderer.Color) {
	units := renderer.Units(text, color)
	if last, ok := b.last(); ok && last.growable {
		last.append(units)
		return
	}
	line := newGrowableLine(b.maxMessageLength)
	line.append(units)
	b.push(line)
}

// AddNewline ends the current line. If there is no growable line an empty
// sealed line is added instead.
func (b *Buffer) AddNewline() {
	if last, ok := b.last(); ok && last.growable {
		last.seal()
		return
	}
	b.push(newSealedLine())
}

// AddLine appends text and ends the line.
func (b *Buffer) AddLine(text string, color renderer.Color) {
	b.AddText(text, color)
	b.AddNewline()
}

// Clear drops the whole history.
func (b *Buffer) Clear() {
	b.lines.Clear()
}

func (b *Buffer) last() (*messageLine, bool) {
	if b.lines.Len() == 0 {
		return nil, false
	}
	return b.lines.Back(), true
}

// push appends a line, evicting the oldest one when the buffer is full.
func (b *Buffer) push(line *messageLine) {
	for b.lines.Len() > 0 && b.lines.Len() >= b.maxLineCount {
		b.lines.PopFront()
	}
	b.lines.PushBack(line)
}

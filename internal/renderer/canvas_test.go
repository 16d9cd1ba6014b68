package renderer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/gridterm/internal/geom"
)

func TestCanvasSize(t *testing.T) {
	c := NewCanvas[int]()
	if c.Size() != geom.NewPair(38, 30) {
		t.Errorf("expected (38, 30), got %s", c.Size())
	}
	if DrawnWidth != 40 || DrawnHeight != 32 {
		t.Errorf("expected drawn size 40x32, got %dx%d", DrawnWidth, DrawnHeight)
	}
}

func TestCanvasIsDrawableAt(t *testing.T) {
	c := NewCanvas[int]()
	tests := []struct {
		pos      Position
		drawable bool
	}{
		{geom.NewPair(0, 0), true},
		{geom.NewPair(37, 29), true},
		{geom.NewPair(38, 0), false},
		{geom.NewPair(0, 30), false},
		{geom.NewPair(-1, 5), false},
	}
	for _, tt := range tests {
		if got := c.IsDrawableAt(tt.pos); got != tt.drawable {
			t.Errorf("IsDrawableAt(%s) = %v, expected %v", tt.pos, got, tt.drawable)
		}
	}
}

func TestCanvasLayering(t *testing.T) {
	pos := geom.NewPair(3, 4)
	upper := HalfUnit('u', 'p', ColorRed)
	lower := HalfUnit('l', 'o', ColorBlue)

	tests := []struct {
		name          string
		firstLayer    int
		secondLayer   int
		expectedUnit  Unit
		expectedLayer int
	}{
		{"lower does not overwrite", 1, 0, upper, 1},
		{"higher overwrites", 0, 1, lower, 1},
		{"equal overwrites", 1, 1, lower, 1},
	}

	for _, tt := range tests {
		c := NewCanvas[int]()
		c.DrawUnit(upper, pos, tt.firstLayer)
		c.DrawUnit(lower, pos, tt.secondLayer)

		u, layer, ok := c.SlotAt(pos)
		if !ok {
			t.Fatalf("%s: slot should be filled", tt.name)
		}
		if u != tt.expectedUnit {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expectedUnit.Text(), u.Text())
		}
		if layer != tt.expectedLayer {
			t.Errorf("%s: expected layer %d, got %d", tt.name, tt.expectedLayer, layer)
		}
	}
}

func TestCanvasLayerTypes(t *testing.T) {
	c := NewCanvas[string]()
	pos := geom.NewPair(0, 0)
	c.DrawUnit(HalfUnit('b', 'b', ColorWhite), pos, "b")
	c.DrawUnit(HalfUnit('a', 'a', ColorWhite), pos, "a")
	if got := c.UnitAt(pos).Text(); got != "bb" {
		t.Errorf("expected %q, got %q", "bb", got)
	}
}

func TestCanvasDrawOutOfBounds(t *testing.T) {
	c := NewCanvas[int]()
	expectContractPanic(t, "right edge", func() { c.DrawUnit(BlankUnit(), geom.NewPair(CanvasWidth, 0), 0) })
	expectContractPanic(t, "bottom edge", func() { c.DrawUnit(BlankUnit(), geom.NewPair(0, CanvasHeight), 0) })
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas[int]()
	pos := geom.NewPair(10, 10)
	c.DrawUnit(FullUnit('あ', ColorRed), pos, 5)
	c.Clear()

	if _, _, ok := c.SlotAt(pos); ok {
		t.Error("slot should be empty after Clear")
	}
	if c.UnitAt(pos) != BlankUnit() {
		t.Error("cleared slot should render blank")
	}

	// A cleared slot accepts any layer again.
	c.DrawUnit(HalfUnit('a', 'b', ColorWhite), pos, -100)
	if got := c.UnitAt(pos).Text(); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}
}

func TestCanvasWriteToBlank(t *testing.T) {
	c := NewCanvas[int]()
	c.DrawUnit(FullUnit('あ', ColorRed), geom.NewPair(1, 1), 0)
	c.Clear()

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
	}

	out := stripANSI(buf.String())
	if !strings.HasSuffix(out, "\n") {
		t.Error("frame should end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != DrawnHeight {
		t.Fatalf("expected %d lines, got %d", DrawnHeight, len(lines))
	}

	top := strings.Repeat("__", DrawnWidth)
	row := " |" + strings.Repeat("  ", CanvasWidth) + "| "
	bottom := strings.Repeat("￣", DrawnWidth)

	if lines[0] != top {
		t.Errorf("unexpected top border %q", lines[0])
	}
	for i := 1; i <= CanvasHeight; i++ {
		if lines[i] != row {
			t.Errorf("line %d: expected blank row, got %q", i, lines[i])
		}
	}
	if lines[DrawnHeight-1] != bottom {
		t.Errorf("unexpected bottom border %q", lines[DrawnHeight-1])
	}
}

func TestCanvasWriteToContent(t *testing.T) {
	c := NewCanvas[int]()
	c.DrawUnit(FullUnit('壁', ColorYellow), geom.NewPair(0, 0), 0)
	c.DrawUnit(HalfUnit('@', ' ', ColorGreen), geom.NewPair(CanvasWidth-1, CanvasHeight-1), 0)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	raw := buf.String()
	if !strings.Contains(raw, FullUnit('壁', ColorYellow).String()) {
		t.Error("expected yellow styled glyph in output")
	}

	lines := strings.Split(stripANSI(raw), "\n")
	if !strings.HasPrefix(lines[1], " |壁  ") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if !strings.HasSuffix(lines[CanvasHeight], "  @ | ") {
		t.Errorf("unexpected last row %q", lines[CanvasHeight])
	}
}

var errSink = errors.New("sink full")

// limitWriter accepts a fixed number of writes, then fails.
type limitWriter struct {
	buf    bytes.Buffer
	writes int
	limit  int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.writes >= w.limit {
		return 0, errSink
	}
	w.writes++
	return w.buf.Write(p)
}

func TestCanvasWriteToPropagatesError(t *testing.T) {
	for _, limit := range []int{0, 1, DrawnWidth, DrawnWidth + 5, 500} {
		c := NewCanvas[int]()
		w := &limitWriter{limit: limit}

		n, err := c.WriteTo(w)
		if err != errSink {
			t.Errorf("limit %d: expected sink error unchanged, got %v", limit, err)
		}
		if n != int64(w.buf.Len()) {
			t.Errorf("limit %d: expected %d bytes reported, got %d", limit, w.buf.Len(), n)
		}
		if w.writes != limit {
			t.Errorf("limit %d: expected writes to stop at the failure, got %d", limit, w.writes)
		}
	}
}

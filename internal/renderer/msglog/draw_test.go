package msglog

import (
	"strings"
	"testing"

	"github.com/dshills/gridterm/internal/debug"
	"github.com/dshills/gridterm/internal/geom"
	"github.com/dshills/gridterm/internal/renderer"
)

// expectContractPanic fails the test unless fn panics with a contract violation.
func expectContractPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	if !debug.Enabled {
		t.Skip("contract checks disabled in release builds")
	}
	defer func() {
		if _, ok := recover().(*debug.ContractError); !ok {
			t.Errorf("%s: expected contract violation panic", name)
		}
	}()
	fn()
}

// rowText returns the unstyled text of width units starting at (left, y).
func rowText(c *renderer.Canvas[int], left, y, width int) string {
	var sb strings.Builder
	for x := left; x < left+width; x++ {
		sb.WriteString(c.UnitAt(geom.NewPair(x, y)).Text())
	}
	return sb.String()
}

// panel is a 7x6 region: a 5x4 interior at columns 1-5, rows 1-4.
var panel = geom.RectFromSize(0, 0, 7, 6)

func draw(b *Buffer) *renderer.Canvas[int] {
	c := renderer.NewCanvas[int]()
	DrawMessage(renderer.NewUICanvas(c), b, panel, 0)
	return c
}

func TestDrawMessageBorderAndFill(t *testing.T) {
	b := New(4, 40, testBorder)
	c := draw(b)

	for _, pos := range []geom.Pair[int]{
		geom.NewPair(0, 0), geom.NewPair(6, 0), geom.NewPair(0, 5), geom.NewPair(6, 5),
		geom.NewPair(3, 0), geom.NewPair(0, 3), geom.NewPair(6, 2), geom.NewPair(4, 5),
	} {
		if c.UnitAt(pos) != testBorder {
			t.Errorf("expected border at %s, got %q", pos, c.UnitAt(pos).Text())
		}
	}
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 5; x++ {
			pos := geom.NewPair(x, y)
			if _, _, ok := c.SlotAt(pos); !ok || c.UnitAt(pos) != renderer.BlankUnit() {
				t.Errorf("expected drawn blank at %s", pos)
			}
		}
	}
	if _, _, ok := c.SlotAt(geom.NewPair(7, 0)); ok {
		t.Error("nothing should be drawn outside the region")
	}
}

func TestDrawMessageRespectsLayers(t *testing.T) {
	c := renderer.NewCanvas[int]()
	over := renderer.FullUnit('雲', renderer.ColorCyan)
	c.DrawUnit(over, geom.NewPair(2, 2), 20)

	b := New(4, 40, testBorder)
	b.AddLine("abcdefghijklmnopqrst", renderer.ColorWhite)
	DrawMessage(renderer.NewUICanvas(c), b, panel, 10)

	if c.UnitAt(geom.NewPair(2, 2)) != over {
		t.Error("higher layer content should survive the panel")
	}
}

func TestDrawMessageWrapsLine(t *testing.T) {
	b := New(4, 40, testBorder)
	// 24 half-width runes pack into 12 units: ceil(12/5) = 3 rows.
	b.AddText("abcdefghijklmnopqrstuvwx", renderer.ColorWhite)
	c := draw(b)

	expected := []string{
		"          ",
		"abcdefghij",
		"klmnopqrst",
		"uvwx      ",
	}
	for i, want := range expected {
		if got := rowText(c, 1, 1+i, 5); got != want {
			t.Errorf("row %d: expected %q, got %q", i+1, want, got)
		}
	}
}

func TestDrawMessageNewestAtBottom(t *testing.T) {
	b := New(10, 40, testBorder)
	b.AddLine("L1", renderer.ColorWhite)
	b.AddLine("L2", renderer.ColorWhite)
	b.AddNewline()
	b.AddText("L3", renderer.ColorWhite)
	c := draw(b)

	expected := []string{
		"L1        ",
		"L2        ",
		"          ",
		"L3        ",
	}
	for i, want := range expected {
		if got := rowText(c, 1, 1+i, 5); got != want {
			t.Errorf("row %d: expected %q, got %q", i+1, want, got)
		}
	}
}

func TestDrawMessageOverflowStopsAtTop(t *testing.T) {
	b := New(10, 40, testBorder)
	for _, s := range []string{"L1", "L2", "L3", "L4", "L5", "L6"} {
		b.AddLine(s, renderer.ColorWhite)
	}
	c := draw(b)

	for i, want := range []string{"L3", "L4", "L5", "L6"} {
		if got := strings.TrimSpace(rowText(c, 1, 1+i, 5)); got != want {
			t.Errorf("row %d: expected %q, got %q", i+1, want, got)
		}
	}
	for y := range renderer.CanvasHeight {
		row := rowText(c, 0, y, renderer.CanvasWidth)
		if strings.Contains(row, "L1") || strings.Contains(row, "L2") {
			t.Errorf("scrolled-out line drawn on row %d: %q", y, row)
		}
	}
}

func TestDrawMessagePartiallyVisibleLine(t *testing.T) {
	b := New(10, 40, testBorder)
	// 12 units on 3 rows, then 7 units on 2 rows. The older line starts one
	// row above the interior and must be drawn clipped, not skipped.
	b.AddLine("ABCDEFGHIJabcdefghijKLMN", renderer.ColorWhite)
	b.AddText("0123456789klmn", renderer.ColorWhite)
	c := draw(b)

	expected := []string{
		"abcdefghij",
		"KLMN      ",
		"0123456789",
		"klmn      ",
	}
	for i, want := range expected {
		if got := rowText(c, 1, 1+i, 5); got != want {
			t.Errorf("row %d: expected %q, got %q", i+1, want, got)
		}
	}
}

func TestDrawMessageLongLineClippedAtTop(t *testing.T) {
	b := New(4, 100, testBorder)
	// 30 units on 6 rows: only the last four fit.
	b.AddText(strings.Repeat("ab", 25)+"0123456789", renderer.ColorWhite)
	c := draw(b)

	if got := rowText(c, 1, 4, 5); got != "0123456789" {
		t.Errorf("expected last row %q, got %q", "0123456789", got)
	}
	if got := rowText(c, 0, 0, 7); strings.Contains(got, "ab") {
		t.Errorf("clipped rows must not overwrite the border, got %q", got)
	}
}

func TestDrawMessageEmptyLineTakesOneRow(t *testing.T) {
	b := New(10, 40, testBorder)
	b.AddLine("up", renderer.ColorWhite)
	b.AddNewline()
	c := draw(b)

	if got := strings.TrimSpace(rowText(c, 1, 3, 5)); got != "up" {
		t.Errorf("expected %q above the empty line, got %q", "up", got)
	}
	if got := strings.TrimSpace(rowText(c, 1, 4, 5)); got != "" {
		t.Errorf("expected empty bottom row, got %q", got)
	}
}

func TestDrawMessageWithoutInterior(t *testing.T) {
	b := New(4, 40, testBorder)
	b.AddLine("hidden", renderer.ColorWhite)
	c := renderer.NewCanvas[int]()
	region := geom.RectFromSize(3, 3, 2, 4)
	DrawMessage(renderer.NewUICanvas(c), b, region, 0)

	for y := 3; y <= 6; y++ {
		for x := 3; x <= 4; x++ {
			if c.UnitAt(geom.NewPair(x, y)) != testBorder {
				t.Errorf("expected border at (%d, %d)", x, y)
			}
		}
	}
}

func TestDrawMessageZeroWidth(t *testing.T) {
	b := New(4, 40, testBorder)
	c := renderer.NewCanvas[int]()
	expectContractPanic(t, "zero width", func() {
		DrawMessage(renderer.NewUICanvas(c), b, geom.RectFromSize(0, 0, 0, 3), 0)
	})
}

func TestDivCeil(t *testing.T) {
	tests := []struct{ x, y, expected int }{
		{6, 2, 3},
		{5, 2, 3},
		{4, 2, 2},
		{4, 1, 4},
		{1, 1, 1},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := divCeil(tt.x, tt.y); got != tt.expected {
			t.Errorf("divCeil(%d, %d) = %d, expected %d", tt.x, tt.y, got, tt.expected)
		}
	}
	expectContractPanic(t, "zero divisor", func() { divCeil(1, 0) })
}

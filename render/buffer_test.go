package render

import (
	"strings"
	"testing"
)

// rowText reads a buffer row back as a string, skipping wide-rune continuations
func rowText(buf *Buffer, y int) string {
	w, _ := buf.Bounds()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := buf.Get(x, y)
		if c.cont {
			continue
		}
		if c.Rune == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Rune)
	}
	return b.String()
}

func screenContains(buf *Buffer, s string) bool {
	_, h := buf.Bounds()
	for y := range h {
		if strings.Contains(rowText(buf, y), s) {
			return true
		}
	}
	return false
}

func TestBufferWideRune(t *testing.T) {
	buf := NewBuffer(10, 1)
	if n := buf.SetFg(2, 0, '🐟', RGBWhite); n != 2 {
		t.Fatalf("wide rune consumed %d columns", n)
	}
	if !buf.Get(3, 0).cont {
		t.Fatal("expected continuation cell after wide rune")
	}

	// Narrow write over the continuation blanks the wide rune's head
	buf.SetFg(3, 0, 'x', RGBWhite)
	if got := buf.Get(2, 0).Rune; got != ' ' {
		t.Errorf("head rune = %q, want blank", got)
	}
	if got := buf.Get(3, 0).Rune; got != 'x' {
		t.Errorf("rune = %q, want x", got)
	}
}

func TestBufferWideRuneAtEdge(t *testing.T) {
	buf := NewBuffer(3, 1)
	if n := buf.SetFg(2, 0, '🐟', RGBWhite); n != 0 {
		t.Errorf("wide rune at last column consumed %d", n)
	}
}

func TestBufferTextClips(t *testing.T) {
	buf := NewBuffer(5, 2)
	end := buf.Text(2, 1, "hello", RGBWhite)
	if end != 7 {
		t.Errorf("end column = %d, want 7", end)
	}
	if got := rowText(buf, 1); got != "  hel" {
		t.Errorf("row = %q", got)
	}
	buf.Text(-1, 5, "out", RGBWhite)
}

func TestBufferClearAndResize(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.Set(1, 1, 'a', RGBWhite, RGBDanger)
	buf.Clear()
	if c := buf.Get(1, 1); c.Rune != 0 || buf.touched[5] {
		t.Errorf("cell survived clear: %+v", c)
	}
	buf.Resize(8, 2)
	if w, h := buf.Bounds(); w != 8 || h != 2 {
		t.Errorf("bounds = %d,%d", w, h)
	}
}

func TestColorHelpers(t *testing.T) {
	if got := Hex("#ff8000"); got != (RGB{255, 128, 0}) {
		t.Errorf("Hex = %+v", got)
	}
	if got := Hex("nonsense"); got != (RGB{}) {
		t.Errorf("bad Hex = %+v", got)
	}
	a, b := RGB{10, 20, 30}, RGB{200, 100, 50}
	if Gradient(a, b, 0) != a || Gradient(a, b, 1) != b {
		t.Error("Gradient endpoints not exact")
	}
	if Blend(a, b, 0) != a || Blend(a, b, 1) != b {
		t.Error("Blend endpoints not exact")
	}
	if got := Add(RGB{200, 0, 0}, RGB{100, 10, 0}); got != (RGB{255, 10, 0}) {
		t.Errorf("Add = %+v", got)
	}
	if got := Scale(RGB{100, 200, 0}, 2); got != (RGB{200, 255, 0}) {
		t.Errorf("Scale = %+v", got)
	}
}

func TestFormatMetricsSorted(t *testing.T) {
	got := FormatMetrics(map[string]float64{"b": 2, "a": 1.5})
	if got != "a=1.5  b=2" {
		t.Errorf("FormatMetrics = %q", got)
	}
}

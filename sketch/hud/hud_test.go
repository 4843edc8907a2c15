package hud

import (
	"testing"

	"isopipe/sketch/raster"
)

type memTarget struct {
	w, h int
	px   map[[2]int]raster.Color
}

func newMemTarget(w, h int) *memTarget {
	return &memTarget{w: w, h: h, px: make(map[[2]int]raster.Color)}
}

func (m *memTarget) Size() (int, int) { return m.w, m.h }
func (m *memTarget) Clear(c raster.Color) {
	m.px = make(map[[2]int]raster.Color)
}
func (m *memTarget) SetPixel(x, y int, c raster.Color) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.px[[2]int{x, y}] = c
}

func (m *memTarget) count(c raster.Color, minY, maxY int) int {
	n := 0
	for p, got := range m.px {
		if got == c && p[1] >= minY && p[1] < maxY {
			n++
		}
	}
	return n
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		in   Status
		want string
	}{
		{Status{Zoom: 1}, "Zoom: 1.00 | Pan: (0, 0)"},
		{Status{Zoom: 1.21, PanX: 50, PanY: -100}, "Zoom: 1.21 | Pan: (50, -100)"},
		{Status{Zoom: 0.9, PanX: 12.7, PanY: -12.7}, "Zoom: 0.90 | Pan: (12, -12)"},
	}
	for _, tt := range tests {
		if got := StatusLine(tt.in); got != tt.want {
			t.Fatalf("StatusLine(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetailLine(t *testing.T) {
	s := Status{Mode: "iso", Pending: "elbow +Z", Segments: 2}
	if got, want := DetailLine(s), "iso | next: elbow +Z | segments: 2"; got != want {
		t.Fatalf("DetailLine() = %q, want %q", got, want)
	}
	s.Invalid = true
	if got, want := DetailLine(s), "iso | next: elbow +Z | segments: 2 | invalid"; got != want {
		t.Fatalf("DetailLine(invalid) = %q, want %q", got, want)
	}
	if got, want := DetailLine(Status{Mode: "flat", Entities: 3}), "flat | entities: 3"; got != want {
		t.Fatalf("DetailLine(flat) = %q, want %q", got, want)
	}
}

func TestDrawWritesText(t *testing.T) {
	h := New()
	if h.LineHeight() <= 0 || h.TextWidth("Zoom") <= 0 {
		t.Fatalf("font metrics: line height %d, width %d", h.LineHeight(), h.TextWidth("Zoom"))
	}
	tgt := newMemTarget(400, 200)
	h.Draw(tgt, Status{Zoom: 1, Mode: "iso", Pending: "pipe +X"})
	if tgt.count(raster.ColorText, 0, 100) == 0 {
		t.Fatal("no status text drawn")
	}
	if tgt.count(raster.ColorPromptBG, 0, 200) != 0 {
		t.Fatal("prompt box drawn without a command line")
	}
}

func TestDrawCommandLineAtBottom(t *testing.T) {
	h := New()
	tgt := newMemTarget(400, 200)
	h.Draw(tgt, Status{Zoom: 1, Mode: "iso", Command: ":pipe 100"})
	if tgt.count(raster.ColorPromptBG, 100, 200) == 0 {
		t.Fatal("prompt background missing")
	}
	if tgt.count(raster.ColorPrompt, 100, 200) == 0 {
		t.Fatal("prompt text missing")
	}
}

func TestDrawInvalidUsesWarningColor(t *testing.T) {
	h := New()
	tgt := newMemTarget(400, 200)
	h.Draw(tgt, Status{Zoom: 1, Mode: "iso", Pending: "elbow +X", Invalid: true})
	if tgt.count(raster.ColorInvalid, 0, 100) == 0 {
		t.Fatal("invalid detail line not highlighted")
	}
}

func TestDisplayAdapterClips(t *testing.T) {
	tgt := newMemTarget(10, 10)
	d := &targetDisplay{t: tgt}
	if x, y := d.Size(); x != 10 || y != 10 {
		t.Fatalf("Size() = %d, %d", x, y)
	}
	_ = d.FillRectangle(-5, -5, 8, 8, raster.ColorAnchor)
	if got := tgt.count(raster.ColorAnchor, 0, 10); got != 9 {
		t.Fatalf("FillRectangle painted %d pixels, want 9", got)
	}
}

func TestPanelWrapsAndClears(t *testing.T) {
	h := New()
	tgt := newMemTarget(120, 400)
	long := "panic: runtime error: index out of range [7] with length 3"
	h.Panel(tgt, []string{"IsoPiping panic:", long}, raster.ColorPrompt, raster.ColorBackground)
	if tgt.count(raster.ColorPrompt, 0, 400) == 0 {
		t.Fatal("panel text missing")
	}
	parts := h.wrap(long, 100)
	if len(parts) < 2 {
		t.Fatalf("wrap(%q) = %q, want several lines", long, parts)
	}
	for _, p := range parts {
		if h.TextWidth(p) > 100 && len([]rune(p)) > 1 {
			t.Fatalf("wrapped piece %q is %dpx wide", p, h.TextWidth(p))
		}
	}
}

package raster

import "testing"

func newTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func countLit(t *RGB565Target) int {
	n := 0
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if t.Pixel(x, y) != 0 {
				n++
			}
		}
	}
	return n
}

func TestHorizontalLine(t *testing.T) {
	tg := newTarget(16, 8)
	r := NewRasterizer(tg)
	white := RGB(255, 255, 255)

	r.DrawLine(2, 3, 9, 3, white, 1)

	for x := 0; x < tg.W; x++ {
		lit := tg.Pixel(x, 3) != 0
		want := x >= 2 && x <= 9
		if lit != want {
			t.Fatalf("pixel (%d,3) lit = %v, want %v", x, lit, want)
		}
	}
	if got := countLit(tg); got != 8 {
		t.Fatalf("lit pixels = %d, want 8", got)
	}
	if got, want := tg.Pixel(5, 3), RGB565(white); got != want {
		t.Fatalf("Pixel() = %#04x, want %#04x", got, want)
	}
}

func TestDiagonalLineEndpoints(t *testing.T) {
	tg := newTarget(10, 10)
	r := NewRasterizer(tg)
	r.DrawLine(9, 9, 0, 0, RGB(255, 0, 0), 1)
	for i := 0; i < 10; i++ {
		if tg.Pixel(i, i) == 0 {
			t.Fatalf("pixel (%d,%d) not lit", i, i)
		}
	}
	if got := countLit(tg); got != 10 {
		t.Fatalf("lit pixels = %d, want 10", got)
	}
}

func TestWideLineStampsBrush(t *testing.T) {
	tg := newTarget(20, 20)
	r := NewRasterizer(tg)
	r.DrawLine(5, 10, 14, 10, RGB(0, 255, 0), 3)
	// 10 steps by a 3x3 brush sliding horizontally: 12 columns x 3 rows.
	if got := countLit(tg); got != 36 {
		t.Fatalf("lit pixels = %d, want 36", got)
	}
	if tg.Pixel(4, 9) == 0 || tg.Pixel(15, 11) == 0 {
		t.Fatal("brush corners not lit")
	}
}

func TestZeroWidthDrawsNothing(t *testing.T) {
	tg := newTarget(8, 8)
	NewRasterizer(tg).DrawLine(0, 0, 7, 7, RGB(255, 255, 255), 0)
	if got := countLit(tg); got != 0 {
		t.Fatalf("lit pixels = %d, want 0", got)
	}
}

func TestLineClippedToTarget(t *testing.T) {
	tg := newTarget(10, 10)
	r := NewRasterizer(tg)
	r.DrawLine(-1_000_000, 4, 1_000_000, 4, RGB(255, 255, 255), 1)
	if got := countLit(tg); got != 10 {
		t.Fatalf("lit pixels = %d, want 10", got)
	}
	r.DrawLine(-50, -50, -10, -90, RGB(255, 255, 255), 1)
	if got := countLit(tg); got != 10 {
		t.Fatalf("off-target line lit pixels: %d", got-10)
	}
}

func TestClearFills(t *testing.T) {
	tg := newTarget(4, 4)
	r := NewRasterizer(tg)
	r.Clear(ColorBackground)
	want := RGB565(ColorBackground)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := tg.Pixel(x, y); got != want {
				t.Fatalf("Pixel(%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestMarker(t *testing.T) {
	tg := newTarget(11, 11)
	Marker(NewRasterizer(tg), 5, 5, 3, ColorAnchor, 1)
	// Two 7-pixel arms sharing the center.
	if got := countLit(tg); got != 13 {
		t.Fatalf("lit pixels = %d, want 13", got)
	}
}

func TestNamedColors(t *testing.T) {
	if c, ok := Named("red"); !ok || c != RGB(255, 0, 0) {
		t.Fatalf("Named(red) = %v, %v", c, ok)
	}
	if _, ok := Named("chartreuse"); ok {
		t.Fatal("Named(chartreuse) ok = true, want false")
	}
}

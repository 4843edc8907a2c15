package hud

import (
	"image/color"

	"tinygo.org/x/drivers"

	"isopipe/sketch/raster"
)

// targetDisplay adapts a raster.Target to drivers.Displayer so tinyfont
// can draw into it.
type targetDisplay struct {
	t raster.Target
}

var _ drivers.Displayer = (*targetDisplay)(nil)

func (d *targetDisplay) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(clampInt(w, 0, 0x7fff)), int16(clampInt(h, 0, 0x7fff))
}

func (d *targetDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), c)
}

// Display is a no-op; the host presents the whole frame.
func (d *targetDisplay) Display() error { return nil }

func (d *targetDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.t == nil {
		return nil
	}
	w, h := d.t.Size()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.t.SetPixel(px, py, c)
		}
	}
	return nil
}

func (d *targetDisplay) SetRotation(_ drivers.Rotation) error {
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package raster draws screen-space lines into pixel targets.
//
// LineSink is the only contract the sketch front ends render through: one
// call per line, in screen pixels, with a color and a stroke width.
package raster

import "math"

// LineSink draws a line from (x0, y0) to (x1, y1).
type LineSink interface {
	DrawLine(x0, y0, x1, y1 int, c Color, width int)
}

// Rasterizer is a LineSink over a Target.
type Rasterizer struct {
	t Target
}

func NewRasterizer(t Target) *Rasterizer {
	return &Rasterizer{t: t}
}

func (r *Rasterizer) Target() Target { return r.t }

// Clear fills the whole target.
func (r *Rasterizer) Clear(c Color) {
	if r == nil || r.t == nil {
		return
	}
	r.t.Clear(c)
}

// DrawLine rasterizes with Bresenham. Widths above 1 stamp a square brush
// centered on each step; widths below 1 draw nothing.
func (r *Rasterizer) DrawLine(x0, y0, x1, y1 int, c Color, width int) {
	if r == nil || r.t == nil || width < 1 {
		return
	}
	w, h := r.t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	var ok bool
	x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1, -width, -width, w+width, h+width)
	if !ok {
		return
	}

	lo := -(width - 1) / 2
	hi := lo + width - 1
	plot := func(x, y int) {
		if width == 1 {
			r.t.SetPixel(x, y, c)
			return
		}
		for by := lo; by <= hi; by++ {
			for bx := lo; bx <= hi; bx++ {
				r.t.SetPixel(x+bx, y+by, c)
			}
		}
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLine clips a segment to the rectangle [minX, maxX] x [minY, maxY]
// (Liang-Barsky). Segments already inside are returned unchanged.
func clipLine(x0, y0, x1, y1, minX, minY, maxX, maxY int) (int, int, int, int, bool) {
	inside := func(x, y int) bool { return x >= minX && x <= maxX && y >= minY && y <= maxY }
	if inside(x0, y0) && inside(x1, y1) {
		return x0, y0, x1, y1, true
	}

	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0 - float64(minX)},
		{dx, float64(maxX) - fx0},
		{-dy, fy0 - float64(minY)},
		{dy, float64(maxY) - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	nx0 := int(math.Round(fx0 + t0*dx))
	ny0 := int(math.Round(fy0 + t0*dy))
	nx1 := int(math.Round(fx0 + t1*dx))
	ny1 := int(math.Round(fy0 + t1*dy))
	return nx0, ny0, nx1, ny1, true
}

// Marker draws a small cross of the given arm length centered on (x, y).
func Marker(s LineSink, x, y, arm int, c Color, width int) {
	s.DrawLine(x-arm, y, x+arm, y, c, width)
	s.DrawLine(x, y-arm, x, y+arm, c, width)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

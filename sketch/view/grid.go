package view

import (
	"math"

	"isopipe/sketch/geom"
)

// DefaultGridHalfLines is the number of grid intervals drawn on each side
// of the origin.
const DefaultGridHalfLines = 40

// GridSpacing returns the world grid interval for the current zoom.
//
// Starting from BaseGrid it doubles while the on-screen interval is under
// MinGridPixels and halves while it is over MaxGridPixels.
func (v *View) GridSpacing() float64 {
	return GridSpacing(v.BaseGrid, v.Zoom)
}

// GridSpacing is the stateless form of View.GridSpacing.
func GridSpacing(base, zoom float64) float64 {
	if !(base > 0) || !(zoom > 0) || math.IsInf(base, 0) {
		return base
	}
	s := base
	for s*zoom < MinGridPixels {
		s *= 2
	}
	for s*zoom > MaxGridPixels {
		s /= 2
	}
	return s
}

// IsoGrid returns ground-plane grid lines parallel to the X and Z axes at
// multiples of GridSpacing, over the symmetric extent of halfLines
// intervals around the origin. Lines are clipped to VisibleGround; lines
// outside it are omitted.
func (v *View) IsoGrid(halfLines int) []geom.Line {
	s := v.GridSpacing()
	if !(s > 0) || halfLines <= 0 {
		return nil
	}
	extent := float64(halfLines) * s

	minX, minZ, maxX, maxZ := v.VisibleGround()
	x0, x1 := math.Max(-extent, minX), math.Min(extent, maxX)
	z0, z1 := math.Max(-extent, minZ), math.Min(extent, maxZ)
	if x0 > x1 || z0 > z1 {
		return nil
	}

	var lines []geom.Line
	for k := int(math.Ceil(z0 / s)); float64(k)*s <= z1; k++ {
		z := float64(k) * s
		lines = append(lines, geom.Line{A: geom.V3(x0, 0, z), B: geom.V3(x1, 0, z)})
	}
	for k := int(math.Ceil(x0 / s)); float64(k)*s <= x1; k++ {
		x := float64(k) * s
		lines = append(lines, geom.Line{A: geom.V3(x, 0, z0), B: geom.V3(x, 0, z1)})
	}
	return lines
}

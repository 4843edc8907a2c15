// Package view holds the pan/zoom state of the viewport and the fixed
// isometric projection from world space to screen pixels.
//
// World Y is up. X and Z are skewed 30° into a diamond; screen Y grows
// downward.
package view

import (
	"math"

	"isopipe/sketch/geom"
)

const (
	MinZoom = 0.01
	MaxZoom = 100.0

	// DefaultBaseGrid is the world grid interval before zoom adaptation.
	DefaultBaseGrid = 50.0

	// Grid spacing on screen is kept within [MinGridPixels, MaxGridPixels].
	MinGridPixels = 20.0
	MaxGridPixels = 200.0
)

var (
	cos30 = math.Sqrt(3) / 2
	sin30 = 0.5
)

// Point is a screen-space pixel coordinate.
type Point struct {
	X, Y int
}

// View is the viewport state. It is mutated in place by pan and zoom.
type View struct {
	Zoom     float64
	OffsetX  float64
	OffsetY  float64
	Width    int
	Height   int
	BaseGrid float64
}

// New returns a view of the given size at zoom 1 with no pan.
func New(width, height int) *View {
	return &View{
		Zoom:     1,
		Width:    width,
		Height:   height,
		BaseGrid: DefaultBaseGrid,
	}
}

// WorldToScreen projects p isometrically and truncates to pixels.
func (v *View) WorldToScreen(p geom.Vec3) Point {
	isoX, isoY := Iso(p)
	return Point{
		X: int(isoX*v.Zoom + v.OffsetX + float64(v.Width)/2),
		Y: int(isoY*v.Zoom + v.OffsetY + float64(v.Height)/2),
	}
}

// Iso returns the unscaled isometric plane coordinates of p.
func Iso(p geom.Vec3) (x, y float64) {
	return (p.X - p.Z) * cos30, (p.X+p.Z)*sin30 - p.Y
}

// ScreenToGround inverts WorldToScreen onto the y = 0 ground plane.
func (v *View) ScreenToGround(sx, sy float64) geom.Vec3 {
	isoX := (sx - v.OffsetX - float64(v.Width)/2) / v.Zoom
	isoY := (sy - v.OffsetY - float64(v.Height)/2) / v.Zoom
	diff := isoX / cos30 // x - z
	sum := isoY / sin30  // x + z
	return geom.V3((sum+diff)/2, 0, (sum-diff)/2)
}

// VisibleGround returns the ground-plane rectangle covering the viewport.
func (v *View) VisibleGround() (minX, minZ, maxX, maxZ float64) {
	w, h := float64(v.Width), float64(v.Height)
	corners := [4]geom.Vec3{
		v.ScreenToGround(0, 0),
		v.ScreenToGround(w, 0),
		v.ScreenToGround(0, h),
		v.ScreenToGround(w, h),
	}
	minX, minZ = math.Inf(1), math.Inf(1)
	maxX, maxZ = math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		minX = math.Min(minX, c.X)
		maxX = math.Max(maxX, c.X)
		minZ = math.Min(minZ, c.Z)
		maxZ = math.Max(maxZ, c.Z)
	}
	return minX, minZ, maxX, maxZ
}

func (v *View) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

func (v *View) SetPan(x, y float64) {
	v.OffsetX = x
	v.OffsetY = y
}

// AdjustZoom multiplies the zoom by factor and clamps it.
func (v *View) AdjustZoom(factor float64) {
	v.SetZoom(v.Zoom * factor)
}

// SetZoom sets an absolute zoom, clamped to [MinZoom, MaxZoom]. NaN is
// ignored.
func (v *View) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	v.Zoom = clamp(z, MinZoom, MaxZoom)
}

func (v *View) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	v.Width = width
	v.Height = height
}

// Home resets pan and zoom.
func (v *View) Home() {
	v.SetPan(0, 0)
	v.Zoom = 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

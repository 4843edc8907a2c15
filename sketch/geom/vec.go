// Package geom provides the small amount of 3D vector math the sketch tool
// needs. Arithmetic is delegated to gonum's r3 package; Vec3 adds the
// zero-safe normalization and tolerance helpers used by the piping model.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Epsilon is the tolerance used by ApproxEqual and orthogonality checks.
const Epsilon = 1e-9

// Vec3 is an immutable 3D vector. Y is up.
type Vec3 r3.Vec

// Line is a straight world-space line from A to B.
type Line struct {
	A, B Vec3
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Unit axes.
var (
	AxisX = V3(1, 0, 0)
	AxisY = V3(0, 1, 0)
	AxisZ = V3(0, 0, 1)
)

func (v Vec3) Add(o Vec3) Vec3      { return Vec3(r3.Add(r3.Vec(v), r3.Vec(o))) }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3(r3.Sub(r3.Vec(v), r3.Vec(o))) }
func (v Vec3) Scale(s float64) Vec3 { return Vec3(r3.Scale(s, r3.Vec(v))) }
func (v Vec3) Neg() Vec3            { return v.Scale(-1) }
func (v Vec3) Dot(o Vec3) float64   { return r3.Dot(r3.Vec(v), r3.Vec(o)) }
func (v Vec3) Cross(o Vec3) Vec3    { return Vec3(r3.Cross(r3.Vec(v), r3.Vec(o))) }
func (v Vec3) Len() float64         { return r3.Norm(r3.Vec(v)) }
func (v Vec3) IsZero() bool         { return v.X == 0 && v.Y == 0 && v.Z == 0 }
func (v Vec3) Dist(o Vec3) float64  { return v.Sub(o).Len() }
func (v Vec3) Tuple() [3]float64    { return [3]float64{v.X, v.Y, v.Z} }

// ApproxEqual compares component-wise within Epsilon, scaled by magnitude.
func (v Vec3) ApproxEqual(o Vec3) bool {
	return approx(v.X, o.X) && approx(v.Y, o.Y) && approx(v.Z, o.Z)
}

// Normalize returns the unit vector colinear to v.
//
// The zero vector normalizes to the zero vector. Callers using the result
// as a direction must check IsZero first.
func (v Vec3) Normalize() Vec3 {
	if v.IsZero() {
		return Vec3{}
	}
	return Vec3(r3.Unit(r3.Vec(v)))
}

// Orthogonal reports whether a and b are non-zero and perpendicular within
// Epsilon, compared on their normalized forms.
func Orthogonal(a, b Vec3) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return math.Abs(a.Normalize().Dot(b.Normalize())) <= Epsilon
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return d <= Epsilon*scale
}

// Package piping models an append-only chain of pipe segments joined at
// flanges.
//
// A Flange is the face of a segment end: a position and a unit direction
// pointing outward, away from the segment body, toward where the next
// segment extends. Every segment starts on the mate of its predecessor's
// exit flange (same position, opposite direction), so consecutive segments
// always meet face to face.
package piping

import "isopipe/sketch/geom"

// Flange is an oriented connection point. The zero value is not useful;
// use NewFlange.
type Flange struct {
	pos geom.Vec3
	dir geom.Vec3
}

// NewFlange returns a flange at pos facing dir. dir is normalized.
func NewFlange(pos, dir geom.Vec3) Flange {
	return Flange{pos: pos, dir: dir.Normalize()}
}

// Origin is the open flange of an empty system: the origin, facing +X.
func Origin() Flange { return NewFlange(geom.Vec3{}, geom.AxisX) }

func (f Flange) Pos() geom.Vec3 { return f.pos }
func (f Flange) Dir() geom.Vec3 { return f.dir }

// Mate returns the flange a new segment starts on when connected to f:
// coincident with f and facing back into the new segment.
func (f Flange) Mate() Flange {
	return Flange{pos: f.pos, dir: f.dir.Neg()}
}

func (f Flange) String() string {
	return "flange(" + fmtVec(f.pos) + " -> " + fmtVec(f.dir) + ")"
}

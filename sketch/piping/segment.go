package piping

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"isopipe/sketch/geom"
)

// ErrInvalidSegmentParameter is returned when a segment cannot be built
// from its inputs: a non-positive pipe length, or an elbow whose target
// direction is zero or not perpendicular to the entry direction.
var ErrInvalidSegmentParameter = errors.New("invalid segment parameter")

const (
	// ElbowRadius is the bend radius of every Elbow90, in world units.
	ElbowRadius = 100.0
	// ArcSegments is the number of straight lines approximating an elbow arc.
	ArcSegments = 16
)

// Kind identifies a segment variant.
type Kind uint8

const (
	KindPipe Kind = iota
	KindElbow
)

func (k Kind) String() string {
	switch k {
	case KindPipe:
		return "pipe"
	case KindElbow:
		return "elbow"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Segment is a committed or previewed piece of the chain. Pipe and Elbow90
// are the only implementations.
type Segment interface {
	Kind() Kind
	Start() Flange
	End() Flange
	// Lines returns the segment's world-space line tessellation.
	Lines() []geom.Line

	sealed()
}

// Pipe is a straight segment.
type Pipe struct {
	start  Flange
	end    Flange
	length float64
}

// NewPipe extrudes a pipe of the given length from prev, continuing in
// prev's outward direction.
func NewPipe(prev Flange, length float64) (*Pipe, error) {
	if !(length > 0) || math.IsInf(length, 1) {
		return nil, fmt.Errorf("pipe length %v: %w", length, ErrInvalidSegmentParameter)
	}
	endPos := prev.Pos().Add(prev.Dir().Scale(length))
	return &Pipe{
		start:  prev.Mate(),
		end:    NewFlange(endPos, prev.Dir()),
		length: length,
	}, nil
}

func (p *Pipe) Kind() Kind         { return KindPipe }
func (p *Pipe) Start() Flange      { return p.start }
func (p *Pipe) End() Flange        { return p.end }
func (p *Pipe) Length() float64    { return p.length }
func (p *Pipe) sealed()            {}
func (p *Pipe) Lines() []geom.Line { return []geom.Line{{A: p.start.Pos(), B: p.end.Pos()}} }

// Elbow90 is a quarter-circle bend of radius ElbowRadius.
type Elbow90 struct {
	start  Flange
	end    Flange
	center geom.Vec3
	radius float64
}

// NewElbow90 bends from prev toward target, the outward direction of the
// elbow's exit flange. target is normalized and must be perpendicular to
// prev's direction.
//
// The arc center sits one radius from the start against target, and the
// exit sits one radius from the center along the start flange direction,
// so both arc radii are orthogonal and of equal length.
func NewElbow90(prev Flange, target geom.Vec3) (*Elbow90, error) {
	if !geom.Orthogonal(target, prev.Dir()) {
		return nil, fmt.Errorf("elbow target %s against entry %s: %w",
			fmtVec(target), fmtVec(prev.Dir()), ErrInvalidSegmentParameter)
	}
	start := prev.Mate()
	out := target.Normalize()
	center := start.Pos().Add(out.Neg().Scale(ElbowRadius))
	endPos := center.Add(start.Dir().Scale(ElbowRadius))
	return &Elbow90{
		start:  start,
		end:    NewFlange(endPos, out),
		center: center,
		radius: ElbowRadius,
	}, nil
}

func (e *Elbow90) Kind() Kind        { return KindElbow }
func (e *Elbow90) Start() Flange     { return e.start }
func (e *Elbow90) End() Flange       { return e.end }
func (e *Elbow90) Center() geom.Vec3 { return e.center }
func (e *Elbow90) Radius() float64   { return e.radius }
func (e *Elbow90) sealed()           {}

// Lines approximates the arc with ArcSegments lines.
func (e *Elbow90) Lines() []geom.Line {
	vStart := e.start.Pos().Sub(e.center)
	vEnd := e.end.Pos().Sub(e.center)

	point := func(i int) geom.Vec3 {
		a := float64(i) / ArcSegments * math.Pi / 2
		return e.center.Add(vStart.Scale(math.Cos(a)).Add(vEnd.Scale(math.Sin(a))))
	}

	lines := make([]geom.Line, 0, ArcSegments)
	prev := point(0)
	for i := 1; i <= ArcSegments; i++ {
		next := point(i)
		lines = append(lines, geom.Line{A: prev, B: next})
		prev = next
	}
	return lines
}

func fmtVec(v geom.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Package flat is the 2D line canvas: a Y-up plane sharing the viewport's
// pan and zoom with the isometric editor.
package flat

import (
	"math"

	"isopipe/sketch/raster"
	"isopipe/sketch/view"
)

const (
	entityWidth = 2
	gridWidth   = 1
)

// Point2 is a world-space point on the canvas plane.
type Point2 struct {
	X, Y float64
}

// EntityKind discriminates canvas entities.
type EntityKind uint8

const (
	EntityLine EntityKind = iota + 1
)

// Entity is a drawable canvas item.
type Entity struct {
	Kind   EntityKind
	P1, P2 Point2
	Color  raster.Color
}

// Canvas holds flat entities drawn through a shared view.
type Canvas struct {
	View     *view.View
	ShowGrid bool

	entities []Entity
}

func New(v *view.View) *Canvas {
	return &Canvas{View: v, ShowGrid: true}
}

// Seed adds the axis lines every new canvas starts with.
func (c *Canvas) Seed() {
	c.AddLine(Point2{-100, 0}, Point2{100, 0}, raster.RGB(255, 0, 0))
	c.AddLine(Point2{0, -100}, Point2{0, 100}, raster.RGB(0, 255, 0))
	c.AddLine(Point2{-50, -50}, Point2{50, 50}, raster.RGB(0, 0, 255))
}

func (c *Canvas) AddLine(p1, p2 Point2, col raster.Color) {
	c.entities = append(c.entities, Entity{Kind: EntityLine, P1: p1, P2: p2, Color: col})
}

func (c *Canvas) Clear() { c.entities = c.entities[:0] }

func (c *Canvas) Len() int { return len(c.entities) }

// Entities returns a copy of the entity list.
func (c *Canvas) Entities() []Entity {
	out := make([]Entity, len(c.entities))
	copy(out, c.entities)
	return out
}

// WorldToScreen maps a canvas point to pixels, Y up.
func (c *Canvas) WorldToScreen(p Point2) view.Point {
	v := c.View
	return view.Point{
		X: int(p.X*v.Zoom + v.OffsetX + float64(v.Width)/2),
		Y: int(-p.Y*v.Zoom + v.OffsetY + float64(v.Height)/2),
	}
}

func (c *Canvas) ScreenToWorld(sx, sy float64) Point2 {
	v := c.View
	return Point2{
		X: (sx - v.OffsetX - float64(v.Width)/2) / v.Zoom,
		Y: -(sy - v.OffsetY - float64(v.Height)/2) / v.Zoom,
	}
}

// Grid returns grid lines covering the viewport at the adaptive spacing.
// Bounds are snapped outward to whole intervals.
func (c *Canvas) Grid() [][2]Point2 {
	s := c.View.GridSpacing()
	if !(s > 0) {
		return nil
	}
	tl := c.ScreenToWorld(0, 0)
	br := c.ScreenToWorld(float64(c.View.Width), float64(c.View.Height))

	x0 := math.Floor(tl.X/s) * s
	x1 := (math.Floor(br.X/s) + 1) * s
	y0 := math.Floor(br.Y/s) * s
	y1 := (math.Floor(tl.Y/s) + 1) * s

	var lines [][2]Point2
	for k := 0; x0+float64(k)*s <= x1; k++ {
		x := x0 + float64(k)*s
		lines = append(lines, [2]Point2{{x, y0}, {x, y1}})
	}
	for k := 0; y0+float64(k)*s <= y1; k++ {
		y := y0 + float64(k)*s
		lines = append(lines, [2]Point2{{x0, y}, {x1, y}})
	}
	return lines
}

// Draw renders the grid then every entity in insertion order.
func (c *Canvas) Draw(s raster.LineSink) {
	if c.ShowGrid {
		for _, l := range c.Grid() {
			c.line(s, l[0], l[1], raster.ColorGrid, gridWidth)
		}
	}
	for _, e := range c.entities {
		switch e.Kind {
		case EntityLine:
			c.line(s, e.P1, e.P2, e.Color, entityWidth)
		}
	}
}

func (c *Canvas) line(s raster.LineSink, a, b Point2, col raster.Color, width int) {
	pa, pb := c.WorldToScreen(a), c.WorldToScreen(b)
	s.DrawLine(pa.X, pa.Y, pb.X, pb.Y, col, width)
}

// Package hud draws the text overlay: view status, pending segment and the
// command line.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"isopipe/sketch/raster"
)

const (
	margin  = 10
	padding = 4
)

// Status is everything the overlay shows for one frame.
type Status struct {
	Zoom       float64
	PanX, PanY float64

	Mode string // "iso" or "flat"

	// Iso mode.
	Pending  string // e.g. "elbow +Z"
	Invalid  bool
	Segments int

	// Flat mode.
	Entities int

	// Command is the command line including its prompt; empty hides it.
	Command string
	// Message is the last command result or error.
	Message string
}

// HUD renders Status with a fixed bitmap font.
type HUD struct {
	font       tinyfont.Fonter
	lineHeight int16
}

func New() *HUD {
	f := &proggy.TinySZ8pt7b
	lh := int16(f.GetYAdvance())
	if lh <= 0 {
		lh = 12
	}
	return &HUD{font: f, lineHeight: lh}
}

// LineHeight is the vertical advance between text rows.
func (h *HUD) LineHeight() int { return int(h.lineHeight) }

// TextWidth returns the rendered width of s in pixels.
func (h *HUD) TextWidth(s string) int {
	_, w := tinyfont.LineWidth(h.font, s)
	return int(w)
}

// Draw writes the overlay on top of whatever t already holds.
func (h *HUD) Draw(t raster.Target, s Status) {
	d := &targetDisplay{t: t}
	y := int16(margin)
	h.text(d, margin, y, StatusLine(s), raster.ColorText)

	y += h.lineHeight
	c := raster.ColorText
	if s.Invalid {
		c = raster.ColorInvalid
	}
	h.text(d, margin, y, DetailLine(s), c)

	if s.Message != "" {
		y += h.lineHeight
		h.text(d, margin, y, s.Message, raster.ColorText)
	}

	if s.Command != "" {
		_, height := t.Size()
		top := int16(height) - int16(margin) - h.lineHeight - 2*padding
		w := int16(h.TextWidth(s.Command)) + 2*padding
		_ = d.FillRectangle(margin-padding, top, w, h.lineHeight+2*padding, raster.ColorPromptBG)
		h.text(d, margin, top+padding, s.Command, raster.ColorPrompt)
	}
}

// text draws s with its top edge at y.
func (h *HUD) text(d *targetDisplay, x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, h.font, x, y+h.lineHeight, s, c)
}

// StatusLine formats zoom and pan, e.g. "Zoom: 1.00 | Pan: (0, 0)".
func StatusLine(s Status) string {
	return fmt.Sprintf("Zoom: %.2f | Pan: (%d, %d)", s.Zoom, truncate(s.PanX), truncate(s.PanY))
}

// DetailLine formats the mode-specific second row.
func DetailLine(s Status) string {
	if s.Mode == "flat" {
		return fmt.Sprintf("flat | entities: %d", s.Entities)
	}
	line := fmt.Sprintf("iso | next: %s | segments: %d", s.Pending, s.Segments)
	if s.Invalid {
		line += " | invalid"
	}
	return line
}

func truncate(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}

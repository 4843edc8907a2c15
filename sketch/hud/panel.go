package hud

import (
	"strings"

	"isopipe/sketch/raster"
)

// Panel fills t with bg and writes lines from the top-left corner,
// wrapping at the target width. Lines past the bottom edge are dropped.
func (h *HUD) Panel(t raster.Target, lines []string, fg, bg raster.Color) {
	t.Clear(bg)
	d := &targetDisplay{t: t}
	w, height := t.Size()
	maxW := w - 2*margin
	y := int16(margin)
	for _, line := range lines {
		for _, chunk := range h.wrap(line, maxW) {
			if int(y+h.lineHeight) > height {
				return
			}
			h.text(d, margin, y, chunk, fg)
			y += h.lineHeight
		}
	}
}

// wrap splits s into pieces no wider than maxW pixels.
func (h *HUD) wrap(s string, maxW int) []string {
	s = strings.ReplaceAll(s, "\t", "    ")
	if maxW <= 0 || h.TextWidth(s) <= maxW {
		return []string{s}
	}
	var out []string
	r := []rune(s)
	for len(r) > 0 {
		n := len(r)
		for n > 1 && h.TextWidth(string(r[:n])) > maxW {
			n--
		}
		out = append(out, string(r[:n]))
		r = []rune(strings.TrimLeft(string(r[n:]), " "))
	}
	return out
}

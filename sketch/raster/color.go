package raster

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color = color.RGBA

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// Palette used by the sketch front ends.
var (
	ColorBackground = RGB(30, 30, 30)
	ColorGrid       = RGB(60, 60, 60)
	ColorSegment    = RGB(200, 200, 200)
	ColorGhost      = RGB(80, 160, 255)
	ColorAnchor     = RGB(255, 220, 0)
	ColorText       = RGB(150, 150, 150)
	ColorPrompt     = RGB(255, 255, 255)
	ColorPromptBG   = RGB(50, 50, 50)
	ColorInvalid    = RGB(255, 80, 80)
)

// Named colors accepted by text commands.
var named = map[string]Color{
	"white":   RGB(255, 255, 255),
	"gray":    ColorSegment,
	"grey":    ColorSegment,
	"red":     RGB(255, 0, 0),
	"green":   RGB(0, 255, 0),
	"blue":    RGB(0, 0, 255),
	"yellow":  RGB(255, 255, 0),
	"cyan":    RGB(0, 255, 255),
	"magenta": RGB(255, 0, 255),
}

// Named returns the color registered under name.
func Named(name string) (Color, bool) {
	c, ok := named[name]
	return c, ok
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

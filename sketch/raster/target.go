package raster

// Target is a minimal pixel target.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGB565Target renders into an RGB565 buffer.
//
// Callers provide the backing buffer and layout (stride).
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c Color) {
	if !t.ok() {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if !t.ok() {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// Pixel returns the raw RGB565 value at (x, y), or 0 when out of bounds.
func (t *RGB565Target) Pixel(x, y int) uint16 {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return 0
	}
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
}

func (t *RGB565Target) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

// RGB565 converts c to the packed value stored by RGB565Target.
func RGB565(c Color) uint16 { return rgb565From888(c.R, c.G, c.B) }

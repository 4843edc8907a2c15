package hal

import "errors"

// ErrQuit ends a run loop without reporting an error.
var ErrQuit = errors.New("quit")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// The window backend may resize it between frames; callers read Width and
// Height at the start of every frame.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is a keyboard event. Text input arrives as Rune with
// KeyUnknown; ctrl chords arrive as control runes (Ctrl+C is 0x03).
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
	Shift bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the sketch's only contact point with the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

package intent

// Code identifies a non-text key.
type Code uint8

const (
	KeyNone Code = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
)

// Key is one key press. Text keys carry Rune with Code KeyNone.
type Key struct {
	Code  Code
	Rune  rune
	Shift bool
}

// Control runes delivered by the host keyboard for ctrl chords.
const (
	runeCtrlC = 0x03
	runeCtrlU = 0x15
)

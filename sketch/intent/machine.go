package intent

import (
	"strings"
	"unicode"

	"isopipe/sketch/piping"
)

// Prompt is shown in front of command text.
const Prompt = ":"

// maxHistory bounds the command history.
const maxHistory = 64

// Machine maps key presses to intents. It has two modes: normal, where
// keys map to single intents, and command, where runes accumulate into a
// command line until Enter.
type Machine struct {
	panStep float64
	zoomIn  float64
	zoomOut float64

	command bool
	buf     []rune

	history []string
	histPos int // len(history) when not browsing
}

func NewMachine(panStep, zoomIn, zoomOut float64) *Machine {
	return &Machine{
		panStep: panStep,
		zoomIn:  zoomIn,
		zoomOut: zoomOut,
		buf:     make([]rune, 0, 32),
	}
}

// CommandMode reports whether the command line is open.
func (m *Machine) CommandMode() bool { return m.command }

// Line returns the command line including the prompt, or "" in normal mode.
func (m *Machine) Line() string {
	if !m.command {
		return ""
	}
	return Prompt + string(m.buf)
}

// History returns submitted commands, oldest first.
func (m *Machine) History() []string {
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// Reset leaves command mode and drops any partial text.
func (m *Machine) Reset() {
	m.command = false
	m.buf = m.buf[:0]
	m.histPos = len(m.history)
}

// Process consumes one key press. ok is false when the key produced no
// intent (unmapped keys and command-line editing).
func (m *Machine) Process(k Key) (in Intent, ok bool) {
	if m.command {
		return m.processCommand(k)
	}
	return m.processNormal(k)
}

func (m *Machine) processNormal(k Key) (Intent, bool) {
	s := m.panStep
	switch k.Code {
	case KeyUp, KeyDown:
		if k.Shift {
			return Intent{Kind: KindToggleType}, true
		}
		if k.Code == KeyUp {
			return Intent{Kind: KindPan, DY: s}, true
		}
		return Intent{Kind: KindPan, DY: -s}, true
	case KeyLeft:
		if k.Shift {
			return Intent{Kind: KindCycleDirection, Step: -1}, true
		}
		return Intent{Kind: KindPan, DX: s}, true
	case KeyRight:
		if k.Shift {
			return Intent{Kind: KindCycleDirection, Step: 1}, true
		}
		return Intent{Kind: KindPan, DX: -s}, true
	case KeyEnter:
		return Intent{Kind: KindCommit}, true
	case KeyNone:
	default:
		return Intent{}, false
	}

	switch r := k.Rune; {
	case r == '+' || r == '=':
		return Intent{Kind: KindZoom, Factor: m.zoomIn}, true
	case r == '-' || r == '_':
		return Intent{Kind: KindZoom, Factor: m.zoomOut}, true
	case r >= '1' && r <= '6':
		return Intent{Kind: KindSetPendingDirection, Direction: int(r - '1')}, true
	case r == 'p' || r == 'P':
		return Intent{Kind: KindSetPendingType, Segment: piping.KindPipe}, true
	case r == 'e' || r == 'E':
		return Intent{Kind: KindSetPendingType, Segment: piping.KindElbow}, true
	case r == ':' || r == ';':
		m.command = true
		m.buf = m.buf[:0]
		m.histPos = len(m.history)
	case r == runeCtrlC:
		return Intent{Kind: KindQuit}, true
	}
	return Intent{}, false
}

func (m *Machine) processCommand(k Key) (Intent, bool) {
	switch k.Code {
	case KeyEnter:
		text := strings.TrimSpace(string(m.buf))
		m.Reset()
		if text == "" {
			return Intent{}, false
		}
		m.history = append(m.history, text)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
		m.histPos = len(m.history)
		return Intent{Kind: KindCommand, Text: text}, true
	case KeyBackspace:
		if len(m.buf) == 0 {
			m.Reset()
			return Intent{}, false
		}
		m.buf = m.buf[:len(m.buf)-1]
	case KeyEscape:
		m.Reset()
	case KeyUp:
		if m.histPos > 0 {
			m.histPos--
			m.buf = append(m.buf[:0], []rune(m.history[m.histPos])...)
		}
	case KeyDown:
		if m.histPos < len(m.history) {
			m.histPos++
			m.buf = m.buf[:0]
			if m.histPos < len(m.history) {
				m.buf = append(m.buf, []rune(m.history[m.histPos])...)
			}
		}
	case KeyNone:
		switch r := k.Rune; {
		case r == runeCtrlC:
			m.Reset()
		case r == runeCtrlU:
			m.buf = m.buf[:0]
		case unicode.IsPrint(r):
			m.buf = append(m.buf, r)
		}
	}
	return Intent{}, false
}

// Package intent turns key presses into discrete editor requests.
package intent

import "isopipe/sketch/piping"

// Kind discriminates intents.
type Kind uint8

const (
	KindNone Kind = iota

	// View navigation
	KindPan     // DX, DY in screen pixels
	KindZoom    // Factor, multiplied then clamped
	KindSetPan  // DX, DY absolute offset
	KindSetZoom // Factor absolute zoom

	// Segment selection and construction
	KindCommit              // append the pending segment
	KindSetPendingType      // Segment
	KindSetPendingDirection // Direction 0..5
	KindCycleDirection      // Step, applied mod 6
	KindToggleType

	KindCommand // Text, without the prompt
	KindQuit
)

var kindNames = [...]string{
	KindNone:                "none",
	KindPan:                 "pan",
	KindZoom:                "zoom",
	KindSetPan:              "set-pan",
	KindSetZoom:             "set-zoom",
	KindCommit:              "commit",
	KindSetPendingType:      "set-pending-type",
	KindSetPendingDirection: "set-pending-direction",
	KindCycleDirection:      "cycle-direction",
	KindToggleType:          "toggle-type",
	KindCommand:             "command",
	KindQuit:                "quit",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Intent is a parsed request. Only the fields of its Kind are set.
type Intent struct {
	Kind      Kind
	DX, DY    float64
	Factor    float64
	Segment   piping.Kind
	Direction int
	Step      int
	Text      string
}

// NumDirections is the size of the direction table (+X, -X, +Y, -Y, +Z, -Z).
const NumDirections = 6

// WrapDirection folds any index into 0..NumDirections-1.
func WrapDirection(i int) int {
	i %= NumDirections
	if i < 0 {
		i += NumDirections
	}
	return i
}

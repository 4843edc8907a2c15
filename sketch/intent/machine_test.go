package intent

import (
	"testing"

	"isopipe/sketch/piping"
)

func newTestMachine() *Machine { return NewMachine(50, 1.1, 0.9) }

func typeText(m *Machine, s string) {
	for _, r := range s {
		m.Process(Key{Rune: r})
	}
}

func TestNormalKeyMap(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want Intent
	}{
		{"up", Key{Code: KeyUp}, Intent{Kind: KindPan, DY: 50}},
		{"down", Key{Code: KeyDown}, Intent{Kind: KindPan, DY: -50}},
		{"left", Key{Code: KeyLeft}, Intent{Kind: KindPan, DX: 50}},
		{"right", Key{Code: KeyRight}, Intent{Kind: KindPan, DX: -50}},
		{"shift-left", Key{Code: KeyLeft, Shift: true}, Intent{Kind: KindCycleDirection, Step: -1}},
		{"shift-right", Key{Code: KeyRight, Shift: true}, Intent{Kind: KindCycleDirection, Step: 1}},
		{"shift-up", Key{Code: KeyUp, Shift: true}, Intent{Kind: KindToggleType}},
		{"shift-down", Key{Code: KeyDown, Shift: true}, Intent{Kind: KindToggleType}},
		{"enter", Key{Code: KeyEnter}, Intent{Kind: KindCommit}},
		{"plus", Key{Rune: '+'}, Intent{Kind: KindZoom, Factor: 1.1}},
		{"minus", Key{Rune: '-'}, Intent{Kind: KindZoom, Factor: 0.9}},
		{"dir-1", Key{Rune: '1'}, Intent{Kind: KindSetPendingDirection, Direction: 0}},
		{"dir-6", Key{Rune: '6'}, Intent{Kind: KindSetPendingDirection, Direction: 5}},
		{"pipe", Key{Rune: 'p'}, Intent{Kind: KindSetPendingType, Segment: piping.KindPipe}},
		{"elbow", Key{Rune: 'e'}, Intent{Kind: KindSetPendingType, Segment: piping.KindElbow}},
		{"ctrl-c", Key{Rune: runeCtrlC}, Intent{Kind: KindQuit}},
	}
	for _, tt := range tests {
		m := newTestMachine()
		got, ok := m.Process(tt.key)
		if !ok || got != tt.want {
			t.Fatalf("%s: Process() = %+v, %v; want %+v", tt.name, got, ok, tt.want)
		}
	}
}

func TestNormalUnmappedKeys(t *testing.T) {
	m := newTestMachine()
	for _, k := range []Key{{Code: KeyEscape}, {Code: KeyBackspace}, {Rune: 'x'}, {Rune: '7'}, {Rune: '0'}} {
		if got, ok := m.Process(k); ok {
			t.Fatalf("Process(%+v) = %+v, want nothing", k, got)
		}
	}
	if m.CommandMode() {
		t.Fatal("unmapped key opened command mode")
	}
}

func TestCycleSixTimesReturns(t *testing.T) {
	m := newTestMachine()
	dir := 2
	for i := 0; i < NumDirections; i++ {
		in, ok := m.Process(Key{Code: KeyRight, Shift: true})
		if !ok {
			t.Fatal("shift-right produced nothing")
		}
		dir = WrapDirection(dir + in.Step)
	}
	if dir != 2 {
		t.Fatalf("direction after six cycles = %d, want 2", dir)
	}
}

func TestWrapDirection(t *testing.T) {
	tests := map[int]int{0: 0, 5: 5, 6: 0, -1: 5, -7: 5, 13: 1}
	for in, want := range tests {
		if got := WrapDirection(in); got != want {
			t.Fatalf("WrapDirection(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestCommandRoundTrip(t *testing.T) {
	for _, open := range []rune{':', ';'} {
		m := newTestMachine()
		if _, ok := m.Process(Key{Rune: open}); ok {
			t.Fatalf("%q produced an intent", open)
		}
		if !m.CommandMode() || m.Line() != ":" {
			t.Fatalf("after %q: mode=%v line=%q", open, m.CommandMode(), m.Line())
		}

		var got []Intent
		for _, r := range "  pipe 200 " {
			if in, ok := m.Process(Key{Rune: r}); ok {
				got = append(got, in)
			}
		}
		if in, ok := m.Process(Key{Code: KeyEnter}); ok {
			got = append(got, in)
		}
		if len(got) != 1 || got[0] != (Intent{Kind: KindCommand, Text: "pipe 200"}) {
			t.Fatalf("intents = %+v, want one command", got)
		}
		if m.CommandMode() || m.Line() != "" {
			t.Fatal("Enter did not close the command line")
		}
		if h := m.History(); len(h) != 1 || h[0] != "pipe 200" {
			t.Fatalf("History() = %q", h)
		}
	}
}

func TestCommandKeysDoNotNavigate(t *testing.T) {
	m := newTestMachine()
	m.Process(Key{Rune: ':'})
	for _, k := range []Key{{Rune: '+'}, {Rune: '1'}, {Code: KeyLeft}, {Code: KeyRight, Shift: true}} {
		if in, ok := m.Process(k); ok {
			t.Fatalf("Process(%+v) in command mode = %+v", k, in)
		}
	}
	if m.Line() != ":+1" {
		t.Fatalf("Line() = %q, want %q", m.Line(), ":+1")
	}
}

func TestEmptyCommandEmitsNothing(t *testing.T) {
	m := newTestMachine()
	m.Process(Key{Rune: ':'})
	typeText(m, "   ")
	if in, ok := m.Process(Key{Code: KeyEnter}); ok {
		t.Fatalf("empty command produced %+v", in)
	}
	if m.CommandMode() || len(m.History()) != 0 {
		t.Fatal("empty command left state behind")
	}
}

func TestBackspacePastPromptLeavesCommandMode(t *testing.T) {
	m := newTestMachine()
	m.Process(Key{Rune: ':'})
	typeText(m, "ab")
	m.Process(Key{Code: KeyBackspace})
	if m.Line() != ":a" {
		t.Fatalf("Line() = %q, want :a", m.Line())
	}
	m.Process(Key{Code: KeyBackspace})
	if !m.CommandMode() {
		t.Fatal("left command mode with the prompt still present")
	}
	m.Process(Key{Code: KeyBackspace})
	if m.CommandMode() {
		t.Fatal("backspace over the prompt kept command mode")
	}
}

func TestEscapeCancels(t *testing.T) {
	m := newTestMachine()
	m.Process(Key{Rune: ':'})
	typeText(m, "clear")
	if in, ok := m.Process(Key{Code: KeyEscape}); ok {
		t.Fatalf("escape produced %+v", in)
	}
	if m.CommandMode() || len(m.History()) != 0 {
		t.Fatal("escape did not cancel")
	}
	// Back in normal mode the arrows pan again.
	if in, _ := m.Process(Key{Code: KeyUp}); in.Kind != KindPan {
		t.Fatalf("after escape: %+v", in)
	}
}

func TestHistoryRecall(t *testing.T) {
	m := newTestMachine()
	for _, c := range []string{"home", "zoom 2"} {
		m.Process(Key{Rune: ':'})
		typeText(m, c)
		m.Process(Key{Code: KeyEnter})
	}
	m.Process(Key{Rune: ':'})
	m.Process(Key{Code: KeyUp})
	if m.Line() != ":zoom 2" {
		t.Fatalf("Line() = %q", m.Line())
	}
	m.Process(Key{Code: KeyUp})
	m.Process(Key{Code: KeyUp})
	if m.Line() != ":home" {
		t.Fatalf("Line() = %q", m.Line())
	}
	m.Process(Key{Code: KeyDown})
	m.Process(Key{Code: KeyDown})
	if m.Line() != ":" {
		t.Fatalf("Line() = %q, want empty prompt", m.Line())
	}
}

func TestCtrlUClearsLine(t *testing.T) {
	m := newTestMachine()
	m.Process(Key{Rune: ':'})
	typeText(m, "oops")
	m.Process(Key{Rune: runeCtrlU})
	if m.Line() != ":" || !m.CommandMode() {
		t.Fatalf("Line() = %q", m.Line())
	}
}

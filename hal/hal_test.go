package hal

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRGB565RoundTripKeepsHighBits(t *testing.T) {
	tests := [][3]uint8{
		{0, 0, 0},
		{255, 255, 255},
		{30, 30, 30},
		{80, 160, 255},
	}
	for _, c := range tests {
		r, g, b := rgb888From565(rgb565(c[0], c[1], c[2]))
		if r>>3 != c[0]>>3 || g>>2 != c[1]>>2 || b>>3 != c[2]>>3 {
			t.Fatalf("round trip %v = (%d, %d, %d)", c, r, g, b)
		}
	}
	if r, g, b := rgb888From565(0xFFFF); r != 255 || g != 255 || b != 255 {
		t.Fatalf("white = (%d, %d, %d)", r, g, b)
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride %d, len %d", fb.StrideBytes(), len(fb.Buffer()))
	}
	if fb.resize(4, 3) {
		t.Fatal("resize to the same size reallocated")
	}
	if !fb.resize(10, 0) {
		t.Fatal("resize did not reallocate")
	}
	if fb.Width() != 10 || fb.Height() != 1 || len(fb.Buffer()) != 20 {
		t.Fatalf("after resize: %dx%d len %d", fb.Width(), fb.Height(), len(fb.Buffer()))
	}
}

func TestFramebufferClearAndSnapshot(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	fb.ClearRGB(255, 0, 0)
	pix := make([]byte, 2*2*4)
	fb.snapshotRGBA(pix)
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 255 || pix[i+1] != 0 || pix[i+2] != 0 || pix[i+3] != 255 {
			t.Fatalf("pixel %d = %v", i/4, pix[i:i+4])
		}
	}
}

func TestKeysFromText(t *testing.T) {
	got := KeysFromText(":p\b\x1b\n")
	want := []KeyEvent{
		{Press: true, Rune: ':'},
		{Press: true, Rune: 'p'},
		{Press: true, Code: KeyBackspace},
		{Press: true, Code: KeyEscape},
		{Press: true, Code: KeyEnter},
	}
	if len(got) != len(want) {
		t.Fatalf("KeysFromText() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("KeysFromText()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestKeyboardDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < keyQueueLen+10; i++ {
		k.inject(KeyEvent{Press: true, Rune: 'x'})
	}
	if len(k.Events()) != keyQueueLen {
		t.Fatalf("queued %d events, want %d", len(k.Events()), keyQueueLen)
	}
}

func TestRunHeadlessFeedsScript(t *testing.T) {
	var log bytes.Buffer
	var seen []KeyEvent
	steps := 0
	newApp := func(h HAL) func() error {
		h.Logger().WriteLineString("started")
		kbd := h.Input().Keyboard()
		return func() error {
			steps++
			for {
				select {
				case ev := <-kbd.Events():
					seen = append(seen, ev)
				default:
					return nil
				}
			}
		}
	}
	cfg := HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 5, Script: KeysFromText("ab")}
	err := RunHeadless(context.Background(), Options{Width: 8, Height: 8, LogOutput: &log}, newApp, cfg)
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
	if len(seen) != 2 || seen[0].Rune != 'a' || seen[1].Rune != 'b' {
		t.Fatalf("seen = %+v", seen)
	}
	if !strings.Contains(log.String(), "started") {
		t.Fatalf("log = %q", log.String())
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, Options{}, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 10})
	if err != context.Canceled {
		t.Fatalf("RunHeadless(canceled) = %v", err)
	}
}

func TestRunHeadlessStopsOnQuit(t *testing.T) {
	steps := 0
	newApp := func(HAL) func() error {
		return func() error {
			steps++
			if steps == 3 {
				return ErrQuit
			}
			return nil
		}
	}
	if err := RunHeadless(context.Background(), Options{}, newApp, HeadlessConfig{Hz: 1000}); err != nil {
		t.Fatalf("RunHeadless = %v, want nil", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
}

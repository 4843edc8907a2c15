package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Script is fed to the keyboard, one event per tick, before the step.
	Script []KeyEvent
}

// RunHeadless runs the sketch without opening a window. A step returning
// ErrQuit stops the loop cleanly.
func RunHeadless(ctx context.Context, opts Options, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(opts.withDefaults())
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	script := cfg.Script
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if len(script) > 0 {
				h.kbd.inject(script[0])
				script = script[1:]
			}
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// KeysFromText turns typed text into key presses: '\n' is Enter, '\b'
// Backspace and 0x1b Escape; everything else is a text rune.
func KeysFromText(s string) []KeyEvent {
	var out []KeyEvent
	for _, r := range s {
		ev := KeyEvent{Press: true}
		switch r {
		case '\n', '\r':
			ev.Code = KeyEnter
		case '\b':
			ev.Code = KeyBackspace
		case 0x1b:
			ev.Code = KeyEscape
		default:
			ev.Rune = r
		}
		out = append(out, ev)
	}
	return out
}

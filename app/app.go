// Package app wires the host HAL to the sketch: key events in, one
// rendered frame out per step.
package app

import (
	"isopipe/hal"
	"isopipe/sketch/config"
	"isopipe/sketch/editor"
	"isopipe/sketch/hud"
	"isopipe/sketch/intent"
	"isopipe/sketch/logger"
	"isopipe/sketch/raster"
)

type sketch struct {
	h   hal.HAL
	cfg config.Config
	log *logger.Logger

	machine *intent.Machine
	editor  *editor.Editor
	hud     *hud.HUD

	target raster.RGB565Target
	raster *raster.Rasterizer
	failed bool
}

// New builds the sketch and returns its per-frame step.
func New(h hal.HAL, cfg config.Config) func() error {
	return newSketch(h, cfg).step
}

func newSketch(h hal.HAL, cfg config.Config) *sketch {
	level, err := logger.ParseLevel(cfg.LogLevel)
	log := logger.New(h.Logger(), level)
	if err != nil {
		log.Warn("%v; using %s", err, level)
	}

	s := &sketch{
		h:       h,
		cfg:     cfg,
		log:     log,
		machine: intent.NewMachine(cfg.Input.PanStep, cfg.Input.ZoomIn, cfg.Input.ZoomOut),
		editor:  editor.New(cfg, log),
		hud:     hud.New(),
	}
	s.raster = raster.NewRasterizer(&s.target)
	log.Info("sketch ready: mode %s, %dx%d", cfg.Mode, cfg.Window.Width, cfg.Window.Height)
	return s
}

func (s *sketch) step() (err error) {
	if s.failed {
		return nil
	}
	defer s.recoverPanic(&err)

	s.drainInput()
	if s.editor.Quit() {
		s.log.Info("quit")
		return hal.ErrQuit
	}
	return s.render()
}

// drainInput applies at most MaxEventsPerFrame queued key presses.
func (s *sketch) drainInput() {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for i := 0; i < s.cfg.Input.MaxEventsPerFrame; i++ {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			if it, ok := s.machine.Process(keyFromHAL(ev)); ok {
				s.log.Debug("intent %v", it.Kind)
				s.editor.Apply(it)
			}
		default:
			return
		}
	}
}

func (s *sketch) render() error {
	fb := s.framebuffer()
	if fb == nil {
		return nil
	}
	s.bindTarget(fb)
	s.editor.Resize(s.target.W, s.target.H)

	s.raster.Clear(raster.ColorBackground)
	s.editor.Frame(s.raster)
	s.hud.Draw(&s.target, s.editor.Status(s.machine.Line()))
	return fb.Present()
}

func (s *sketch) framebuffer() hal.Framebuffer {
	d := s.h.Display()
	if d == nil {
		return nil
	}
	fb := d.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	return fb
}

// bindTarget points the raster target at the current framebuffer, which
// the window backend reallocates on resize.
func (s *sketch) bindTarget(fb hal.Framebuffer) {
	s.target = raster.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
}

func keyFromHAL(ev hal.KeyEvent) intent.Key {
	k := intent.Key{Rune: ev.Rune, Shift: ev.Shift}
	switch ev.Code {
	case hal.KeyUp:
		k.Code = intent.KeyUp
	case hal.KeyDown:
		k.Code = intent.KeyDown
	case hal.KeyLeft:
		k.Code = intent.KeyLeft
	case hal.KeyRight:
		k.Code = intent.KeyRight
	case hal.KeyEnter:
		k.Code = intent.KeyEnter
	case hal.KeyEscape:
		k.Code = intent.KeyEscape
	case hal.KeyBackspace:
		k.Code = intent.KeyBackspace
	}
	return k
}

//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"isopipe/internal/buildinfo"
)

// RunWindow opens a resizable desktop window that displays the framebuffer
// and forwards keyboard input. It blocks until the window closes or the
// step returns ErrQuit.
func RunWindow(opts Options, newApp func(HAL) func() error) error {
	opts = opts.withDefaults()
	h := newHost(opts)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	title := opts.Title
	if title == "" {
		title = "IsoPiping"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(opts.Width*opts.Scale, opts.Height*opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)
	g.scale = opts.Scale

	err := ebiten.RunGame(g)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	scale int
	pix   []byte
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.pix = make([]byte, w*h*4)
	}

	fb.snapshotRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout tracks the window size so the sketch redraws at native
// resolution after a resize.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scale
	if s <= 0 {
		s = 1
	}
	w, h := outsideWidth/s, outsideHeight/s
	g.h.fb.resize(w, h)
	return g.h.fb.Width(), g.h.fb.Height()
}

//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var navKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyNumpadEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
}

func (k *hostKeyboard) poll() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	if ctrl {
		emitCtrl := func(key ebiten.Key, r rune) {
			if inpututil.IsKeyJustPressed(key) {
				k.inject(KeyEvent{Press: true, Rune: r})
			}
		}
		emitCtrl(ebiten.KeyC, 0x03)
		emitCtrl(ebiten.KeyU, 0x15)
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		k.inject(KeyEvent{Press: true, Rune: r, Shift: shift})
	}

	for _, nk := range navKeys {
		if inpututil.IsKeyJustPressed(nk.key) {
			k.inject(KeyEvent{Code: nk.code, Press: true, Shift: shift})
		}
		if inpututil.IsKeyJustReleased(nk.key) {
			k.inject(KeyEvent{Code: nk.code, Press: false, Shift: shift})
		}
	}
}

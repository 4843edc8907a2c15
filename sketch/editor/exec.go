package editor

import (
	"isopipe/sketch/command"
	"isopipe/sketch/config"
	"isopipe/sketch/flat"
	"isopipe/sketch/raster"
)

// Execute parses and runs one command line.
func (e *Editor) Execute(text string) error {
	c, err := command.Parse(text)
	if err != nil {
		return err
	}

	switch c.Op {
	case command.OpLine:
		col := raster.ColorSegment
		if c.HasColor {
			col = c.Color
		}
		e.canvas.AddLine(flat.Point2{X: c.P1[0], Y: c.P1[1]}, flat.Point2{X: c.P2[0], Y: c.P2[1]}, col)
	case command.OpClear:
		e.canvas.Clear()
	case command.OpPipe:
		if e.mode != config.ModeIso {
			return ErrIsoOnly
		}
		length := e.cfg.Piping.PipeLength
		if c.HasLength {
			length = c.Length
		}
		return e.commitPipe(length)
	case command.OpElbow:
		if e.mode != config.ModeIso {
			return ErrIsoOnly
		}
		return e.commitElbow(c.Direction)
	case command.OpZoom:
		e.view.AdjustZoom(c.Factor)
	case command.OpPan:
		e.view.Pan(c.DX, c.DY)
	case command.OpHome:
		e.view.Home()
	case command.OpMode:
		e.SetMode(config.Mode(c.Mode))
	case command.OpQuit:
		e.quit = true
	}
	e.message = ""
	return nil
}

// SetMode switches the active front end. The view is shared.
func (e *Editor) SetMode(m config.Mode) {
	if m == e.mode {
		return
	}
	e.log.Info("mode %s -> %s", e.mode, m)
	e.mode = m
}

// Package editor is the sketch controller. It owns the piping chain, the
// shared viewport, the flat canvas and the pending segment selection,
// applies intents and composes each frame.
package editor

import (
	"errors"
	"fmt"

	"isopipe/sketch/command"
	"isopipe/sketch/config"
	"isopipe/sketch/flat"
	"isopipe/sketch/geom"
	"isopipe/sketch/hud"
	"isopipe/sketch/intent"
	"isopipe/sketch/logger"
	"isopipe/sketch/piping"
	"isopipe/sketch/raster"
	"isopipe/sketch/view"
)

const (
	segmentWidth = 2
	gridWidth    = 1
	anchorArm    = 6
)

// ErrIsoOnly is returned for segment operations while the flat canvas is
// active.
var ErrIsoOnly = errors.New("segment editing needs iso mode")

// Editor is not safe for concurrent use; the frame step owns it.
type Editor struct {
	cfg config.Config
	log *logger.Logger

	sys    *piping.System
	view   *view.View
	canvas *flat.Canvas
	mode   config.Mode

	pendingKind piping.Kind
	pendingDir  int

	message string
	quit    bool
}

func New(cfg config.Config, log *logger.Logger) *Editor {
	v := view.New(cfg.Window.Width, cfg.Window.Height)
	v.BaseGrid = cfg.View.BaseGrid

	c := flat.New(v)
	c.ShowGrid = cfg.View.ShowGrid
	c.Seed()

	return &Editor{
		cfg:         cfg,
		log:         log.WithPrefix("editor"),
		sys:         piping.NewSystem(),
		view:        v,
		canvas:      c,
		mode:        cfg.Mode,
		pendingKind: piping.KindPipe,
	}
}

func (e *Editor) System() *piping.System { return e.sys }
func (e *Editor) View() *view.View        { return e.view }
func (e *Editor) Canvas() *flat.Canvas    { return e.canvas }
func (e *Editor) Mode() config.Mode       { return e.mode }

// Pending returns the segment kind and direction index the next commit uses.
func (e *Editor) Pending() (piping.Kind, int) { return e.pendingKind, e.pendingDir }

// Quit reports whether a quit was requested.
func (e *Editor) Quit() bool { return e.quit }

// Message is the last command result shown on the overlay.
func (e *Editor) Message() string { return e.message }

func (e *Editor) Resize(width, height int) { e.view.Resize(width, height) }

// Apply performs one intent. Rejected intents are logged and leave the
// model unchanged.
func (e *Editor) Apply(in intent.Intent) {
	switch in.Kind {
	case intent.KindPan:
		e.view.Pan(in.DX, in.DY)
	case intent.KindZoom:
		e.view.AdjustZoom(in.Factor)
	case intent.KindSetPan:
		e.view.SetPan(in.DX, in.DY)
	case intent.KindSetZoom:
		e.view.SetZoom(in.Factor)
	case intent.KindCommit:
		if err := e.Commit(); err != nil {
			e.reject("commit", err)
		}
	case intent.KindSetPendingType:
		e.pendingKind = in.Segment
	case intent.KindToggleType:
		if e.pendingKind == piping.KindPipe {
			e.pendingKind = piping.KindElbow
		} else {
			e.pendingKind = piping.KindPipe
		}
	case intent.KindSetPendingDirection:
		e.pendingDir = intent.WrapDirection(in.Direction)
	case intent.KindCycleDirection:
		e.pendingDir = intent.WrapDirection(e.pendingDir + in.Step)
	case intent.KindCommand:
		e.log.Debug("command %q", in.Text)
		if err := e.Execute(in.Text); err != nil {
			e.reject(in.Text, err)
		}
	case intent.KindQuit:
		e.quit = true
	}
}

func (e *Editor) reject(what string, err error) {
	e.log.Warn("%s: %v", what, err)
	e.message = err.Error()
}

// Commit appends the pending segment.
func (e *Editor) Commit() error {
	return e.CommitSegment(e.pendingKind, e.pendingDir)
}

// CommitSegment appends a segment at the open flange. Pipes run along the
// open flange at the configured length and ignore dir; elbows turn toward
// command.Directions[dir].
func (e *Editor) CommitSegment(kind piping.Kind, dir int) error {
	if e.mode != config.ModeIso {
		return ErrIsoOnly
	}
	switch kind {
	case piping.KindPipe:
		return e.commitPipe(e.cfg.Piping.PipeLength)
	case piping.KindElbow:
		return e.commitElbow(dir)
	}
	return fmt.Errorf("segment kind %v: %w", kind, piping.ErrInvalidSegmentParameter)
}

func (e *Editor) commitPipe(length float64) error {
	p, err := e.sys.AddPipe(length)
	if err != nil {
		return err
	}
	e.log.Info("pipe %g -> %v", p.Length(), p.End())
	e.message = ""
	return nil
}

func (e *Editor) commitElbow(dir int) error {
	d := intent.WrapDirection(dir)
	el, err := e.sys.AddElbow(command.Directions[d])
	if err != nil {
		return err
	}
	e.log.Info("elbow %s -> %v", command.DirectionNames[d], el.End())
	e.message = ""
	return nil
}

// Ghost builds the pending segment at the open flange without committing
// it. The error is non-nil when the pending selection cannot attach.
func (e *Editor) Ghost() (piping.Segment, error) {
	cur := e.sys.Current()
	if e.pendingKind == piping.KindElbow {
		return piping.NewElbow90(cur, command.Directions[e.pendingDir])
	}
	return piping.NewPipe(cur, e.cfg.Piping.PipeLength)
}

// PendingLabel describes the pending selection, e.g. "elbow +Z".
func (e *Editor) PendingLabel() string {
	if e.pendingKind == piping.KindPipe {
		return fmt.Sprintf("pipe %g", e.cfg.Piping.PipeLength)
	}
	return fmt.Sprintf("%v %s", e.pendingKind, command.DirectionNames[e.pendingDir])
}

// Frame draws the active front end. The caller clears the target first.
func (e *Editor) Frame(s raster.LineSink) {
	if e.mode == config.ModeFlat {
		e.canvas.Draw(s)
		return
	}

	if e.cfg.View.ShowGrid {
		for _, l := range e.view.IsoGrid(e.cfg.View.GridHalfLines) {
			e.line(s, l, raster.ColorGrid, gridWidth)
		}
	}
	for _, l := range e.sys.Lines() {
		e.line(s, l, raster.ColorSegment, segmentWidth)
	}
	if g, err := e.Ghost(); err == nil {
		for _, l := range g.Lines() {
			e.line(s, l, raster.ColorGhost, segmentWidth)
		}
	}
	a := e.view.WorldToScreen(e.sys.Current().Pos())
	raster.Marker(s, a.X, a.Y, anchorArm, raster.ColorAnchor, segmentWidth)
}

func (e *Editor) line(s raster.LineSink, l geom.Line, c raster.Color, width int) {
	a, b := e.view.WorldToScreen(l.A), e.view.WorldToScreen(l.B)
	s.DrawLine(a.X, a.Y, b.X, b.Y, c, width)
}

// Status snapshots the overlay fields. cmdLine is the open command line,
// if any.
func (e *Editor) Status(cmdLine string) hud.Status {
	_, ghostErr := e.Ghost()
	return hud.Status{
		Zoom:     e.view.Zoom,
		PanX:     e.view.OffsetX,
		PanY:     e.view.OffsetY,
		Mode:     string(e.mode),
		Pending:  e.PendingLabel(),
		Invalid:  e.mode == config.ModeIso && ghostErr != nil,
		Segments: e.sys.Len(),
		Entities: e.canvas.Len(),
		Command:  cmdLine,
		Message:  e.message,
	}
}

// Package command parses the text typed on the sketch command line.
//
// Input is tokenized with shell-style quoting, so `line 0 0 "10" 10 red`
// and `line 0 0 10 10 red` are the same command. An unquoted # starts a
// comment, so hex colors are written "#rrggbb" in quotes or as 0xrrggbb.
package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"isopipe/sketch/geom"
	"isopipe/sketch/raster"
)

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// Op identifies a parsed command.
type Op uint8

const (
	OpLine Op = iota + 1
	OpClear
	OpPipe
	OpElbow
	OpZoom
	OpPan
	OpHome
	OpMode
	OpQuit
)

// Command is a parsed command line. Only the fields of its Op are set.
type Command struct {
	Op Op

	// OpLine.
	P1, P2   [2]float64
	Color    raster.Color
	HasColor bool

	// OpPipe: without HasLength the configured default length is used.
	Length    float64
	HasLength bool
	// OpElbow.
	Direction int
	// OpZoom.
	Factor float64
	// OpPan.
	DX, DY float64
	// OpMode.
	Mode string
}

// Directions maps direction indices to unit axes: +X, -X, +Y, -Y, +Z, -Z.
var Directions = [6]geom.Vec3{
	geom.AxisX, geom.AxisX.Neg(),
	geom.AxisY, geom.AxisY.Neg(),
	geom.AxisZ, geom.AxisZ.Neg(),
}

// DirectionNames are the labels of Directions, in the same order.
var DirectionNames = [6]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// ParseDirection accepts "+x", "-z", "x" (positive) and the indices "1".."6".
func ParseDirection(s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= '1' && s[0] <= '6' {
		return int(s[0] - '1'), true
	}
	if len(s) == 1 {
		s = "+" + s
	}
	for i, n := range DirectionNames {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

// Parse tokenizes and parses one command line.
func Parse(line string) (Command, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return Command{}, fmt.Errorf("%q: %w", line, err)
	}
	if len(args) == 0 {
		return Command{}, ErrEmpty
	}

	name := strings.ToLower(args[0])
	args = args[1:]
	switch name {
	case "line":
		return parseLine(args)
	case "clear":
		return noArgs(OpClear, name, args)
	case "pipe":
		return parsePipe(args)
	case "elbow":
		if len(args) != 1 {
			return Command{}, usage("elbow <+x|-x|+y|-y|+z|-z>")
		}
		d, ok := ParseDirection(args[0])
		if !ok {
			return Command{}, fmt.Errorf("elbow direction %q: %w", args[0], ErrUsage)
		}
		return Command{Op: OpElbow, Direction: d}, nil
	case "zoom":
		if len(args) != 1 {
			return Command{}, usage("zoom <factor>")
		}
		f, err := parseFloat(args[0])
		if err != nil || !(f > 0) {
			return Command{}, usage("zoom <factor>, factor > 0")
		}
		return Command{Op: OpZoom, Factor: f}, nil
	case "pan":
		if len(args) != 2 {
			return Command{}, usage("pan <dx> <dy>")
		}
		v, err := parseFloats(args)
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpPan, DX: v[0], DY: v[1]}, nil
	case "home":
		return noArgs(OpHome, name, args)
	case "mode":
		if len(args) != 1 {
			return Command{}, usage("mode <iso|flat>")
		}
		m := strings.ToLower(args[0])
		if m != "iso" && m != "flat" {
			return Command{}, usage("mode <iso|flat>")
		}
		return Command{Op: OpMode, Mode: m}, nil
	case "exit", "quit", "q":
		return noArgs(OpQuit, name, args)
	}
	return Command{}, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
}

func parseLine(args []string) (Command, error) {
	if len(args) != 4 && len(args) != 5 {
		return Command{}, usage("line x1 y1 x2 y2 [color]")
	}
	v, err := parseFloats(args[:4])
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Op: OpLine, P1: [2]float64{v[0], v[1]}, P2: [2]float64{v[2], v[3]}}
	if len(args) == 5 {
		c, err := ParseColor(args[4])
		if err != nil {
			return Command{}, err
		}
		cmd.Color = c
		cmd.HasColor = true
	}
	return cmd, nil
}

func parsePipe(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return Command{Op: OpPipe}, nil
	case 1:
		l, err := parseFloat(args[0])
		if err != nil {
			return Command{}, err
		}
		// Length validity is the piping model's call.
		return Command{Op: OpPipe, Length: l, HasLength: true}, nil
	}
	return Command{}, usage("pipe [length]")
}

// ParseColor accepts a palette name, #rrggbb or 0xrrggbb.
func ParseColor(s string) (raster.Color, error) {
	if c, ok := raster.Named(strings.ToLower(s)); ok {
		return c, nil
	}
	hex := ""
	switch {
	case len(s) == 7 && s[0] == '#':
		hex = s[1:]
	case len(s) == 8 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")):
		hex = s[2:]
	}
	if hex != "" {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			return raster.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
		}
	}
	return raster.Color{}, fmt.Errorf("color %q: %w", s, ErrUsage)
}

func noArgs(op Op, name string, args []string) (Command, error) {
	if len(args) != 0 {
		return Command{}, usage(name)
	}
	return Command{Op: op}, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("number %q: %w", s, ErrUsage)
	}
	return f, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := parseFloat(a)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func usage(s string) error { return fmt.Errorf("%w: %s", ErrUsage, s) }

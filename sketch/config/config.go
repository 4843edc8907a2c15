// Package config holds the tunables of the sketch tool. Defaults cover
// every field; a YAML file may override any subset of them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects the front end shown at startup.
type Mode string

const (
	ModeIso  Mode = "iso"
	ModeFlat Mode = "flat"
)

// Config is the full set of tunables.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Scale  int    `yaml:"scale"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	FPS      int    `yaml:"fps"`
	Mode     Mode   `yaml:"mode"`
	LogLevel string `yaml:"log_level"`

	View struct {
		BaseGrid      float64 `yaml:"base_grid"`
		GridHalfLines int     `yaml:"grid_half_lines"`
		ShowGrid      bool    `yaml:"show_grid"`
	} `yaml:"view"`

	Input struct {
		PanStep           float64 `yaml:"pan_step"`
		ZoomIn            float64 `yaml:"zoom_in"`
		ZoomOut           float64 `yaml:"zoom_out"`
		MaxEventsPerFrame int     `yaml:"max_events_per_frame"`
	} `yaml:"input"`

	Piping struct {
		PipeLength float64 `yaml:"pipe_length"`
	} `yaml:"piping"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Window.Width = 1200
	c.Window.Height = 800
	c.Window.Scale = 1
	c.Window.Title = "IsoPiping"
	c.FPS = 60
	c.Mode = ModeIso
	c.LogLevel = "info"
	c.View.BaseGrid = 50
	c.View.GridHalfLines = 40
	c.View.ShowGrid = true
	c.Input.PanStep = 50
	c.Input.ZoomIn = 1.1
	c.Input.ZoomOut = 0.9
	c.Input.MaxEventsPerFrame = 64
	c.Piping.PipeLength = 100
	return c
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Decode parses YAML over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges that would otherwise break the frame loop.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("window scale %d must be positive", c.Window.Scale)
	case c.FPS <= 0:
		return fmt.Errorf("fps %d must be positive", c.FPS)
	case c.Mode != ModeIso && c.Mode != ModeFlat:
		return fmt.Errorf("mode %q must be %q or %q", c.Mode, ModeIso, ModeFlat)
	case !(c.View.BaseGrid > 0):
		return fmt.Errorf("base grid %v must be positive", c.View.BaseGrid)
	case c.View.GridHalfLines < 0:
		return fmt.Errorf("grid half lines %d must not be negative", c.View.GridHalfLines)
	case !(c.Input.ZoomIn > 0) || !(c.Input.ZoomOut > 0):
		return fmt.Errorf("zoom steps %v/%v must be positive", c.Input.ZoomIn, c.Input.ZoomOut)
	case c.Input.MaxEventsPerFrame <= 0:
		return fmt.Errorf("max events per frame %d must be positive", c.Input.MaxEventsPerFrame)
	case !(c.Piping.PipeLength > 0):
		return fmt.Errorf("pipe length %v must be positive", c.Piping.PipeLength)
	}
	return nil
}

// Marshal renders c as YAML, for -dump-config.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

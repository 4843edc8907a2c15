package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"isopipe/app"
	"isopipe/hal"
	"isopipe/internal/buildinfo"
	"isopipe/sketch/config"
	"isopipe/sketch/logger"
)

func main() {
	var (
		hcfg       hal.HeadlessConfig
		configPath string
		mode       string
		logLevel   string
		script     string
		dumpConfig bool
		version    bool
	)
	flag.StringVar(&configPath, "config", "", "YAML config file (defaults apply to missing keys).")
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&mode, "mode", "", "Front end at startup: iso or flat (overrides config).")
	flag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config).")
	flag.StringVar(&script, "type", "", `Keys to type in headless mode, one per tick ("\n" is Enter).`)
	flag.BoolVar(&dumpConfig, "dump-config", false, "Print the effective config as YAML and exit.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Printf("isopipe %s (commit %s, built %s)\n", buildinfo.Short(), buildinfo.Commit, buildinfo.Date)
		return
	}

	cfg, err := loadConfig(configPath, mode, logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if dumpConfig {
		b, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Stdout.Write(b)
		return
	}

	opts := hal.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Scale:  cfg.Window.Scale,
		Title:  cfg.Window.Title,
		TPS:    cfg.FPS,
	}
	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	if hcfg.Enabled {
		hcfg.Script = hal.KeysFromText(script)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, opts, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(opts, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(path, mode, logLevel string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if mode != "" {
		cfg.Mode = config.Mode(mode)
	}
	if logLevel != "" {
		if _, err := logger.ParseLevel(logLevel); err != nil {
			return cfg, err
		}
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

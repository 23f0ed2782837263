// Package main is the entry point for mazegen.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"github.com/samdwyer/mazegen/internal/config"
	"github.com/samdwyer/mazegen/internal/logging"
	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/menu"
	"github.com/samdwyer/mazegen/internal/telemetry"
	"github.com/samdwyer/mazegen/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logOut, closeLog := openLog(cfg.LogFile)
	defer closeLog()
	logger := logging.New(logOut, cfg.LogVerbosity)

	if cfg.LocaleDir != "" {
		gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.Settings{
		Enabled:     cfg.TelemetryEnabled,
		ServiceName: cfg.ServiceName,
		Logger:      logger,
	})
	if err != nil {
		// Continue without telemetry - the menu still works
		logger.Error(err, "telemetry setup failed")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error(err, "telemetry shutdown failed")
			}
		}()
	}

	seeds := maze.TimeSeed
	if cfg.Seed != 0 {
		seeds = maze.SeedSequence(cfg.Seed)
	}

	gen := maze.NewGenerator(
		maze.WithDimensions(cfg.Width, cfg.Height),
		maze.WithOutput(os.Stdout),
		maze.WithLogger(logger.WithName("maze")),
		maze.WithSeedSource(seeds),
		maze.WithTracer(telemetry.Tracer("maze")),
	)

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	opts := []menu.Option{
		menu.WithClearScreen(interactive),
		menu.WithColor(useColor(cfg.Color, interactive)),
		menu.WithLogger(logger.WithName("menu")),
	}
	if interactive && term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, menu.WithViewer(ui.NewViewer()))
	}

	if err := menu.New(gen, os.Stdin, os.Stdout, opts...).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error(err, "menu stopped")
		os.Exit(1)
	}
}

// useColor reports whether menu output gets ANSI styling. Piped output stays plain.
func useColor(configured, interactive bool) bool {
	return configured && interactive
}

// openLog returns the log destination; stderr unless path is set.
func openLog(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stderr, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Note: log file %s not opened, using stderr: %v", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { _ = f.Close() }
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/dicegame/internal/config"
)

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig(globals *Globals) (*config.Config, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if globals.LogLevel != "" {
		cfg.Log.Level = globals.LogLevel
	}
	if globals.LogFile != "" {
		cfg.Log.File = globals.LogFile
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, level string, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// openLogFile opens the debug log, truncating it each run so the console
// stays free of log output. "none" discards logs.
func openLogFile(settings *config.LogSettings, prefix string) (*log.Logger, func(), error) {
	if settings.File == "none" {
		logger, err := newLogger(io.Discard, settings.Level, prefix)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	cleanup := func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}

	logger, err := newLogger(f, settings.Level, prefix)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return logger, cleanup, nil
}

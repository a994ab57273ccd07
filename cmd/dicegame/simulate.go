package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/lox/dicegame/internal/bot"
	"github.com/lox/dicegame/internal/config"
	"github.com/lox/dicegame/internal/fileutil"
	"github.com/lox/dicegame/internal/gameid"
	"github.com/lox/dicegame/internal/randutil"
	"github.com/lox/dicegame/internal/simulator"
)

type SimulateCmd struct {
	Games    int    `short:"n" help:"Number of games to play (overrides config)"`
	Strategy string `help:"Autoplay strategy: first, random, greedy, spread (overrides config)"`
	Workers  int    `short:"w" help:"Parallel workers (overrides config)"`
	Seed     int64  `help:"Base RNG seed (0 for random)"`
	Size     *int   `short:"s" help:"Board size; options run from 1 to size-1 (default 10)"`
	Report   string `short:"o" help:"Write a YAML report to this path"`
}

// Validate is called by kong after parsing.
func (s *SimulateCmd) Validate() error {
	if err := validateSize(s.Size); err != nil {
		return err
	}
	if s.Games < 0 {
		return fmt.Errorf("--games must be positive, got %d", s.Games)
	}
	if s.Workers < 0 {
		return fmt.Errorf("--workers must be positive, got %d", s.Workers)
	}
	if s.Strategy != "" {
		return bot.ValidateName(s.Strategy)
	}
	return nil
}

func (s *SimulateCmd) apply(cfg *config.Config) {
	if s.Size != nil {
		cfg.Game.Size = *s.Size
	}
	if s.Seed != 0 {
		cfg.Game.Seed = s.Seed
	}
	if s.Games != 0 {
		cfg.Simulate.Games = s.Games
	}
	if s.Strategy != "" {
		cfg.Simulate.Strategy = s.Strategy
	}
	if s.Workers != 0 {
		cfg.Simulate.Workers = s.Workers
	}
	if s.Report != "" {
		cfg.Simulate.Report = s.Report
	}
}

func (s *SimulateCmd) Run(globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	s.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level, "SIM")
	if err != nil {
		return err
	}

	seed := randutil.Seed(cfg.Game.Seed)
	runID := gameid.Generate()

	sim, err := simulator.New(simulator.Config{
		Games:    cfg.Simulate.Games,
		Size:     cfg.Game.Size,
		Strategy: cfg.Simulate.Strategy,
		Workers:  cfg.Simulate.Workers,
		Seed:     seed,
		Logger:   logger.With("run", runID),
		Clock:    quartz.NewReal(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	report := simulator.NewReport(runID, result)
	fmt.Println(report.Summary())

	if cfg.Simulate.Report != "" {
		if err := fileutil.WriteYAMLAtomic(cfg.Simulate.Report, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Wrote report", "path", cfg.Simulate.Report)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/lox/dicegame/internal/config"
	"github.com/lox/dicegame/internal/game"
	"github.com/lox/dicegame/internal/gameid"
	"github.com/lox/dicegame/internal/randutil"
	"github.com/lox/dicegame/internal/shell"
)

type PlayCmd struct {
	Size        *int   `short:"s" help:"Board size; options run from 1 to size-1 (default 10)"`
	Seed        int64  `help:"Dice RNG seed (0 for random)"`
	TUI         bool   `help:"Use the full-screen interface"`
	HistoryFile string `help:"Readline history file"`
}

// Validate is called by kong after parsing.
func (p *PlayCmd) Validate() error {
	return validateSize(p.Size)
}

// validateSize rejects an explicit --size that leaves no options. A nil size
// means the flag was not given and the config value applies.
func validateSize(size *int) error {
	if size != nil && *size < 2 {
		return fmt.Errorf("--size must be at least 2, got %d", *size)
	}
	return nil
}

func (p *PlayCmd) apply(cfg *config.Config) {
	if p.Size != nil {
		cfg.Game.Size = *p.Size
	}
	if p.Seed != 0 {
		cfg.Game.Seed = p.Seed
	}
	if p.TUI {
		cfg.Shell.TUI = true
	}
	if p.HistoryFile != "" {
		cfg.Shell.HistoryFile = p.HistoryFile
	}
}

func (p *PlayCmd) Run(globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	p.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := openLogFile(cfg.Log, "PLAY")
	if err != nil {
		return err
	}
	defer closeLog()

	seed := randutil.Seed(cfg.Game.Seed)
	logger = logger.With("session", gameid.Generate())
	logger.Info("Starting game", "size", cfg.Game.Size, "seed", seed, "tui", cfg.Shell.TUI)

	g, err := game.New(cfg.Game.Size, game.NewDiceRoller(randutil.New(seed)))
	if err != nil {
		return err
	}

	if cfg.Shell.TUI {
		return shell.RunTUI(shell.NewTUIModel(g, logger, nil))
	}

	sh := shell.New(g, shell.Options{Out: os.Stdout, Logger: logger})
	rl, err := sh.NewReadline(shell.PromptConfig{
		Prompt:      cfg.Shell.Prompt,
		HistoryFile: cfg.Shell.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rl.Close(); err != nil {
			logger.Error("Failed to close readline", "error", err)
		}
	}()

	return sh.Run(rl)
}

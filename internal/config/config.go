// Package config loads dicegame settings from an optional HCL file.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config path used when --config is not given.
const DefaultFile = "dicegame.hcl"

// Config is the complete dicegame configuration.
type Config struct {
	Game     *GameSettings     `hcl:"game,block"`
	Shell    *ShellSettings    `hcl:"shell,block"`
	Log      *LogSettings      `hcl:"log,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// GameSettings configures the board.
type GameSettings struct {
	Size int   `hcl:"size,optional"`
	Seed int64 `hcl:"seed,optional"`
}

// ShellSettings configures the interactive front ends.
type ShellSettings struct {
	Prompt      string `hcl:"prompt,optional"`
	HistoryFile string `hcl:"history_file,optional"`
	TUI         bool   `hcl:"tui,optional"`
}

// LogSettings configures the debug log.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// SimulateSettings configures batch simulation runs.
type SimulateSettings struct {
	Games    int    `hcl:"games,optional"`
	Strategy string `hcl:"strategy,optional"`
	Workers  int    `hcl:"workers,optional"`
	Report   string `hcl:"report,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file is not an error;
// defaults are returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Size == 0 {
		c.Game.Size = 10
	}

	if c.Shell == nil {
		c.Shell = &ShellSettings{}
	}
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = "(dice-game) "
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "dicegame.log"
	}

	if c.Simulate == nil {
		c.Simulate = &SimulateSettings{}
	}
	if c.Simulate.Games == 0 {
		c.Simulate.Games = 10000
	}
	if c.Simulate.Strategy == "" {
		c.Simulate.Strategy = "greedy"
	}
	if c.Simulate.Workers == 0 {
		c.Simulate.Workers = runtime.NumCPU()
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	if c.Game.Size < 2 {
		return fmt.Errorf("game: size must be at least 2, got %d", c.Game.Size)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: invalid level %q", c.Log.Level)
	}

	if c.Simulate.Games < 1 {
		return fmt.Errorf("simulate: games must be positive, got %d", c.Simulate.Games)
	}
	if c.Simulate.Workers < 1 {
		return fmt.Errorf("simulate: workers must be positive, got %d", c.Simulate.Workers)
	}

	return nil
}

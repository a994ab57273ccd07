package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// exitBadArgs is the exit status for unparseable command lines.
const exitBadArgs = 2

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"dicegame.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	LogFile  string `help:"Log file path, or 'none' (overrides config)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play the dice game in an interactive shell (default)"`
	Simulate SimulateCmd      `cmd:"" help:"Autoplay many games with a strategy and report the results"`
}

// Validate is called by kong after parsing, so a bad level is a usage error.
func (c *CLI) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("--log-level must be one of debug, info, warn, error, got %q", c.LogLevel)
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("dicegame"),
		kong.Description("Clear the board by matching dice rolls to one option or a pair of options"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.Errorf("%s", err)
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		os.Exit(exitBadArgs)
	}

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

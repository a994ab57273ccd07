// Package shell implements the interactive command loop for the dice game.
//
// A Shell owns one game.Game and a turn state. Each input line is looked up
// in a command table and dispatched to its handler; commands issued out of
// turn are rejected without touching the game. The same Shell backs both
// the readline prompt and the full-screen TUI.
package shell

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/dicegame/internal/game"
)

// Options configures a Shell.
type Options struct {
	Out    io.Writer
	Logger *log.Logger
	Styles *Styles
}

// Shell drives a single game from text commands.
type Shell struct {
	game     *game.Game
	state    State
	out      io.Writer
	logger   *log.Logger
	styles   *Styles
	commands map[string]*Command
}

// New creates a shell for g. Nil options fall back to discarding output and
// logs, and to DefaultStyles.
func New(g *game.Game, opts Options) *Shell {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Styles == nil {
		opts.Styles = DefaultStyles()
	}

	s := &Shell{
		game:   g,
		state:  AwaitingRoll,
		out:    opts.Out,
		logger: opts.Logger,
		styles: opts.Styles,
	}
	s.initCommands()
	return s
}

// State returns the current turn state.
func (s *Shell) State() State {
	return s.state
}

// Game returns the game driven by the shell.
func (s *Shell) Game() *game.Game {
	return s.game
}

// Intro prints the welcome banner.
func (s *Shell) Intro() {
	s.println(s.styles.Title.Render("Welcome to the Dice Game Simulation."))
	s.println(s.styles.Info.Render("Type help or ? to list commands."))
	s.println("")
}

// Execute runs one input line and reports whether the loop should continue.
// Errors from handlers are printed, never returned: a bad command leaves the
// shell in the state it was in.
func (s *Shell) Execute(line string) bool {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(parts) == 0 {
		return true
	}

	name, args := parts[0], parts[1:]
	cmd, ok := s.commands[name]
	if !ok {
		s.logger.Debug("Unknown command", "command", name)
		s.println(s.styles.Error.Render("Please enter a valid command.") + " " +
			s.styles.Info.Render("Type 'help' for available commands."))
		return true
	}

	if !cmd.enabled(s.state) {
		s.logger.Debug("Rejected out-of-turn command", "command", cmd.Name, "state", s.state)
		s.println(s.styles.Warning.Render(fmt.Sprintf("`%s` is disabled due to the state of the game.", cmd.Name)))
		return true
	}

	cont, err := cmd.Handler(args)
	if err != nil {
		s.logger.Debug("Command failed", "command", cmd.Name, "error", err)
		s.println(s.styles.Error.Render(err.Error()))
		return true
	}
	return cont
}

// CommandNames returns the primary name of every command, sorted.
func (s *Shell) CommandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		if !seen[cmd.Name] {
			seen[cmd.Name] = true
			names = append(names, cmd.Name)
		}
	}
	slices.Sort(names)
	return names
}

func (s *Shell) setState(next State) {
	if next != s.state {
		s.logger.Debug("State change", "from", s.state, "to", next)
	}
	s.state = next
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

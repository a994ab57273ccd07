package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/dicegame/internal/game"
)

// Command is an entry in the shell's dispatch table.
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	// States lists where the command may run; nil means everywhere.
	States  []State
	Handler func(args []string) (bool, error) // bool indicates if the loop should continue
}

func (c *Command) enabled(state State) bool {
	if c.States == nil {
		return true
	}
	for _, s := range c.States {
		if s == state {
			return true
		}
	}
	return false
}

func (s *Shell) initCommands() {
	s.commands = map[string]*Command{
		"roll": {
			Name:        "roll",
			Aliases:     []string{"r"},
			Usage:       "roll",
			Description: "Roll two six-sided dice to set the next target",
			States:      []State{AwaitingRoll},
			Handler:     s.handleRoll,
		},
		"move": {
			Name:        "move",
			Aliases:     []string{"m"},
			Usage:       "move <a> [b]",
			Description: "Remove one option, or two options summing to the target",
			States:      []State{AwaitingMove},
			Handler:     s.handleMove,
		},
		"moves": {
			Name:        "moves",
			Usage:       "moves",
			Description: "List the moves available for the current target",
			States:      []State{AwaitingMove},
			Handler:     s.handleMoves,
		},
		"board": {
			Name:        "board",
			Aliases:     []string{"b"},
			Usage:       "board",
			Description: "Show the game board",
			Handler:     s.handleBoard,
		},
		"reset": {
			Name:        "reset",
			Usage:       "reset",
			Description: "Reset the board and start a new game",
			Handler:     s.handleReset,
		},
		"help": {
			Name:        "help",
			Aliases:     []string{"?"},
			Usage:       "help",
			Description: "Show available commands",
			Handler:     s.handleHelp,
		},
		"exit": {
			Name:        "exit",
			Aliases:     []string{"quit", "q"},
			Usage:       "exit",
			Description: "Close the dice game",
			Handler:     s.handleExit,
		},
	}

	for _, cmd := range s.commands {
		for _, alias := range cmd.Aliases {
			s.commands[alias] = cmd
		}
	}
}

func (s *Shell) handleRoll(args []string) (bool, error) {
	roll := s.game.Roll()
	target := roll.Sum()
	moves := s.game.Moves()

	s.logger.Info("Rolled", "dice", roll.String(), "target", target, "moves", len(moves))
	s.println(fmt.Sprintf("You have rolled: %s", s.styles.Target.Render(roll.String())))
	s.println(fmt.Sprintf("The target value is: %s", s.styles.Target.Render(strconv.Itoa(target))))

	if len(moves) == 0 {
		s.setState(Lost)
		s.logger.Info("Game lost", "target", target, "score", s.game.Score())
		s.println(s.styles.Error.Render("There are no available moves. You have lost the game!"))
		s.println(s.styles.Info.Render(fmt.Sprintf("Remaining score: %d. Type `reset` to play again.", s.game.Score())))
		return true, nil
	}

	s.setState(AwaitingMove)
	s.println(fmt.Sprintf("Available moves: %s", RenderMoves(moves, s.styles)))
	s.println(s.styles.Info.Render("Please select a move with `move <a> [b]`."))
	return true, nil
}

func (s *Shell) handleMove(args []string) (bool, error) {
	move, err := parseMove(args)
	if err != nil {
		return true, fmt.Errorf("%v. Please select a move from: %s", err, game.FormatMoves(s.game.Moves()))
	}

	if !s.game.IsValidMove(move) {
		return true, fmt.Errorf("%s is not a valid move. Please select a move from: %s", move, game.FormatMoves(s.game.Moves()))
	}

	if err := s.game.ApplyMove(move); err != nil {
		return true, err
	}

	s.logger.Info("Applied move", "move", move.String(), "score", s.game.Score())
	s.println(s.styles.Success.Render(fmt.Sprintf("Removed %s.", move)))

	if s.game.HasWon() {
		s.setState(Won)
		s.logger.Info("Game won")
		s.println(s.styles.Success.Render("Congratulations, you have won the game!"))
		s.println(s.styles.Info.Render("Type `reset` to play again."))
		return true, nil
	}

	s.setState(AwaitingRoll)
	s.println(RenderBoard(s.game.Board(), s.styles))
	return true, nil
}

func (s *Shell) handleMoves(args []string) (bool, error) {
	target, _ := s.game.Target()
	s.println(fmt.Sprintf("Moves for target %s: %s",
		s.styles.Target.Render(strconv.Itoa(target)), RenderMoves(s.game.Moves(), s.styles)))
	return true, nil
}

func (s *Shell) handleBoard(args []string) (bool, error) {
	s.println("The game board is:")
	s.println(RenderBoard(s.game.Board(), s.styles))
	if target, ok := s.game.Target(); ok && s.state == AwaitingMove {
		s.println(fmt.Sprintf("Current target: %s", s.styles.Target.Render(strconv.Itoa(target))))
	}
	return true, nil
}

func (s *Shell) handleReset(args []string) (bool, error) {
	s.game.Reset()
	s.setState(AwaitingRoll)
	s.logger.Info("Game reset")
	s.println(s.styles.Success.Render("The game board and state has been reset."))
	return true, nil
}

func (s *Shell) handleHelp(args []string) (bool, error) {
	s.println("Available commands:")

	groups := []struct {
		title string
		style func(...string) string
		names []string
	}{
		{"Game Actions:", s.styles.Success.Render, []string{"roll", "move"}},
		{"Information:", s.styles.Info.Render, []string{"board", "moves"}},
		{"Utility:", s.styles.Warning.Render, []string{"reset", "help", "exit"}},
	}

	for _, g := range groups {
		s.println(g.style(g.title))
		for _, name := range g.names {
			if cmd, ok := s.commands[name]; ok {
				line := fmt.Sprintf("  %-14s - %s", cmd.Usage, cmd.Description)
				if len(cmd.Aliases) > 0 {
					line += fmt.Sprintf(" (%s)", strings.Join(cmd.Aliases, ", "))
				}
				s.println(line)
			}
		}
	}
	return true, nil
}

func (s *Shell) handleExit(args []string) (bool, error) {
	s.logger.Info("Exiting", "state", s.state)
	s.println(s.styles.Info.Render("Thanks for playing!"))
	return false, nil
}

// parseMove reads one or two integer options.
func parseMove(args []string) (game.Move, error) {
	if len(args) == 0 || len(args) > 2 {
		return game.Move{}, errors.New("a move is one option, or two options separated by a space")
	}

	opts := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return game.Move{}, fmt.Errorf("%q is not a valid option", arg)
		}
		opts[i] = n
	}

	if len(opts) == 1 {
		return game.Single(opts[0]), nil
	}
	return game.Pair(opts[0], opts[1]), nil
}

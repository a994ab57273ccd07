package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// LineReader supplies input lines. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// PromptConfig configures the readline front end.
type PromptConfig struct {
	Prompt      string
	HistoryFile string
}

// NewReadline creates a readline instance with tab completion over the
// shell's command names.
func (s *Shell) NewReadline(cfg PromptConfig) (*readline.Instance, error) {
	completer := readline.NewPrefixCompleter()
	for _, name := range s.CommandNames() {
		completer.Children = append(completer.Children, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.styles.Prompt.Render(cfg.Prompt),
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

// Run prints the intro and executes lines from r until exit or EOF.
func (s *Shell) Run(r LineReader) error {
	s.Intro()

	for {
		line, err := r.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.println(s.styles.Info.Render("Use 'exit' to quit"))
			continue
		} else if errors.Is(err, io.EOF) {
			s.logger.Info("Input closed", "state", s.state)
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		if !s.Execute(line) {
			return nil
		}
	}
}

package shell

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dicegame/internal/game"
)

type testShell struct {
	*Shell
	out *bytes.Buffer
}

// output returns everything printed since the last call.
func (ts *testShell) output() string {
	s := ts.out.String()
	ts.out.Reset()
	return s
}

func newTestShell(t *testing.T, size int, rolls ...game.Roll) *testShell {
	t.Helper()
	g, err := game.New(size, game.NewScriptedRoller(rolls...))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	sh := New(g, Options{Out: out, Logger: logger, Styles: PlainStyles()})
	return &testShell{Shell: sh, out: out}
}

func TestShellStartsAwaitingRoll(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize)
	assert.Equal(t, AwaitingRoll, ts.State())
}

func TestMoveBeforeRollIsRejected(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize)

	assert.True(t, ts.Execute("move 7"))
	assert.Contains(t, ts.output(), "`move` is disabled due to the state of the game.")
	assert.Equal(t, AwaitingRoll, ts.State())
	assert.Len(t, ts.Game().Board().Remaining(), 9)
}

func TestRollThenMove(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize, game.Roll{3, 4})

	require.True(t, ts.Execute("roll"))
	out := ts.output()
	assert.Contains(t, out, "You have rolled: (3, 4)")
	assert.Contains(t, out, "The target value is: 7")
	assert.Contains(t, out, "Available moves: [7, (1, 6), (2, 5), (3, 4)]")
	assert.Equal(t, AwaitingMove, ts.State())

	require.True(t, ts.Execute("move 4 3"))
	out = ts.output()
	assert.Contains(t, out, "Removed (3, 4).")
	assert.Contains(t, out, "1 2 - - 5 6 7 8 9")
	assert.Contains(t, out, "Remaining score: 38")
	assert.Equal(t, AwaitingRoll, ts.State())
}

func TestRollTwiceIsRejected(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize, game.Roll{1, 1}, game.Roll{6, 6})

	ts.Execute("roll")
	ts.output()

	ts.Execute("roll")
	assert.Contains(t, ts.output(), "`roll` is disabled due to the state of the game.")
	target, _ := ts.Game().Target()
	assert.Equal(t, 2, target)
}

func TestInvalidMoveKeepsState(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize, game.Roll{2, 2})
	ts.Execute("roll")
	ts.output()

	tests := []struct {
		name string
		line string
		want string
	}{
		{"wrong single", "move 5", "5 is not a valid move. Please select a move from: [4, (1, 3)]"},
		{"wrong pair", "move 2 2", "(2, 2) is not a valid move."},
		{"not a number", "move four", `"four" is not a valid option. Please select a move from: [4, (1, 3)]`},
		{"no options", "move", "a move is one option, or two options separated by a space"},
		{"zero in pair", "move 4 0", `"0" is not a valid option. Please select a move from: [4, (1, 3)]`},
		{"negative option", "move -1 5", `"-1" is not a valid option.`},
		{"too many options", "move 1 2 1", "a move is one option, or two options separated by a space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, ts.Execute(tt.line))
			assert.Contains(t, ts.output(), tt.want)
			assert.Equal(t, AwaitingMove, ts.State())
			assert.Len(t, ts.Game().Board().Remaining(), 9)
		})
	}
}

func TestMovesCommand(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize, game.Roll{1, 2})

	ts.Execute("moves")
	assert.Contains(t, ts.output(), "`moves` is disabled")

	ts.Execute("roll")
	ts.output()
	ts.Execute("moves")
	assert.Contains(t, ts.output(), "Moves for target 3: [3, (1, 2)]")
}

func TestRollWithNoMovesLoses(t *testing.T) {
	ts := newTestShell(t, 3, game.Roll{6, 6}) // options 1 and 2

	ts.Execute("roll")
	out := ts.output()
	assert.Contains(t, out, "There are no available moves. You have lost the game!")
	assert.Contains(t, out, "Remaining score: 3")
	assert.Equal(t, Lost, ts.State())

	ts.Execute("roll")
	assert.Contains(t, ts.output(), "`roll` is disabled")
	ts.Execute("move 1")
	assert.Contains(t, ts.output(), "`move` is disabled")
	assert.Equal(t, Lost, ts.State())

	ts.Execute("reset")
	assert.Contains(t, ts.output(), "The game board and state has been reset.")
	assert.Equal(t, AwaitingRoll, ts.State())
	_, ok := ts.Game().Target()
	assert.False(t, ok)
}

func TestClearingBoardWins(t *testing.T) {
	ts := newTestShell(t, 3, game.Roll{1, 2})

	ts.Execute("roll")
	ts.Execute("move 1 2")
	out := ts.output()
	assert.Contains(t, out, "Congratulations, you have won the game!")
	assert.Equal(t, Won, ts.State())
	assert.True(t, ts.State().Finished())

	ts.Execute("roll")
	assert.Contains(t, ts.output(), "`roll` is disabled")

	ts.Execute("reset")
	assert.Equal(t, AwaitingRoll, ts.State())
	assert.Equal(t, []int{1, 2}, ts.Game().Board().Remaining())
}

func TestResetFromAnyState(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize, game.Roll{5, 5})
	ts.Execute("roll")
	require.Equal(t, AwaitingMove, ts.State())

	ts.Execute("reset")
	assert.Equal(t, AwaitingRoll, ts.State())
	assert.Empty(t, ts.Game().Moves())
}

func TestBoardCommand(t *testing.T) {
	ts := newTestShell(t, 5, game.Roll{1, 3})

	ts.Execute("board")
	out := ts.output()
	assert.Contains(t, out, "The game board is:")
	assert.Contains(t, out, "1 2 3 4")
	assert.Contains(t, out, "Remaining score: 10")

	ts.Execute("roll")
	ts.output()
	ts.Execute("board")
	assert.Contains(t, ts.output(), "Current target: 4")
}

func TestCommandsAreCaseInsensitive(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize, game.Roll{2, 3})

	ts.Execute("  ROLL ")
	assert.Equal(t, AwaitingMove, ts.State())
	ts.Execute("Move 5")
	assert.Equal(t, AwaitingRoll, ts.State())
}

func TestUnknownCommand(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize)

	assert.True(t, ts.Execute("dance"))
	assert.Contains(t, ts.output(), "Please enter a valid command.")
	assert.True(t, ts.Execute(""))
	assert.Empty(t, ts.output())
}

func TestExitAliases(t *testing.T) {
	for _, line := range []string{"exit", "quit", "q", "EXIT"} {
		ts := newTestShell(t, game.DefaultSize)
		assert.False(t, ts.Execute(line), line)
		assert.Contains(t, ts.output(), "Thanks for playing!")
	}
}

func TestHelp(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize)

	ts.Execute("?")
	out := ts.output()
	for _, want := range []string{"Game Actions:", "roll", "move <a> [b]", "board", "moves", "reset", "exit", "quit, q"} {
		assert.Contains(t, out, want)
	}
}

func TestCommandNames(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize)
	assert.Equal(t, []string{"board", "exit", "help", "move", "moves", "reset", "roll"}, ts.CommandNames())
}

type scriptedReader struct {
	lines []string
	errs  []error
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		if err != nil {
			return "", err
		}
	}
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func TestRunUntilExit(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize, game.Roll{3, 3})
	r := &scriptedReader{lines: []string{"roll", "move 6", "exit", "roll"}}

	require.NoError(t, ts.Run(r))

	out := ts.output()
	assert.Contains(t, out, "Welcome to the Dice Game Simulation.")
	assert.Contains(t, out, "Removed 6.")
	assert.Contains(t, out, "Thanks for playing!")
	assert.Equal(t, []string{"roll"}, r.lines)
}

func TestRunStopsAtEOF(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize, game.Roll{3, 3})
	r := &scriptedReader{lines: []string{"roll"}}

	require.NoError(t, ts.Run(r))
	assert.Equal(t, AwaitingMove, ts.State())
}

func TestRunInterruptPrintsHint(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize)
	r := &scriptedReader{errs: []error{readline.ErrInterrupt}}

	require.NoError(t, ts.Run(r))
	assert.Contains(t, ts.output(), "Use 'exit' to quit")
}

func TestRunReturnsReadErrors(t *testing.T) {
	ts := newTestShell(t, game.DefaultSize)
	r := &scriptedReader{errs: []error{io.ErrUnexpectedEOF}}

	err := ts.Run(r)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

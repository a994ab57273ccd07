// Package bot provides autoplay strategies that pick one legal move per turn.
package bot

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/dicegame/internal/game"
)

// ErrUnknownStrategy is returned by New for an unrecognised strategy name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Decision is a chosen move and a short explanation for logs.
type Decision struct {
	Move      game.Move
	Reasoning string
}

// Bot chooses a move from a non-empty list of legal moves.
type Bot interface {
	Name() string
	ChooseMove(board *game.Board, target int, moves []game.Move) Decision
}

// Names lists the strategies New understands.
func Names() []string {
	return []string{"first", "random", "greedy", "spread"}
}

// New returns the named strategy. rng is only used by strategies that need
// randomness.
func New(name string, rng *rand.Rand) (Bot, error) {
	switch name {
	case "first":
		return &FirstBot{}, nil
	case "random":
		return NewRandBot(rng), nil
	case "greedy":
		return &GreedyBot{}, nil
	case "spread":
		return &SpreadBot{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownStrategy, name, Names())
	}
}

// ValidateName reports whether New would accept name.
func ValidateName(name string) error {
	if !slices.Contains(Names(), name) {
		return fmt.Errorf("%w %q (want one of %v)", ErrUnknownStrategy, name, Names())
	}
	return nil
}

// FirstBot takes the first listed move: the target itself when available,
// otherwise the pair with the smallest low option.
type FirstBot struct{}

func (b *FirstBot) Name() string { return "first" }

func (b *FirstBot) ChooseMove(board *game.Board, target int, moves []game.Move) Decision {
	return Decision{Move: moves[0], Reasoning: "first listed move"}
}

// GreedyBot removes the highest option it can, since high options are the
// hardest to hit later. Ties prefer the single-option move.
type GreedyBot struct{}

func (b *GreedyBot) Name() string { return "greedy" }

func (b *GreedyBot) ChooseMove(board *game.Board, target int, moves []game.Move) Decision {
	best := moves[0]
	for _, m := range moves[1:] {
		if highest(m) > highest(best) {
			best = m
		}
	}
	return Decision{Move: best, Reasoning: fmt.Sprintf("removes highest option %d", highest(best))}
}

// SpreadBot prefers pairs to clear more options per turn, choosing the pair
// whose options are furthest apart. It falls back to the single move.
type SpreadBot struct{}

func (b *SpreadBot) Name() string { return "spread" }

func (b *SpreadBot) ChooseMove(board *game.Board, target int, moves []game.Move) Decision {
	best := moves[0]
	for _, m := range moves[1:] {
		if !best.IsPair() || (m.IsPair() && m.B-m.A > best.B-best.A) {
			best = m
		}
	}
	if best.IsPair() {
		return Decision{Move: best, Reasoning: "widest pair"}
	}
	return Decision{Move: best, Reasoning: "only single available"}
}

func highest(m game.Move) int {
	return max(m.A, m.B)
}

package bot

import (
	rand "math/rand/v2"

	"github.com/lox/dicegame/internal/game"
)

// RandBot picks a uniformly random legal move.
type RandBot struct {
	rng *rand.Rand
}

// NewRandBot creates a RandBot drawing from rng.
func NewRandBot(rng *rand.Rand) *RandBot {
	return &RandBot{rng: rng}
}

func (r *RandBot) Name() string { return "random" }

func (r *RandBot) ChooseMove(board *game.Board, target int, moves []game.Move) Decision {
	return Decision{Move: moves[r.rng.IntN(len(moves))], Reasoning: "random legal move"}
}

package game

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultSize is the board size used when none is configured; it gives
// options 1 through 9.
const DefaultSize = 10

var (
	// ErrInvalidSize is returned by New for boards with no options.
	ErrInvalidSize = errors.New("board size must be at least 2")
	// ErrInvalidMove is returned by ApplyMove for a move not in Moves().
	ErrInvalidMove = errors.New("invalid move")
)

// Game holds the board, the current target and the cached legal moves for
// one player. It is not safe for concurrent use.
type Game struct {
	board  *Board
	roller Roller

	target   int // 0 when no roll is in play
	lastRoll Roll

	moves      []Move
	movesValid bool
}

// New creates a game with options 1..size-1 using roller for dice.
func New(size int, roller Roller) (*Game, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Game{
		board:  NewBoard(size),
		roller: roller,
	}, nil
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// Target returns the current roll sum and whether a roll is in play.
func (g *Game) Target() (int, bool) {
	return g.target, g.target != 0
}

// LastRoll returns the most recent dice roll.
func (g *Game) LastRoll() Roll {
	return g.lastRoll
}

// Roll throws the dice and makes their sum the target.
func (g *Game) Roll() Roll {
	r := g.roller.Roll()
	g.lastRoll = r
	g.SetTarget(r.Sum())
	return r
}

// SetTarget sets the target directly, bypassing the dice.
func (g *Game) SetTarget(target int) {
	g.target = target
	g.invalidate()
}

// Moves returns the legal moves for the current target: the target itself
// when it is an available option, then every pair of distinct available
// options summing to it, ordered by the smaller option. The result is empty
// when no roll is in play.
func (g *Game) Moves() []Move {
	if !g.movesValid {
		g.moves = g.computeMoves()
		g.movesValid = true
	}
	return slices.Clone(g.moves)
}

func (g *Game) computeMoves() []Move {
	if g.target == 0 {
		return nil
	}

	var moves []Move
	if g.board.Available(g.target) {
		moves = append(moves, Single(g.target))
	}
	for a := 1; a < g.board.Size(); a++ {
		b := g.target - a
		if b <= a {
			break
		}
		if g.board.Available(a) && g.board.Available(b) {
			moves = append(moves, Pair(a, b))
		}
	}
	return moves
}

// IsValidMove reports whether move is among the current legal moves.
func (g *Game) IsValidMove(move Move) bool {
	return slices.Contains(g.Moves(), move.Normalize())
}

// ApplyMove removes the options named by move and clears the target. The
// board is left untouched when the move is not legal.
func (g *Game) ApplyMove(move Move) error {
	move = move.Normalize()
	if !g.IsValidMove(move) {
		return fmt.Errorf("%w: %s", ErrInvalidMove, move)
	}
	for _, opt := range move.Options() {
		g.board.Remove(opt)
	}
	g.target = 0
	g.invalidate()
	return nil
}

// HasWon reports whether every option has been removed.
func (g *Game) HasWon() bool {
	return g.board.Cleared()
}

// Score returns the sum of the options still on the board.
func (g *Game) Score() int {
	return g.board.Score()
}

// Reset restores the full board and clears the target.
func (g *Game) Reset() {
	g.board.Reset()
	g.target = 0
	g.lastRoll = Roll{}
	g.invalidate()
}

func (g *Game) invalidate() {
	g.moves = nil
	g.movesValid = false
}

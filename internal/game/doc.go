// Package game implements the rules engine for the dice board game.
//
// A Game owns a Board of numbered options 1..size-1. Each turn two dice are
// rolled and their sum becomes the target. The player then removes either
// the option equal to the target, or two distinct options that add up to it.
// Clearing every option wins; a roll that leaves no legal move loses.
//
// # Basic Usage
//
//	g, err := game.New(10, game.NewDiceRoller(randutil.New(42)))
//	if err != nil {
//	    return err
//	}
//	roll := g.Roll()
//	moves := g.Moves()
//	if len(moves) == 0 {
//	    // lost
//	}
//	_ = g.ApplyMove(moves[0])
//	if g.HasWon() {
//	    // won
//	}
//
// # Deterministic Testing
//
// Rolls come from the Roller interface. Tests either inject a scripted
// Roller or bypass dice entirely with SetTarget:
//
//	g.SetTarget(7)
//	g.Moves() // [1 6] [2 5] [3 4] and 7 itself when still available
//
// The legal move list is cached per target and invalidated whenever the
// board or the target changes.
package game

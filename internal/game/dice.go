package game

import (
	"fmt"
	rand "math/rand/v2"
)

// Faces is the number of sides on each die.
const Faces = 6

// Roll is the result of throwing two dice.
type Roll [2]int

// Sum returns the total of both dice.
func (r Roll) Sum() int {
	return r[0] + r[1]
}

func (r Roll) String() string {
	return fmt.Sprintf("(%d, %d)", r[0], r[1])
}

// Roller produces dice rolls.
type Roller interface {
	Roll() Roll
}

// DiceRoller rolls two fair six-sided dice from a *rand.Rand.
type DiceRoller struct {
	rng *rand.Rand
}

// NewDiceRoller returns a Roller backed by rng.
func NewDiceRoller(rng *rand.Rand) *DiceRoller {
	return &DiceRoller{rng: rng}
}

func (d *DiceRoller) Roll() Roll {
	return Roll{d.rng.IntN(Faces) + 1, d.rng.IntN(Faces) + 1}
}

// RollerFunc adapts a function to the Roller interface.
type RollerFunc func() Roll

func (f RollerFunc) Roll() Roll {
	return f()
}

// ScriptedRoller replays a fixed sequence of rolls, cycling when exhausted.
type ScriptedRoller struct {
	rolls []Roll
	next  int
}

// NewScriptedRoller returns a Roller that yields rolls in order.
func NewScriptedRoller(rolls ...Roll) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

func (s *ScriptedRoller) Roll() Roll {
	if len(s.rolls) == 0 {
		return Roll{1, 1}
	}
	r := s.rolls[s.next%len(s.rolls)]
	s.next++
	return r
}

package game

import (
	"fmt"
	"strings"
)

// Move removes one option, or an unordered pair of distinct options, from
// the board. B is zero for a single-option move. Pairs are kept with A < B
// so that equal moves compare equal with ==.
type Move struct {
	A int
	B int
}

// Single returns a move removing one option.
func Single(option int) Move {
	return Move{A: option}
}

// Pair returns a move removing two options. Argument order is irrelevant.
func Pair(a, b int) Move {
	if a > b {
		a, b = b, a
	}
	return Move{A: a, B: b}
}

// IsPair reports whether the move removes two options.
func (m Move) IsPair() bool {
	return m.B != 0
}

// Options returns the options the move removes.
func (m Move) Options() []int {
	if m.IsPair() {
		return []int{m.A, m.B}
	}
	return []int{m.A}
}

// Sum returns the total of the options removed.
func (m Move) Sum() int {
	return m.A + m.B
}

// Normalize returns the canonical form of m, with pair options ordered.
func (m Move) Normalize() Move {
	if m.IsPair() {
		return Pair(m.A, m.B)
	}
	return m
}

func (m Move) String() string {
	if m.IsPair() {
		return fmt.Sprintf("(%d, %d)", m.A, m.B)
	}
	return fmt.Sprintf("%d", m.A)
}

// FormatMoves renders a move list as "[7, (1, 6), (2, 5)]".
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

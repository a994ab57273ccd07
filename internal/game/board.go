package game

// Board tracks which numbered options are still available. Options run from
// 1 to Size()-1.
type Board struct {
	open []bool // index 0 unused
}

// NewBoard returns a board with every option 1..size-1 available.
func NewBoard(size int) *Board {
	b := &Board{open: make([]bool, size)}
	b.Reset()
	return b
}

// Size returns the board size. The largest option is Size()-1.
func (b *Board) Size() int {
	return len(b.open)
}

// Reset makes every option available again.
func (b *Board) Reset() {
	for i := 1; i < len(b.open); i++ {
		b.open[i] = true
	}
}

// Available reports whether option is on the board and not yet removed.
func (b *Board) Available(option int) bool {
	if option < 1 || option >= len(b.open) {
		return false
	}
	return b.open[option]
}

// Remove marks option unavailable.
func (b *Board) Remove(option int) {
	if option >= 1 && option < len(b.open) {
		b.open[option] = false
	}
}

// Options returns every option on the board in ascending order, removed or not.
func (b *Board) Options() []int {
	opts := make([]int, 0, len(b.open))
	for i := 1; i < len(b.open); i++ {
		opts = append(opts, i)
	}
	return opts
}

// Remaining returns the available options in ascending order.
func (b *Board) Remaining() []int {
	var opts []int
	for i := 1; i < len(b.open); i++ {
		if b.open[i] {
			opts = append(opts, i)
		}
	}
	return opts
}

// Score returns the sum of the available options.
func (b *Board) Score() int {
	total := 0
	for i := 1; i < len(b.open); i++ {
		if b.open[i] {
			total += i
		}
	}
	return total
}

// Cleared reports whether every option has been removed.
func (b *Board) Cleared() bool {
	for i := 1; i < len(b.open); i++ {
		if b.open[i] {
			return false
		}
	}
	return true
}

// State returns a copy of the board as option -> available.
func (b *Board) State() map[int]bool {
	state := make(map[int]bool, len(b.open))
	for i := 1; i < len(b.open); i++ {
		state[i] = b.open[i]
	}
	return state
}

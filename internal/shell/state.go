package shell

// State is the position of the command loop in the turn cycle.
type State int

const (
	AwaitingRoll State = iota
	AwaitingMove
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case AwaitingRoll:
		return "awaiting roll"
	case AwaitingMove:
		return "awaiting move"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Finished reports whether the game has ended and needs a reset.
func (s State) Finished() bool {
	return s == Won || s == Lost
}

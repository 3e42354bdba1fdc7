package game

// NoPosition marks the absent origin of a placement move.
const NoPosition = -1

// Move is a (from, to) pair of arena indices. Placements carry only a
// destination.
type Move struct {
	From int
	To   int
}

// PlaceMove returns a goat placement at the given position.
func PlaceMove(to int) Move {
	return Move{From: NoPosition, To: to}
}

// IsPlacement reports whether the move is a goat placement.
func (m Move) IsPlacement() bool {
	return m.From == NoPosition
}

// MoveResult tags what applying a move did to the state.
type MoveResult int

const (
	Stepped MoveResult = iota
	Captured
	Placed
)

func (r MoveResult) String() string {
	switch r {
	case Stepped:
		return "step"
	case Captured:
		return "capture"
	default:
		return "placement"
	}
}

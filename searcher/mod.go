package searcher

import (
	"errors"

	"baghchal/game"
)

// Difficulty selects the decision policy tier for an agent.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	default:
		return "hard"
	}
}

// ParseDifficulty maps a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, errors.New("unknown difficulty: " + s)
}

// MinimaxDepth is the search depth of the hard tier.
const MinimaxDepth = 2

// ErrNoCandidates is returned by Decide when the side to move has no legal
// move or placement at all. Callers are expected to have checked terminal
// and turn-skip conditions first, so seeing this error is a caller bug.
var ErrNoCandidates = errors.New("no legal candidates")

// strategy produces a candidate move, or reports that this priority tier has
// nothing to offer and the chain should fall through to the next one.
type strategy func(*game.GameState) (game.Move, bool)

// runChain tries strategies in priority order and returns the first hit.
func runChain(gs *game.GameState, chain []strategy) (game.Move, error) {
	for _, s := range chain {
		if move, ok := s(gs); ok {
			return move, nil
		}
	}
	return game.Move{}, ErrNoCandidates
}

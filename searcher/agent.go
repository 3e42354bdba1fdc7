package searcher

import (
	"fmt"

	"baghchal/game"
	"golang.org/x/exp/rand"
)

// Agent decides moves for one side at one difficulty tier. Each decision is a
// self-contained priority chain over the passed state; the only state carried
// between calls is the hard goat's memory of unsafe placements it already
// tried.
type Agent struct {
	side        game.Side
	difficulty  Difficulty
	depth       int
	rng         *rand.Rand
	triedUnsafe map[int]bool
}

type Option func(*Agent)

// WithDepth overrides the hard-tier search depth.
func WithDepth(depth int) Option {
	return func(a *Agent) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

// WithSeed makes the agent's tie-breaking deterministic.
func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

func NewAgent(side game.Side, difficulty Difficulty, options ...Option) *Agent {
	a := &Agent{
		side:        side,
		difficulty:  difficulty,
		depth:       MinimaxDepth,
		rng:         rand.New(rand.NewSource(rand.Uint64())),
		triedUnsafe: make(map[int]bool),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Agent) Side() game.Side {
	return a.side
}

func (a *Agent) Difficulty() Difficulty {
	return a.difficulty
}

// Decide picks a move or placement for the agent's side on the given state.
// The state is never mutated; all speculation runs on clones.
func (a *Agent) Decide(gs *game.GameState) (game.Move, error) {
	if gs.Turn != a.side {
		return game.Move{}, fmt.Errorf("not %s's turn", a.side)
	}

	if a.side == game.TigerSide {
		switch a.difficulty {
		case Easy:
			return runChain(gs, a.easyTigerChain())
		case Medium:
			return runChain(gs, a.mediumTigerChain())
		default:
			return runChain(gs, a.hardTigerChain())
		}
	}

	if gs.Phase == game.PlacementPhase {
		switch a.difficulty {
		case Easy:
			return runChain(gs, a.easyGoatPlacementChain())
		case Medium:
			return runChain(gs, a.mediumGoatPlacementChain())
		default:
			return runChain(gs, a.hardGoatPlacementChain())
		}
	}

	switch a.difficulty {
	case Easy:
		return runChain(gs, a.easyGoatMovementChain())
	case Medium:
		return runChain(gs, a.mediumGoatMovementChain())
	default:
		return runChain(gs, a.hardGoatMovementChain())
	}
}

// pick returns a uniform-random element.
func (a *Agent) pick(moves []game.Move) game.Move {
	return moves[a.rng.Intn(len(moves))]
}

// bestBy returns the highest-scoring move, breaking ties uniformly at random.
func (a *Agent) bestBy(moves []game.Move, score func(game.Move) float64) game.Move {
	best := []game.Move{}
	bestScore := 0.0
	for _, m := range moves {
		s := score(m)
		if len(best) == 0 || s > bestScore {
			best = []game.Move{m}
			bestScore = s
		} else if s == bestScore {
			best = append(best, m)
		}
	}
	return a.pick(best)
}

package searcher

import (
	"math"

	"baghchal/game"
)

// Minimax runs a bounded-depth alpha-beta search from the side to move and
// returns its best move. The boolean result is false when the search found
// nothing to discriminate between: no legal moves, or every candidate scored
// the same, in which case callers fall through to cheaper heuristics.
func Minimax(gs *game.GameState, depth int) (game.Move, float64, bool) {
	perspective := gs.Turn
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, game.Evaluate(gs, perspective), false
	}

	alpha := math.Inf(-1)
	beta := math.Inf(1)
	best := moves[0]
	bestScore := math.Inf(-1)
	worstScore := math.Inf(1)
	for _, m := range moves {
		score := alphabeta(gs.Play(m), perspective, depth-1, alpha, beta)
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score < worstScore {
			worstScore = score
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	// A flat score surface carries no information; let the caller pick by
	// its own tactical fallbacks instead.
	if bestScore == worstScore {
		return best, bestScore, false
	}
	return best, bestScore, true
}

// alphabeta evaluates a position from a fixed perspective, maximizing on that
// side's turns and minimizing on the opponent's. A position where the side to
// move has no legal moves is a leaf regardless of remaining depth.
func alphabeta(gs *game.GameState, perspective game.Side, depth int, alpha, beta float64) float64 {
	moves := gs.LegalMoves()
	if depth <= 0 || len(moves) == 0 || gs.Terminal() != game.NoOutcome {
		return game.Evaluate(gs, perspective)
	}

	if gs.Turn == perspective {
		best := math.Inf(-1)
		for _, m := range moves {
			score := alphabeta(gs.Play(m), perspective, depth-1, alpha, beta)
			best = math.Max(best, score)
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, m := range moves {
		score := alphabeta(gs.Play(m), perspective, depth-1, alpha, beta)
		best = math.Min(best, score)
		beta = math.Min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}

package searcher

import (
	"math"

	"baghchal/game"
)

// easyTigerChain: jump whenever possible, otherwise wander.
func (a *Agent) easyTigerChain() []strategy {
	return []strategy{
		a.randomCapture,
		a.randomTigerMove,
	}
}

// mediumTigerChain: jump, else stalk a goat that still has an escape square,
// else wander.
func (a *Agent) mediumTigerChain() []strategy {
	return []strategy{
		a.randomCapture,
		a.randomThreateningMove,
		a.randomTigerMove,
	}
}

// hardTigerChain: best capture first, then bounded minimax, then a
// center-seeking step, then the general evaluator.
func (a *Agent) hardTigerChain() []strategy {
	return []strategy{
		a.bestCapture,
		a.minimaxMove,
		a.centerSeekingMove,
		a.bestTigerMoveByEval,
	}
}

func (a *Agent) randomCapture(gs *game.GameState) (game.Move, bool) {
	captures := gs.CaptureMoves()
	if len(captures) == 0 {
		return game.Move{}, false
	}
	return a.pick(captures), true
}

func (a *Agent) randomTigerMove(gs *game.GameState) (game.Move, bool) {
	moves := gs.MovesFor(game.TigerSide)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return a.pick(moves), true
}

// randomThreateningMove picks among moves that put the tiger next to a goat
// which still has an empty escape square, i.e. a goat worth stalking.
func (a *Agent) randomThreateningMove(gs *game.GameState) (game.Move, bool) {
	var threatening []game.Move
	for _, m := range gs.MovesFor(game.TigerSide) {
		next := gs.Play(m)
		for _, adjID := range next.Board.Adjacent(m.To) {
			if next.Cells[adjID] == game.Goat && len(next.ValidMoves(adjID)) > 0 {
				threatening = append(threatening, m)
				break
			}
		}
	}
	if len(threatening) == 0 {
		return game.Move{}, false
	}
	return a.pick(threatening), true
}

func (a *Agent) bestCapture(gs *game.GameState) (game.Move, bool) {
	captures := gs.CaptureMoves()
	if len(captures) == 0 {
		return game.Move{}, false
	}
	return a.bestBy(captures, func(m game.Move) float64 {
		return game.EvaluateCapture(gs, m)
	}), true
}

func (a *Agent) minimaxMove(gs *game.GameState) (game.Move, bool) {
	move, _, ok := Minimax(gs, a.depth)
	return move, ok
}

// centerSeekingMove returns the first move that strictly decreases the
// tiger's distance to the board's center.
func (a *Agent) centerSeekingMove(gs *game.GameState) (game.Move, bool) {
	cx, cy := boardCenter(gs.Board)
	for _, m := range gs.MovesFor(game.TigerSide) {
		if centerDistance(gs.Board, m.To, cx, cy) < centerDistance(gs.Board, m.From, cx, cy) {
			return m, true
		}
	}
	return game.Move{}, false
}

func (a *Agent) bestTigerMoveByEval(gs *game.GameState) (game.Move, bool) {
	moves := gs.MovesFor(game.TigerSide)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return a.bestBy(moves, func(m game.Move) float64 {
		return game.Evaluate(gs.Play(m), game.TigerSide)
	}), true
}

func boardCenter(b *game.Board) (float64, float64) {
	sx, sy := 0, 0
	for id := 0; id < b.Size(); id++ {
		p := b.Coord(id)
		sx += p.X
		sy += p.Y
	}
	n := float64(b.Size())
	return float64(sx) / n, float64(sy) / n
}

func centerDistance(b *game.Board, id int, cx, cy float64) float64 {
	p := b.Coord(id)
	dx := float64(p.X) - cx
	dy := float64(p.Y) - cy
	return math.Sqrt(dx*dx + dy*dy)
}

package searcher

import "baghchal/game"

// edgeBias is the chance the easy goat restricts a placement to the boundary
// when boundary positions are open.
const edgeBias = 0.65

// gridOpeningBook is the hard goat's fixed placement order on the grid board:
// perimeter intersections first (skipping the four tiger corners), then the
// interior key points around the center.
var gridOpeningBook = [][2]int{
	{1, 0}, {2, 0}, {3, 0},
	{4, 1}, {4, 2}, {4, 3},
	{3, 4}, {2, 4}, {1, 4},
	{0, 3}, {0, 2}, {0, 1},
	{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3},
	{1, 1}, {3, 1}, {1, 3}, {3, 3},
}

func (a *Agent) easyGoatPlacementChain() []strategy {
	return []strategy{
		a.biasedRandomPlacement,
	}
}

func (a *Agent) easyGoatMovementChain() []strategy {
	return []strategy{
		a.randomSafeGoatMove,
		a.randomGoatMove,
	}
}

func (a *Agent) mediumGoatPlacementChain() []strategy {
	return []strategy{
		a.randomThreatBlockingPlacement,
		a.randomTigerAdjacentPlacement,
		a.earlyBoundaryPlacement,
		a.randomPlacement,
	}
}

func (a *Agent) mediumGoatMovementChain() []strategy {
	return []strategy{
		a.clusteringOrBoundarySafeMove,
		a.randomGoatMove,
	}
}

func (a *Agent) hardGoatPlacementChain() []strategy {
	return []strategy{
		a.instantWinPlacement,
		a.bestSafeThreatBlockingPlacement,
		a.bestUnsafeThreatBlockingPlacement,
		a.openingBookPlacement,
		a.instantWinPlacement,
		a.bestPlacementByEval,
		a.lowestRiskPlacement,
	}
}

func (a *Agent) hardGoatMovementChain() []strategy {
	return []strategy{
		a.instantWinMove,
		a.bestBlockingMove,
		a.bestSafeMoveByEval,
	}
}

// --- placement strategies ---

func (a *Agent) biasedRandomPlacement(gs *game.GameState) (game.Move, bool) {
	empties := gs.EmptyPositions()
	if len(empties) == 0 {
		return game.Move{}, false
	}
	if a.rng.Float64() < edgeBias {
		var edge []int
		for _, id := range empties {
			if gs.Board.IsBoundary(id) {
				edge = append(edge, id)
			}
		}
		if len(edge) > 0 {
			empties = edge
		}
	}
	return game.PlaceMove(empties[a.rng.Intn(len(empties))]), true
}

func (a *Agent) randomPlacement(gs *game.GameState) (game.Move, bool) {
	empties := gs.EmptyPositions()
	if len(empties) == 0 {
		return game.Move{}, false
	}
	return game.PlaceMove(empties[a.rng.Intn(len(empties))]), true
}

// randomThreatBlockingPlacement occupies the landing square of an imminent
// jump, denying the capture outright.
func (a *Agent) randomThreatBlockingPlacement(gs *game.GameState) (game.Move, bool) {
	landings := threatLandings(gs)
	if len(landings) == 0 {
		return game.Move{}, false
	}
	return game.PlaceMove(landings[a.rng.Intn(len(landings))]), true
}

func (a *Agent) randomTigerAdjacentPlacement(gs *game.GameState) (game.Move, bool) {
	var candidates []int
	for _, id := range gs.EmptyPositions() {
		if gs.AdjacentCount(id, game.Tiger) > 0 {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return game.Move{}, false
	}
	return game.PlaceMove(candidates[a.rng.Intn(len(candidates))]), true
}

func (a *Agent) earlyBoundaryPlacement(gs *game.GameState) (game.Move, bool) {
	if !gs.EarlyPlacement() {
		return game.Move{}, false
	}
	var edge []int
	for _, id := range gs.EmptyPositions() {
		if gs.Board.IsBoundary(id) {
			edge = append(edge, id)
		}
	}
	if len(edge) == 0 {
		return game.Move{}, false
	}
	return game.PlaceMove(edge[a.rng.Intn(len(edge))]), true
}

// instantWinPlacement takes any placement that immobilizes every tiger.
func (a *Agent) instantWinPlacement(gs *game.GameState) (game.Move, bool) {
	for _, id := range gs.EmptyPositions() {
		next := gs.Copy()
		next.Cells[id] = game.Goat
		if next.TigerMobility() == 0 {
			return game.PlaceMove(id), true
		}
	}
	return game.Move{}, false
}

// bestSafeThreatBlockingPlacement blocks an imminent jump at its landing
// square, restricted to squares the goat itself survives on, ranked by
// boundary bonus, tiger mobility reduction, and threat count reduction.
func (a *Agent) bestSafeThreatBlockingPlacement(gs *game.GameState) (game.Move, bool) {
	var safe []game.Move
	for _, id := range threatLandings(gs) {
		if game.IsSafePlacement(gs, id) {
			safe = append(safe, game.PlaceMove(id))
		}
	}
	if len(safe) == 0 {
		return game.Move{}, false
	}
	before := game.ThreatCount(gs)
	mobility := gs.TigerMobility()
	return a.bestBy(safe, func(m game.Move) float64 {
		next := gs.Play(m)
		score := 0.0
		if gs.Board.IsBoundary(m.To) {
			score += 2
		}
		score += 3 * float64(mobility-next.TigerMobility())
		score += 10 * float64(before-game.ThreatCount(next))
		return score
	}), true
}

// bestUnsafeThreatBlockingPlacement sacrifices: when no landing square is
// safe, it still blocks the jump that removes the most threats, remembering
// squares it already tried so a repeated decision does not loop on the same
// losing block.
func (a *Agent) bestUnsafeThreatBlockingPlacement(gs *game.GameState) (game.Move, bool) {
	before := game.ThreatCount(gs)
	var candidates []game.Move
	for _, id := range threatLandings(gs) {
		if !a.triedUnsafe[id] {
			candidates = append(candidates, game.PlaceMove(id))
		}
	}
	if len(candidates) == 0 {
		return game.Move{}, false
	}
	move := a.bestBy(candidates, func(m game.Move) float64 {
		return float64(before - game.ThreatCount(gs.Play(m)))
	})
	a.triedUnsafe[move.To] = true
	return move, true
}

func (a *Agent) openingBookPlacement(gs *game.GameState) (game.Move, bool) {
	if gs.Board.Kind != game.GridKind {
		return game.Move{}, false
	}
	for _, xy := range gridOpeningBook {
		id := game.GridID(xy[0], xy[1])
		if gs.Cells[id] == game.Empty && game.IsSafePlacement(gs, id) {
			return game.PlaceMove(id), true
		}
	}
	return game.Move{}, false
}

func (a *Agent) bestPlacementByEval(gs *game.GameState) (game.Move, bool) {
	empties := gs.EmptyPositions()
	if len(empties) == 0 {
		return game.Move{}, false
	}
	placements := make([]game.Move, len(empties))
	for i, id := range empties {
		placements[i] = game.PlaceMove(id)
	}
	return a.bestBy(placements, func(m game.Move) float64 {
		return game.EvaluatePlacement(gs, m.To)
	}), true
}

// lowestRiskPlacement prefers confirmed-safe squares, and otherwise the
// square jumped at by the fewest tigers.
func (a *Agent) lowestRiskPlacement(gs *game.GameState) (game.Move, bool) {
	empties := gs.EmptyPositions()
	if len(empties) == 0 {
		return game.Move{}, false
	}
	var safe []game.Move
	var all []game.Move
	for _, id := range empties {
		m := game.PlaceMove(id)
		all = append(all, m)
		if game.IsSafePlacement(gs, id) {
			safe = append(safe, m)
		}
	}
	candidates := safe
	if len(candidates) == 0 {
		candidates = all
	}
	return a.bestBy(candidates, func(m game.Move) float64 {
		return -float64(game.PlacementRisk(gs, m.To))
	}), true
}

// --- movement strategies ---

func (a *Agent) randomGoatMove(gs *game.GameState) (game.Move, bool) {
	moves := gs.MovesFor(game.GoatSide)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return a.pick(moves), true
}

func (a *Agent) randomSafeGoatMove(gs *game.GameState) (game.Move, bool) {
	safe := safeGoatMoves(gs)
	if len(safe) == 0 {
		return game.Move{}, false
	}
	return a.pick(safe), true
}

// clusteringOrBoundarySafeMove is the medium goat's movement policy: among
// safe moves prefer clustering with other goats, then boundary destinations,
// then any safe move.
func (a *Agent) clusteringOrBoundarySafeMove(gs *game.GameState) (game.Move, bool) {
	safe := safeGoatMoves(gs)
	if len(safe) == 0 {
		return game.Move{}, false
	}

	bestCluster := 0
	var clustered []game.Move
	for _, m := range safe {
		next := gs.Play(m)
		c := next.AdjacentCount(m.To, game.Goat)
		if c > bestCluster {
			bestCluster = c
			clustered = []game.Move{m}
		} else if c == bestCluster && c > 0 {
			clustered = append(clustered, m)
		}
	}
	if len(clustered) > 0 {
		return a.pick(clustered), true
	}

	var boundary []game.Move
	for _, m := range safe {
		if gs.Board.IsBoundary(m.To) {
			boundary = append(boundary, m)
		}
	}
	if len(boundary) > 0 {
		return a.pick(boundary), true
	}
	return a.pick(safe), true
}

// instantWinMove takes any movement that immobilizes every tiger.
func (a *Agent) instantWinMove(gs *game.GameState) (game.Move, bool) {
	for _, m := range gs.MovesFor(game.GoatSide) {
		if gs.Play(m).TigerMobility() == 0 {
			return m, true
		}
	}
	return game.Move{}, false
}

// bestBlockingMove restricts to moves that strictly increase the number of
// blocked tigers and picks the one with the best resulting position.
func (a *Agent) bestBlockingMove(gs *game.GameState) (game.Move, bool) {
	blocked := gs.BlockedTigers()
	var blocking []game.Move
	for _, m := range gs.MovesFor(game.GoatSide) {
		if gs.Play(m).BlockedTigers() > blocked {
			blocking = append(blocking, m)
		}
	}
	if len(blocking) == 0 {
		return game.Move{}, false
	}
	return a.bestBy(blocking, func(m game.Move) float64 {
		return game.Evaluate(gs.Play(m), game.GoatSide)
	}), true
}

// bestSafeMoveByEval picks the best-scoring safe move, or the least-bad move
// overall when every move loses a goat.
func (a *Agent) bestSafeMoveByEval(gs *game.GameState) (game.Move, bool) {
	candidates := safeGoatMoves(gs)
	if len(candidates) == 0 {
		candidates = gs.MovesFor(game.GoatSide)
	}
	if len(candidates) == 0 {
		return game.Move{}, false
	}
	return a.bestBy(candidates, func(m game.Move) float64 {
		return game.Evaluate(gs.Play(m), game.GoatSide)
	}), true
}

// --- helpers ---

func threatLandings(gs *game.GameState) []int {
	seen := make(map[int]bool)
	var landings []int
	for _, t := range game.JumpThreats(gs) {
		if !seen[t.Landing] {
			seen[t.Landing] = true
			landings = append(landings, t.Landing)
		}
	}
	return landings
}

func safeGoatMoves(gs *game.GameState) []game.Move {
	var safe []game.Move
	for _, m := range gs.MovesFor(game.GoatSide) {
		if game.IsSafeGoatMove(gs, m) {
			safe = append(safe, m)
		}
	}
	return safe
}

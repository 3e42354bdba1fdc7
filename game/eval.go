package game

import "math"

// Terminal scores returned by Evaluate, far outside the heuristic range so
// search always prefers a win over any positional score.
const (
	WinScore  = 10000.0
	LossScore = -WinScore
)

// evalWeights are the tuned term weights of the evaluator, from the goat
// perspective. Higher is better for the goats.
type evalWeights struct {
	blockedTiger  float64
	tigerMobility float64
	unsafeGoat    float64
	clustering    float64
	edgeEarly     float64
	edgeLate      float64
	captured      float64
}

// The two topologies weigh the same terms differently: the grid is denser and
// rewards walling, the Aadu Puli graph funnels tigers through few lines so
// mobility denial matters more.
var gridWeights = evalWeights{
	blockedTiger:  120,
	tigerMobility: -4,
	unsafeGoat:    -90,
	clustering:    6,
	edgeEarly:     10,
	edgeLate:      3,
	captured:      -150,
}

var graphWeights = evalWeights{
	blockedTiger:  140,
	tigerMobility: -6,
	unsafeGoat:    -90,
	clustering:    4,
	edgeEarly:     8,
	edgeLate:      2,
	captured:      -160,
}

// earlyPlacementCutoff is the fraction of the placement budget below which
// the boundary term keeps its full weight.
const earlyPlacementCutoff = 0.6

func weightsFor(b *Board) evalWeights {
	if b.Kind == GridKind {
		return gridWeights
	}
	return graphWeights
}

// EarlyPlacement reports whether the state is still in the opening stretch of
// the placement phase.
func (gs *GameState) EarlyPlacement() bool {
	return gs.Phase == PlacementPhase &&
		float64(gs.GoatsPlaced) <= earlyPlacementCutoff*float64(gs.Board.GoatsToPlace)
}

// Evaluate scores the state from one side's perspective; higher is better for
// that side. The score is recomputed from the full state on every call.
func Evaluate(gs *GameState, perspective Side) float64 {
	if outcome := gs.Terminal(); outcome != NoOutcome {
		won := (outcome == TigerWin) == (perspective == TigerSide)
		if won {
			return WinScore
		}
		return LossScore
	}

	w := weightsFor(gs.Board)

	edgeWeight := w.edgeLate
	if gs.EarlyPlacement() {
		edgeWeight = w.edgeEarly
	}

	edgeGoats := 0
	for _, id := range gs.Positions(Goat) {
		if gs.Board.IsBoundary(id) {
			edgeGoats++
		}
	}

	score := w.blockedTiger*float64(gs.BlockedTigers()) +
		w.tigerMobility*float64(gs.TigerMobility()) +
		w.unsafeGoat*float64(gs.UnsafeGoats()) +
		w.clustering*float64(gs.GoatPairs()) +
		edgeWeight*float64(edgeGoats) +
		w.captured*float64(gs.GoatsCaptured)

	if perspective == TigerSide {
		return -score
	}
	return score
}

// GoatPairs counts adjacent goat pairs, the clustering term.
func (gs *GameState) GoatPairs() int {
	pairs := 0
	for _, id := range gs.Positions(Goat) {
		for _, adjID := range gs.Board.Adjacent(id) {
			if adjID > id && gs.Cells[adjID] == Goat {
				pairs++
			}
		}
	}
	return pairs
}

// UnsafeGoats counts goats that can be captured by some tiger on its next
// move.
func (gs *GameState) UnsafeGoats() int {
	unsafe := make(map[int]bool)
	for _, t := range JumpThreats(gs) {
		unsafe[t.Goat] = true
	}
	return len(unsafe)
}

// AdjacentCount counts neighbors of id holding the given piece type.
func (gs *GameState) AdjacentCount(id int, c Cell) int {
	count := 0
	for _, adjID := range gs.Board.Adjacent(id) {
		if gs.Cells[adjID] == c {
			count++
		}
	}
	return count
}

// Capture-ranking weights for the hard tiger: a jump is better when the
// landing square keeps the tiger mobile, sits near more goats, and hugs the
// edge where goats like to hide.
const (
	captureMobilityWeight = 5.0
	captureDensityWeight  = 3.0
	captureEdgeWeight     = 2.0
)

// EvaluateCapture scores a capture move by simulating it and rating the
// post-capture position of the jumping tiger.
func EvaluateCapture(gs *GameState, m Move) float64 {
	next := gs.Play(m)
	score := captureMobilityWeight * float64(len(next.ValidMoves(m.To)))
	score += captureDensityWeight * float64(next.AdjacentCount(m.To, Goat))
	if gs.Board.IsBoundary(m.To) {
		score += captureEdgeWeight
	}
	return score
}

// Placement-evaluator weights for the hard goat.
const (
	placementEdgeEarly      = 12.0
	placementEdgeLate       = 3.0
	placementBlockWeight    = 80.0
	placementClusterWeight  = 5.0
	placementMobilityWeight = 6.0
	placementResponseWeight = 0.5
)

// EvaluatePlacement scores placing a goat at id: boundary bonus (heavier
// early), tigers newly blocked, clustering, tiger mobility reduction, and a
// pessimistic term subtracting the best tiger reply.
func EvaluatePlacement(gs *GameState, id int) float64 {
	next := gs.Play(PlaceMove(id))

	score := 0.0
	if gs.Board.IsBoundary(id) {
		if gs.EarlyPlacement() {
			score += placementEdgeEarly
		} else {
			score += placementEdgeLate
		}
	}
	score += placementBlockWeight * float64(next.BlockedTigers()-gs.BlockedTigers())
	score += placementClusterWeight * float64(gs.AdjacentCount(id, Goat))
	score += placementMobilityWeight * float64(gs.TigerMobility()-next.TigerMobility())

	bestReply := math.Inf(-1)
	for _, reply := range next.MovesFor(TigerSide) {
		if s := Evaluate(next.Play(reply), TigerSide); s > bestReply {
			bestReply = s
		}
	}
	if !math.IsInf(bestReply, -1) {
		score -= placementResponseWeight * bestReply
	}
	return score
}

package game

import "fmt"

// Phase is the stage of the goat side: goats are first placed one by one,
// then moved.
type Phase int

const (
	PlacementPhase Phase = iota
	MovementPhase
)

// Side identifies the player to move.
type Side int

const (
	TigerSide Side = iota
	GoatSide
)

func (s Side) Opponent() Side {
	if s == TigerSide {
		return GoatSide
	}
	return TigerSide
}

func (s Side) String() string {
	if s == TigerSide {
		return "tiger"
	}
	return "goat"
}

// Outcome is the terminal status of a state.
type Outcome int

const (
	NoOutcome Outcome = iota
	TigerWin
	GoatWin
)

func (o Outcome) String() string {
	switch o {
	case TigerWin:
		return "tiger"
	case GoatWin:
		return "goat"
	default:
		return ""
	}
}

// GameState is the dynamic state of a game: everything that changes during
// play. The board is static and shared; the occupant slice and counters are
// owned by the state, so Copy produces a fully independent state for
// speculative simulation.
type GameState struct {
	Board         *Board
	Cells         []Cell
	GoatsPlaced   int
	GoatsCaptured int
	Phase         Phase
	Turn          Side
}

// NewGameState returns a fresh state for the board: tigers on their starting
// positions, no goats placed, goat to act first.
func NewGameState(b *Board) *GameState {
	gs := &GameState{
		Board: b,
		Cells: make([]Cell, b.Size()),
		Phase: PlacementPhase,
		Turn:  GoatSide,
	}
	for _, id := range b.TigerStarts {
		gs.Cells[id] = Tiger
	}
	return gs
}

// Copy returns a deep, independent copy of the state. The board is immutable
// and shared.
func (gs *GameState) Copy() *GameState {
	cellsCopy := make([]Cell, len(gs.Cells))
	copy(cellsCopy, gs.Cells)

	return &GameState{
		Board:         gs.Board,
		Cells:         cellsCopy,
		GoatsPlaced:   gs.GoatsPlaced,
		GoatsCaptured: gs.GoatsCaptured,
		Phase:         gs.Phase,
		Turn:          gs.Turn,
	}
}

// ValidMoves returns the legal destinations for the piece at id, in a stable
// order: adjacent empty positions first, then jump landings for tigers. An
// empty position has no moves.
func (gs *GameState) ValidMoves(id int) []int {
	switch gs.Cells[id] {
	case Tiger:
		return gs.tigerMoves(id)
	case Goat:
		return gs.goatMoves(id)
	default:
		return nil
	}
}

func (gs *GameState) tigerMoves(id int) []int {
	var moves []int
	for _, adjID := range gs.Board.Adjacent(id) {
		if gs.Cells[adjID] == Empty {
			moves = append(moves, adjID)
		}
	}
	for _, j := range gs.Board.JumpsFrom(id) {
		if gs.Cells[j.Over] == Goat && gs.Cells[j.To] == Empty {
			moves = append(moves, j.To)
		}
	}
	return moves
}

func (gs *GameState) goatMoves(id int) []int {
	var moves []int
	for _, adjID := range gs.Board.Adjacent(id) {
		if gs.Cells[adjID] == Empty {
			moves = append(moves, adjID)
		}
	}
	return moves
}

// Positions returns the arena indices occupied by the given piece type.
func (gs *GameState) Positions(c Cell) []int {
	var ids []int
	for id, cell := range gs.Cells {
		if cell == c {
			ids = append(ids, id)
		}
	}
	return ids
}

// EmptyPositions returns all unoccupied positions.
func (gs *GameState) EmptyPositions() []int {
	return gs.Positions(Empty)
}

// MovesFor returns every legal movement for one side, ignoring the placement
// phase.
func (gs *GameState) MovesFor(side Side) []Move {
	piece := Tiger
	if side == GoatSide {
		piece = Goat
	}
	var moves []Move
	for _, from := range gs.Positions(piece) {
		for _, to := range gs.ValidMoves(from) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// CaptureMoves returns the tiger moves that are jumps.
func (gs *GameState) CaptureMoves() []Move {
	var moves []Move
	for _, from := range gs.Positions(Tiger) {
		for _, j := range gs.Board.JumpsFrom(from) {
			if gs.Cells[j.Over] == Goat && gs.Cells[j.To] == Empty {
				moves = append(moves, Move{From: from, To: j.To})
			}
		}
	}
	return moves
}

// LegalMoves returns every legal move or placement for the side to move.
func (gs *GameState) LegalMoves() []Move {
	if gs.Turn == GoatSide && gs.Phase == PlacementPhase {
		var moves []Move
		for _, id := range gs.EmptyPositions() {
			moves = append(moves, PlaceMove(id))
		}
		return moves
	}
	return gs.MovesFor(gs.Turn)
}

// PlaceGoat puts a goat on an empty position during the placement phase and
// advances the turn.
func (gs *GameState) PlaceGoat(id int) error {
	if gs.Phase != PlacementPhase {
		return fmt.Errorf("cannot place goat: placement is complete")
	}
	if gs.Cells[id] != Empty {
		return fmt.Errorf("cannot place goat: position %d is occupied", id)
	}
	gs.Cells[id] = Goat
	gs.GoatsPlaced++
	if gs.GoatsPlaced == gs.Board.GoatsToPlace {
		gs.Phase = MovementPhase
	}
	gs.advanceTurn()
	return nil
}

// Apply executes a move against the state: it moves the piece, resolves a
// capture through the jump-triple relation, and advances the turn. Placements
// are routed to PlaceGoat. Illegal moves return an error and leave the state
// untouched; the MoveResult is only meaningful when the error is nil.
func (gs *GameState) Apply(m Move) (MoveResult, error) {
	if m.IsPlacement() {
		if err := gs.PlaceGoat(m.To); err != nil {
			return Stepped, err
		}
		return Placed, nil
	}

	piece := gs.Cells[m.From]
	if piece == Empty {
		return Stepped, fmt.Errorf("illegal move: no piece at %d", m.From)
	}
	if gs.Cells[m.To] != Empty {
		return Stepped, fmt.Errorf("illegal move: position %d is occupied", m.To)
	}

	if gs.Board.AreAdjacent(m.From, m.To) {
		gs.Cells[m.To] = piece
		gs.Cells[m.From] = Empty
		gs.advanceTurn()
		return Stepped, nil
	}

	over, ok := gs.Board.IsCapture(m.From, m.To)
	if !ok || piece != Tiger || gs.Cells[over] != Goat {
		return Stepped, fmt.Errorf("illegal move: %d -> %d is neither a step nor a jump", m.From, m.To)
	}
	gs.Cells[m.To] = piece
	gs.Cells[m.From] = Empty
	gs.Cells[over] = Empty
	gs.GoatsCaptured++
	gs.advanceTurn()
	return Captured, nil
}

// Play returns the state reached by applying a move to a copy. The caller
// must pass a legal move; simulation code only generates legal candidates.
func (gs *GameState) Play(m Move) *GameState {
	next := gs.Copy()
	if _, err := next.Apply(m); err != nil {
		panic(err)
	}
	return next
}

// advanceTurn passes the turn to the opponent. A goat turn with no legal
// movement is forfeited straight back to the tigers; a tiger turn is never
// skipped because immobile tigers end the game instead.
func (gs *GameState) advanceTurn() {
	next := gs.Turn.Opponent()
	if next == GoatSide && gs.Phase == MovementPhase && len(gs.MovesFor(GoatSide)) == 0 {
		gs.Turn = TigerSide
		return
	}
	gs.Turn = next
}

// TigerMobility returns the aggregate legal-move count of all tigers.
func (gs *GameState) TigerMobility() int {
	count := 0
	for _, id := range gs.Positions(Tiger) {
		count += len(gs.ValidMoves(id))
	}
	return count
}

// BlockedTigers counts tigers with zero legal moves.
func (gs *GameState) BlockedTigers() int {
	count := 0
	for _, id := range gs.Positions(Tiger) {
		if len(gs.ValidMoves(id)) == 0 {
			count++
		}
	}
	return count
}

// TigerWins reports whether enough goats have been captured.
func (gs *GameState) TigerWins() bool {
	return gs.GoatsCaptured >= gs.Board.RequiredCaptures
}

// GoatWins reports whether every tiger is immobilized. Capture victory is
// checked first so the two conditions are never reported together.
func (gs *GameState) GoatWins() bool {
	if gs.TigerWins() {
		return false
	}
	return gs.BlockedTigers() == len(gs.Board.TigerStarts)
}

// Terminal returns the outcome of the state, or NoOutcome if play continues.
func (gs *GameState) Terminal() Outcome {
	if gs.TigerWins() {
		return TigerWin
	}
	if gs.GoatWins() {
		return GoatWin
	}
	return NoOutcome
}

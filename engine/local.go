package engine

import (
	"fmt"
	"time"

	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/searcher"
	"baghchal/utils"

	"github.com/rs/zerolog/log"
)

// Update is one applied move, delivered to the presentation layer.
type Update struct {
	Move   game.Move
	Result game.MoveResult
	State  *game.GameState // copy
}

// UpdateGetter returns the next pending update, or a zero Update and false
// when none is pending.
type UpdateGetter func() (Update, bool)

// Local owns the authoritative game state. It is the single writer: the
// presentation layer and agents read copies, and every mutation goes through
// PlaceGoat or Move, which validate legality first.
type Local struct {
	state    *game.GameState
	updateCh chan Update
}

// New builds a local engine with a fresh state for the topology kind.
func New(kind game.Kind) *Local {
	e := &Local{}
	e.Reset(kind)
	return e
}

// Reset discards the current game and starts a new one on the given topology.
func (e *Local) Reset(kind game.Kind) *game.GameState {
	e.state = game.NewGameState(game.NewBoard(kind))
	e.updateCh = make(chan Update, MaxMoves)
	return e.state.Copy()
}

// State returns a copy of the authoritative state.
func (e *Local) State() *game.GameState {
	return e.state.Copy()
}

// ValidMoves returns the legal destinations for the piece at the position,
// or nothing for a position off the board.
func (e *Local) ValidMoves(id int) []int {
	if !e.inBounds(id) {
		return nil
	}
	return e.state.ValidMoves(id)
}

func (e *Local) inBounds(id int) bool {
	return id >= 0 && id < e.state.Board.Size()
}

// Terminal returns the outcome of the current state.
func (e *Local) Terminal() game.Outcome {
	return e.state.Terminal()
}

// Updates returns a getter for applied-move updates.
func (e *Local) Updates() UpdateGetter {
	return func() (Update, bool) {
		select {
		case u := <-e.updateCh:
			return u, true
		default:
			return Update{}, false
		}
	}
}

// PlaceGoat places a goat for the presentation layer. It rejects placements
// when the phase is over, the square is occupied, or it is not the goats'
// turn.
func (e *Local) PlaceGoat(id int) error {
	if e.state.Terminal() != game.NoOutcome {
		return fmt.Errorf("game is over - no moves allowed")
	}
	if e.state.Turn != game.GoatSide {
		return fmt.Errorf("cannot place goat: not the goats' turn")
	}
	if !e.inBounds(id) {
		return fmt.Errorf("cannot place goat: no position %d", id)
	}
	if err := e.state.PlaceGoat(id); err != nil {
		return err
	}
	e.publish(game.PlaceMove(id), game.Placed)
	return nil
}

// Move executes a step or jump for the presentation layer, rejecting any
// (from, to) pair that is not currently legal for the side to move.
func (e *Local) Move(from, to int) (game.MoveResult, error) {
	if e.state.Terminal() != game.NoOutcome {
		return game.Stepped, fmt.Errorf("game is over - no moves allowed")
	}
	if !e.inBounds(from) || !e.inBounds(to) {
		return game.Stepped, fmt.Errorf("illegal move: no position %d -> %d", from, to)
	}
	mover := e.state.Cells[from]
	if mover == game.Empty {
		return game.Stepped, fmt.Errorf("illegal move: no piece at %d", from)
	}
	if (mover == game.Tiger) != (e.state.Turn == game.TigerSide) {
		return game.Stepped, fmt.Errorf("illegal move: not %s's turn", e.state.Turn.Opponent())
	}
	if e.state.Turn == game.GoatSide && e.state.Phase == game.PlacementPhase {
		return game.Stepped, fmt.Errorf("illegal move: goats must finish placement first")
	}
	if utils.FindIndex(e.state.ValidMoves(from), to) < 0 {
		return game.Stepped, fmt.Errorf("illegal move: %d -> %d", from, to)
	}

	move := game.Move{From: from, To: to}
	result, err := e.state.Apply(move)
	if err != nil {
		return result, err
	}
	e.publish(move, result)
	return result, nil
}

func (e *Local) publish(move game.Move, result game.MoveResult) {
	e.updateCh <- Update{Move: move, Result: result, State: e.state.Copy()}
}

// Run plays the game out between two agents and returns the outcome together
// with per-decision metrics.
func (e *Local) Run(tiger, goat *searcher.Agent) (game.Outcome, []metrics.MoveMetric) {
	log.Info().
		Str("board", e.state.Board.Name).
		Str("tiger", tiger.Difficulty().String()).
		Str("goat", goat.Difficulty().String()).
		Msg("starting game")

	var moveMetrics []metrics.MoveMetric
	for step := 1; step <= MaxMoves; step++ {
		if e.state.Terminal() != game.NoOutcome {
			break
		}

		agent := tiger
		if e.state.Turn == game.GoatSide {
			agent = goat
		}

		start := time.Now()
		candidates := len(e.state.LegalMoves())
		move, err := agent.Decide(e.state.Copy())
		if err != nil {
			// The state machine skips empty goat turns and detects blocked
			// tigers as terminal, so a decision without candidates means the
			// engine and the agent disagree about the rules.
			log.Error().Err(err).Str("side", e.state.Turn.String()).Msg("agent found no move")
			break
		}

		var result game.MoveResult
		if move.IsPlacement() {
			err = e.PlaceGoat(move.To)
			result = game.Placed
		} else {
			result, err = e.Move(move.From, move.To)
		}
		if err != nil {
			log.Error().Err(err).Str("side", agent.Side().String()).Msg("agent chose an illegal move")
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:       step,
			Side:       agent.Side().String(),
			Result:     result.String(),
			Candidates: candidates,
			Duration:   time.Since(start),
		})
	}

	outcome := e.state.Terminal()
	log.Info().
		Str("winner", outcome.String()).
		Int("moves", len(moveMetrics)).
		Int("captures", e.state.GoatsCaptured).
		Msg("game over")
	return outcome, moveMetrics
}

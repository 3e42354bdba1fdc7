package engine

import (
	"testing"

	"baghchal/game"
	"baghchal/searcher"
)

func TestResetStartsFresh(t *testing.T) {
	e := New(game.GridKind)
	gs := e.State()

	if gs.Phase != game.PlacementPhase {
		t.Errorf("expected placement phase, got %v", gs.Phase)
	}
	if gs.Turn != game.GoatSide {
		t.Errorf("expected goats to move first, got %v", gs.Turn)
	}
	if got := len(gs.Positions(game.Tiger)); got != 4 {
		t.Errorf("expected 4 tigers, got %d", got)
	}

	gs = e.Reset(game.GraphKind)
	if gs.Board.Kind != game.GraphKind {
		t.Errorf("reset did not switch topology")
	}
	if got := len(gs.Positions(game.Tiger)); got != 3 {
		t.Errorf("expected 3 tigers on the graph board, got %d", got)
	}
}

func TestPlaceGoatValidation(t *testing.T) {
	e := New(game.GridKind)

	if err := e.PlaceGoat(-1); err == nil {
		t.Error("expected error for a position off the board")
	}
	if err := e.PlaceGoat(game.GridID(0, 0)); err == nil {
		t.Error("expected error placing on a tiger")
	}
	if err := e.PlaceGoat(game.GridID(2, 2)); err != nil {
		t.Fatalf("legal placement rejected: %v", err)
	}
	if err := e.PlaceGoat(game.GridID(3, 3)); err == nil {
		t.Error("expected error placing on the tigers' turn")
	}
}

func TestMoveValidation(t *testing.T) {
	e := New(game.GridKind)

	if _, err := e.Move(game.GridID(1, 1), game.GridID(1, 2)); err == nil {
		t.Error("expected error moving from an empty square")
	}
	if err := e.PlaceGoat(game.GridID(2, 2)); err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	// Tigers' turn now.
	if _, err := e.Move(game.GridID(2, 2), game.GridID(2, 1)); err == nil {
		t.Error("expected error moving a goat on the tigers' turn")
	}
	if _, err := e.Move(game.GridID(0, 0), game.GridID(3, 3)); err == nil {
		t.Error("expected error for an unreachable destination")
	}
	result, err := e.Move(game.GridID(0, 0), game.GridID(0, 1))
	if err != nil {
		t.Fatalf("legal step rejected: %v", err)
	}
	if result != game.Stepped {
		t.Errorf("expected a step, got %v", result)
	}
	// Goats' turn again, still placing.
	if _, err := e.Move(game.GridID(2, 2), game.GridID(2, 1)); err == nil {
		t.Error("expected error moving a goat during the placement phase")
	}
}

func TestOutOfRangePositions(t *testing.T) {
	e := New(game.GridKind)

	if moves := e.ValidMoves(-1); moves != nil {
		t.Errorf("expected no moves for a position off the board, got %v", moves)
	}
	if moves := e.ValidMoves(game.GridSize * game.GridSize); moves != nil {
		t.Errorf("expected no moves for a position off the board, got %v", moves)
	}
	if _, err := e.Move(-1, game.GridID(0, 1)); err == nil {
		t.Error("expected error moving from a position off the board")
	}
	if _, err := e.Move(game.GridID(0, 0), 99); err == nil {
		t.Error("expected error moving to a position off the board")
	}
}

func TestUpdatesStream(t *testing.T) {
	e := New(game.GridKind)
	next := e.Updates()

	if _, ok := next(); ok {
		t.Fatal("expected no pending update on a fresh engine")
	}

	if err := e.PlaceGoat(game.GridID(2, 2)); err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	u, ok := next()
	if !ok {
		t.Fatal("expected an update after a placement")
	}
	if u.Result != game.Placed {
		t.Errorf("expected a placement update, got %v", u.Result)
	}
	if u.Move.To != game.GridID(2, 2) {
		t.Errorf("update carries the wrong move: %+v", u.Move)
	}
	if u.State.Cells[game.GridID(2, 2)] != game.Goat {
		t.Error("update state does not reflect the placement")
	}
	if _, ok := next(); ok {
		t.Error("expected the stream to be drained")
	}
}

func TestRunPlaysOutGame(t *testing.T) {
	for _, kind := range []game.Kind{game.GridKind, game.GraphKind} {
		e := New(kind)
		tiger := searcher.NewAgent(game.TigerSide, searcher.Easy, searcher.WithSeed(21))
		goat := searcher.NewAgent(game.GoatSide, searcher.Easy, searcher.WithSeed(22))

		outcome, moves := e.Run(tiger, goat)

		if len(moves) == 0 {
			t.Fatal("expected at least one move")
		}
		if outcome == game.NoOutcome && len(moves) < MaxMoves {
			t.Errorf("game stopped after %d moves without an outcome", len(moves))
		}
		if moves[0].Side != "goat" {
			t.Errorf("expected goats to move first, got %q", moves[0].Side)
		}
		for i, m := range moves {
			if m.Step != i+1 {
				t.Fatalf("move %d has step %d", i, m.Step)
			}
			if m.Candidates <= 0 {
				t.Errorf("step %d recorded %d candidates", m.Step, m.Candidates)
			}
		}

		final := e.State()
		if outcome == game.TigerWin && final.GoatsCaptured < final.Board.RequiredCaptures {
			t.Errorf("tiger win with only %d captures", final.GoatsCaptured)
		}
		if outcome != game.NoOutcome {
			if err := e.PlaceGoat(0); err == nil {
				t.Error("expected placements to be rejected after the game ends")
			}
		}
	}
}

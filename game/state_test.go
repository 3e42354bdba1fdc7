package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCornerJumpCapture(t *testing.T) {
	gs := NewGameState(NewGridBoard())

	require.NoError(t, gs.PlaceGoat(GridID(0, 1)))
	require.Contains(t, gs.ValidMoves(GridID(0, 0)), GridID(0, 2),
		"tiger at the corner must see the jump over the goat")

	result, err := gs.Apply(Move{From: GridID(0, 0), To: GridID(0, 2)})
	require.NoError(t, err)
	require.Equal(t, Captured, result)
	require.Equal(t, Empty, gs.Cells[GridID(0, 1)], "captured goat must be removed")
	require.Equal(t, Tiger, gs.Cells[GridID(0, 2)])
	require.Equal(t, Empty, gs.Cells[GridID(0, 0)])
	require.Equal(t, 1, gs.GoatsCaptured)
}

func TestMoveLegalityClosure(t *testing.T) {
	gs := NewGameState(NewGridBoard())
	require.NoError(t, gs.PlaceGoat(GridID(2, 2)))
	require.NoError(t, func() error { _, err := gs.Apply(Move{From: GridID(0, 0), To: GridID(1, 1)}); return err }())
	require.NoError(t, gs.PlaceGoat(GridID(1, 2)))

	// Applying any generated move never stacks pieces and empties exactly the
	// source plus, on a capture, the victim.
	for _, m := range gs.MovesFor(TigerSide) {
		next := gs.Play(m)

		tigers := len(next.Positions(Tiger))
		goats := len(next.Positions(Goat))
		require.Equal(t, 4, tigers, "tiger count never changes")
		require.Equal(t, Empty, next.Cells[m.From], "source must be emptied")
		require.Equal(t, Tiger, next.Cells[m.To], "destination must hold the mover")

		if over, ok := gs.Board.IsCapture(m.From, m.To); ok && gs.Cells[over] == Goat {
			require.Equal(t, len(gs.Positions(Goat))-1, goats, "capture removes exactly one goat")
		} else {
			require.Equal(t, len(gs.Positions(Goat)), goats, "step removes nothing")
		}
	}
}

func TestCaptureCountMonotonic(t *testing.T) {
	gs := NewGameState(NewGridBoard())
	require.NoError(t, gs.PlaceGoat(GridID(0, 1)))

	last := gs.GoatsCaptured
	for i := 0; i < 30; i++ {
		moves := gs.MovesFor(gs.Turn)
		if gs.Turn == GoatSide && gs.Phase == PlacementPhase {
			moves = gs.LegalMoves()
		}
		if len(moves) == 0 || gs.Terminal() != NoOutcome {
			break
		}
		result, err := gs.Apply(moves[0])
		require.NoError(t, err)
		if result == Captured {
			require.Equal(t, last+1, gs.GoatsCaptured, "a capture increments the count by exactly 1")
		} else {
			require.Equal(t, last, gs.GoatsCaptured, "non-captures never change the count")
		}
		last = gs.GoatsCaptured
	}
}

func TestCloneIndependence(t *testing.T) {
	gs := NewGameState(NewGridBoard())
	require.NoError(t, gs.PlaceGoat(GridID(0, 1)))

	clone := gs.Copy()
	_, err := clone.Apply(Move{From: GridID(0, 0), To: GridID(0, 2)})
	require.NoError(t, err)

	require.Equal(t, Tiger, gs.Cells[GridID(0, 0)], "original must keep its tiger")
	require.Equal(t, Goat, gs.Cells[GridID(0, 1)], "original must keep its goat")
	require.Equal(t, 0, gs.GoatsCaptured, "original counters must not change")
	require.Equal(t, 1, clone.GoatsCaptured)
}

func TestTerminalExclusivity(t *testing.T) {
	gs := NewGameState(NewGridBoard())

	// Fill the whole board so every tiger is immobilized.
	for id := range gs.Cells {
		if gs.Cells[id] == Empty {
			gs.Cells[id] = Goat
		}
	}

	require.True(t, gs.GoatWins(), "blocked tigers mean a goat win")
	require.False(t, gs.TigerWins(), "capture win requires the capture quota")
	require.Equal(t, GoatWin, gs.Terminal())

	// A capture quota flips the outcome and the two wins stay exclusive.
	gs.GoatsCaptured = gs.Board.RequiredCaptures
	require.True(t, gs.TigerWins())
	require.False(t, gs.GoatWins())
	require.Equal(t, TigerWin, gs.Terminal())
}

func TestGoatTurnSkip(t *testing.T) {
	coords := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	b := NewGraphBoard("strip", coords, [][]int{{0, 1}, {1, 2}, {2, 3}}, []int{0, 3}, []int{2}, 1, 1)
	gs := NewGameState(b)

	// The lone goat lands between two walls of the strip with no empty
	// neighbor after the tiger steps next to it.
	require.NoError(t, gs.PlaceGoat(0))
	require.Equal(t, MovementPhase, gs.Phase)
	require.Equal(t, TigerSide, gs.Turn)

	_, err := gs.Apply(Move{From: 2, To: 1})
	require.NoError(t, err)
	require.Equal(t, TigerSide, gs.Turn,
		"an immobile goat side forfeits its turn back to the tiger")
}

func TestPlacementRules(t *testing.T) {
	gs := NewGameState(NewGridBoard())

	require.Error(t, gs.PlaceGoat(GridID(0, 0)), "cannot place on a tiger")

	require.NoError(t, gs.PlaceGoat(GridID(2, 2)))
	require.Equal(t, 1, gs.GoatsPlaced)
	require.Equal(t, TigerSide, gs.Turn, "placement passes the turn")
	require.Error(t, gs.PlaceGoat(GridID(2, 2)), "cannot place on a goat")

	gs.GoatsPlaced = gs.Board.GoatsToPlace - 1
	gs.Turn = GoatSide
	require.NoError(t, gs.PlaceGoat(GridID(3, 3)))
	require.Equal(t, MovementPhase, gs.Phase, "last placement ends the phase")
	require.Error(t, gs.PlaceGoat(GridID(1, 1)), "no placements after the phase ends")
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	gs := NewGameState(NewGridBoard())

	_, err := gs.Apply(Move{From: GridID(1, 1), To: GridID(2, 2)})
	require.Error(t, err, "no piece at the source")

	_, err = gs.Apply(Move{From: GridID(0, 0), To: GridID(3, 3)})
	require.Error(t, err, "neither a step nor a jump")

	require.NoError(t, gs.PlaceGoat(GridID(0, 1)))
	_, err = gs.Apply(Move{From: GridID(0, 0), To: GridID(0, 1)})
	require.Error(t, err, "destination occupied")

	result, err := gs.Apply(PlaceMove(GridID(0, 0)))
	require.Error(t, err, "cannot place on a tiger")
	require.NotEqual(t, Placed, result, "a rejected placement must not report as performed")
}

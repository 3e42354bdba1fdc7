package experiments

import (
	"sort"

	"baghchal/experiments/metrics"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the game records of one matchup.
type Summary struct {
	Games        int
	TigerWinRate float64
	MeanMoves    float64
	StdDevMoves  float64
	MedianMoves  float64
	MeanCaptures float64
}

// Summarize computes matchup statistics over game records.
func Summarize(records []metrics.GameRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	moves := make([]float64, len(records))
	captures := make([]float64, len(records))
	tigerWins := 0.0
	for i, r := range records {
		moves[i] = float64(r.Moves)
		captures[i] = float64(r.Captures)
		if r.Winner == "tiger" {
			tigerWins++
		}
	}
	sort.Float64s(moves)

	return Summary{
		Games:        len(records),
		TigerWinRate: tigerWins / float64(len(records)),
		MeanMoves:    stat.Mean(moves, nil),
		StdDevMoves:  stat.StdDev(moves, nil),
		MedianMoves:  stat.Quantile(0.5, stat.Empirical, moves, nil),
		MeanCaptures: stat.Mean(captures, nil),
	}
}

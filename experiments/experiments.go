package experiments

import (
	"fmt"
	"time"

	"baghchal/engine"
	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/searcher"

	"github.com/rs/zerolog/log"
)

// RunDifficultyMatrix plays every tiger tier against every goat tier on each
// configured board, stores per-game and per-move records as CSV, and logs a
// summary per matchup.
func RunDifficultyMatrix(cfg *Config) error {
	matchups, err := buildMatchups(cfg)
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, "difficulty_matrix")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteMatchupConfigs(matchups); err != nil {
		return fmt.Errorf("failed to store matchup configs: %w", err)
	}

	log.Info().Int("matchups", len(matchups)).Int("games_each", cfg.GamesPerMatchup).
		Msg("starting difficulty matrix experiment...")

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	count := 0
	seed := cfg.Seed

	for _, matchup := range matchups {
		log.Info().Str("board", matchup.Board).Str("tiger", matchup.Tiger).Str("goat", matchup.Goat).
			Msg("starting matchup...")

		for i := 0; i < cfg.GamesPerMatchup; i++ {
			count++
			record, moves := runGame(count, matchup, seed)
			seed += 2
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
		}

		summary := Summarize(gameRecords[len(gameRecords)-cfg.GamesPerMatchup:])
		log.Info().
			Float64("tiger_win_rate", summary.TigerWinRate).
			Float64("mean_moves", summary.MeanMoves).
			Float64("stddev_moves", summary.StdDevMoves).
			Float64("median_moves", summary.MedianMoves).
			Float64("mean_captures", summary.MeanCaptures).
			Msg("matchup finished")
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}

	log.Info().Str("dir", writer.BaseDir()).Msg("finished difficulty matrix experiment")
	return nil
}

func buildMatchups(cfg *Config) ([]metrics.MatchupConfig, error) {
	var matchups []metrics.MatchupConfig
	id := 0
	for _, board := range cfg.Boards {
		if _, err := parseKind(board); err != nil {
			return nil, err
		}
		for _, tiger := range cfg.Difficulties {
			if _, err := searcher.ParseDifficulty(tiger); err != nil {
				return nil, err
			}
			for _, goat := range cfg.Difficulties {
				if _, err := searcher.ParseDifficulty(goat); err != nil {
					return nil, err
				}
				id++
				matchups = append(matchups, metrics.MatchupConfig{
					ID:    id,
					Board: board,
					Tiger: tiger,
					Goat:  goat,
				})
			}
		}
	}
	return matchups, nil
}

func runGame(id int, matchup metrics.MatchupConfig, seed uint64) (metrics.GameRecord, []metrics.MoveRecord) {
	kind, _ := parseKind(matchup.Board)
	tigerDifficulty, _ := searcher.ParseDifficulty(matchup.Tiger)
	goatDifficulty, _ := searcher.ParseDifficulty(matchup.Goat)

	var tigerOpts, goatOpts []searcher.Option
	if seed > 0 {
		tigerOpts = append(tigerOpts, searcher.WithSeed(seed))
		goatOpts = append(goatOpts, searcher.WithSeed(seed+1))
	}
	tiger := searcher.NewAgent(game.TigerSide, tigerDifficulty, tigerOpts...)
	goat := searcher.NewAgent(game.GoatSide, goatDifficulty, goatOpts...)

	e := engine.New(kind)
	record := metrics.GameRecord{ID: id, Matchup: matchup.ID}
	record.StartTime = time.Now()

	outcome, moveMetrics := e.Run(tiger, goat)

	record.Winner = outcome.String()
	record.Moves = len(moveMetrics)
	record.Captures = e.State().GoatsCaptured
	record.Duration = time.Since(record.StartTime)

	moveRecords := make([]metrics.MoveRecord, len(moveMetrics))
	for i, m := range moveMetrics {
		moveRecords[i] = metrics.MoveRecord{Game: id, MoveMetric: m}
	}
	return record, moveRecords
}

func parseKind(s string) (game.Kind, error) {
	switch s {
	case "grid":
		return game.GridKind, nil
	case "graph", "aadupuli":
		return game.GraphKind, nil
	}
	return game.GridKind, fmt.Errorf("unknown board: %s", s)
}

package main

import (
	"flag"
	"os"

	"baghchal/engine"
	"baghchal/experiments"
	"baghchal/game"
	"baghchal/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	board := flag.String("board", "grid", "Board topology: grid or graph")
	tiger := flag.String("tiger", "hard", "Tiger difficulty: easy, medium or hard")
	goat := flag.String("goat", "hard", "Goat difficulty: easy, medium or hard")
	seed := flag.Uint64("seed", 0, "Random seed (0 for nondeterministic)")
	experiment := flag.Bool("experiment", false, "Run the difficulty matrix experiment instead of a single game")
	configPath := flag.String("config", "", "Experiment config file (optional)")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *experiment {
		cfg := experiments.DefaultConfig()
		if *configPath != "" {
			loaded, err := experiments.LoadConfig(*configPath)
			if err != nil {
				log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
			}
			cfg = loaded
		}
		if err := experiments.RunDifficultyMatrix(cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	kind := game.GridKind
	if *board == "graph" || *board == "aadupuli" {
		kind = game.GraphKind
	} else if *board != "grid" {
		log.Fatal().Str("board", *board).Msg("unknown board")
	}

	tigerDifficulty, err := searcher.ParseDifficulty(*tiger)
	if err != nil {
		log.Fatal().Err(err).Msg("bad tiger difficulty")
	}
	goatDifficulty, err := searcher.ParseDifficulty(*goat)
	if err != nil {
		log.Fatal().Err(err).Msg("bad goat difficulty")
	}

	var tigerOpts, goatOpts []searcher.Option
	if *seed > 0 {
		tigerOpts = append(tigerOpts, searcher.WithSeed(*seed))
		goatOpts = append(goatOpts, searcher.WithSeed(*seed+1))
	}

	e := engine.New(kind)
	outcome, moves := e.Run(
		searcher.NewAgent(game.TigerSide, tigerDifficulty, tigerOpts...),
		searcher.NewAgent(game.GoatSide, goatDifficulty, goatOpts...),
	)

	log.Info().Str("winner", outcome.String()).Int("moves", len(moves)).Msg("done")
}

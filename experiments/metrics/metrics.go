package metrics

import "time"

// MatchupConfig describes one agent pairing in an experiment.
type MatchupConfig struct {
	ID    int
	Board string
	Tiger string // tiger difficulty
	Goat  string // goat difficulty
}

// MoveMetric records one decision inside a game.
type MoveMetric struct {
	Step       int
	Side       string
	Result     string // step, capture or placement
	Candidates int
	Duration   time.Duration
}

// GameMetric records one completed game.
type GameMetric struct {
	Winner    string // "tiger", "goat" or "" for a move-cap draw
	Moves     int
	Captures  int
	StartTime time.Time
	Duration  time.Duration
}

// GameRecord ties a game to its matchup for the CSV output.
type GameRecord struct {
	ID      int
	Matchup int // MatchupConfig.ID
	GameMetric
}

// MoveRecord ties a decision to its game for the CSV output.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

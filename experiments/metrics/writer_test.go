package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return rows
}

func TestWriterCreatesTimestampedDir(t *testing.T) {
	outputDir := t.TempDir()
	w, err := NewWriter(outputDir, "difficulty-matrix")
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}

	rel, err := filepath.Rel(outputDir, w.BaseDir())
	if err != nil {
		t.Fatalf("base dir outside output dir: %v", err)
	}
	if filepath.Dir(rel) != "difficulty-matrix" {
		t.Errorf("expected experiment subdirectory, got %s", rel)
	}
	if _, err := os.Stat(w.BaseDir()); err != nil {
		t.Errorf("base dir not created: %v", err)
	}
}

func TestWriteMatchupConfigs(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}

	configs := []MatchupConfig{
		{ID: 0, Board: "grid", Tiger: "easy", Goat: "hard"},
		{ID: 1, Board: "aadupuli", Tiger: "hard", Goat: "medium"},
	}
	if err := w.WriteMatchupConfigs(configs); err != nil {
		t.Fatalf("failed to write matchup configs: %v", err)
	}

	rows := readCSV(t, filepath.Join(w.BaseDir(), "matchup_configs.csv"))
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1][1] != "grid" || rows[2][3] != "medium" {
		t.Errorf("unexpected rows: %v", rows[1:])
	}
}

func TestWriteGameAndMoveRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}

	games := []GameRecord{
		{ID: 0, Matchup: 2, GameMetric: GameMetric{
			Winner:    "tiger",
			Moves:     73,
			Captures:  5,
			StartTime: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Duration:  420 * time.Millisecond,
		}},
	}
	if err := w.WriteGameRecords(games); err != nil {
		t.Fatalf("failed to write game records: %v", err)
	}

	moves := []MoveRecord{
		{Game: 0, MoveMetric: MoveMetric{Step: 1, Side: "goat", Result: "placement", Candidates: 21, Duration: time.Millisecond}},
		{Game: 0, MoveMetric: MoveMetric{Step: 2, Side: "tiger", Result: "step", Candidates: 8, Duration: time.Millisecond}},
	}
	if err := w.WriteMoveRecords(moves); err != nil {
		t.Fatalf("failed to write move records: %v", err)
	}

	gameRows := readCSV(t, filepath.Join(w.BaseDir(), "game_records.csv"))
	if len(gameRows) != 2 {
		t.Fatalf("expected header plus 1 game row, got %d", len(gameRows))
	}
	if gameRows[1][2] != "tiger" || gameRows[1][4] != "5" {
		t.Errorf("unexpected game row: %v", gameRows[1])
	}

	moveRows := readCSV(t, filepath.Join(w.BaseDir(), "move_records.csv"))
	if len(moveRows) != 3 {
		t.Fatalf("expected header plus 2 move rows, got %d", len(moveRows))
	}
	if moveRows[1][3] != "placement" || moveRows[2][2] != "tiger" {
		t.Errorf("unexpected move rows: %v", moveRows[1:])
	}
}

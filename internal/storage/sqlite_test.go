package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("kitchen", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("kitchen_rush", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("kitchen", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	rush, err := store.TopScores("kitchen_rush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rush) != 1 {
		t.Errorf("Expected 1 rush score, got %d", len(rush))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("kitchen", (i+1)*100)
	}

	scores, err := store.TopScores("kitchen", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("kitchen")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("kitchen", 100)
	store.SaveScore("kitchen", 300)
	store.SaveScore("kitchen", 200)

	high, err = store.HighScore("kitchen")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("kitchen", 100)
	store.SaveScore("kitchen", 200)
	store.SaveScore("kitchen_rush", 300)
	store.SaveShift(ShiftRecord{GameID: "kitchen", Score: 100})

	if err := store.ClearScores("kitchen"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("kitchen", 10); len(scores) != 0 {
		t.Errorf("Expected 0 kitchen scores after clear, got %d", len(scores))
	}
	if shifts, _ := store.RecentShifts("kitchen", 10); len(shifts) != 0 {
		t.Errorf("Expected 0 kitchen shifts after clear, got %d", len(shifts))
	}
	if rush, _ := store.TopScores("kitchen_rush", 10); len(rush) != 1 {
		t.Error("Rush scores should not be affected by clearing kitchen")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("kitchen")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("kitchen", 100)
	store.SaveScore("kitchen", 300)

	stats, err = store.GetGameStats("kitchen")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreShifts(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveShift(ShiftRecord{
		GameID:     "kitchen",
		Score:      350,
		Served:     3,
		Wrong:      1,
		Walkouts:   1,
		Customers:  3,
		Duration:   180,
		Difficulty: "normal",
	})
	if err != nil {
		t.Fatalf("SaveShift() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("Expected a uuid id, got %q", id)
	}

	if _, err := store.SaveShift(ShiftRecord{ID: "fixed-id", GameID: "kitchen", Served: 1, Duration: 60}); err != nil {
		t.Fatalf("SaveShift() failed: %v", err)
	}
	if _, err := store.SaveShift(ShiftRecord{ID: "fixed-id", GameID: "kitchen"}); err == nil {
		t.Error("Expected error for duplicate shift id")
	}

	shifts, err := store.RecentShifts("kitchen", 10)
	if err != nil {
		t.Fatalf("RecentShifts() failed: %v", err)
	}
	if len(shifts) != 2 {
		t.Fatalf("Expected 2 shifts, got %d", len(shifts))
	}
	if shifts[0].ID != "fixed-id" {
		t.Errorf("Expected newest shift first, got %q", shifts[0].ID)
	}
	if shifts[1].Served != 3 || shifts[1].Difficulty != "normal" {
		t.Errorf("Shift fields lost: %+v", shifts[1])
	}

	stats, err := store.GetShiftStats("kitchen")
	if err != nil {
		t.Fatalf("GetShiftStats() failed: %v", err)
	}
	if stats.Shifts != 2 || stats.Served != 4 || stats.Wrong != 1 || stats.Walkouts != 1 {
		t.Errorf("Unexpected shift stats: %+v", stats)
	}
	if stats.Accuracy != 0.8 {
		t.Errorf("Expected accuracy 0.8, got %f", stats.Accuracy)
	}
	if stats.AvgDuration != 120 {
		t.Errorf("Expected average duration 120, got %f", stats.AvgDuration)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.kitchen/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".kitchen", "scores.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under HOME")
	}
}

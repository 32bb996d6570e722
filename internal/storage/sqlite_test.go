package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{Score: 1200, MaxTile: 128, BoardSize: 4},
		{Score: 20000, MaxTile: 2048, BoardSize: 4, Won: true},
		{Score: 800, MaxTile: 64, BoardSize: 4},
		{Score: 5000, MaxTile: 512, BoardSize: 5},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults(4, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results for 4x4, got %d", len(results))
	}

	// Sorted by score descending.
	if results[0].Score != 20000 || results[1].Score != 1200 || results[2].Score != 800 {
		t.Errorf("results not in score order: %v", results)
	}
	if !results[0].Won {
		t.Error("winning result should keep its won flag")
	}
	if results[0].MaxTile != 2048 {
		t.Errorf("MaxTile = %d, want 2048", results[0].MaxTile)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult(Result{Score: (i + 1) * 100, MaxTile: 32, BoardSize: 4}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults(4, 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results with limit, got %d", len(results))
	}
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("top-3 scores wrong: %v", results)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No results yet.
	high, err := store.HighScore(4)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d with no results, want 0", high)
	}

	store.SaveResult(Result{Score: 300, MaxTile: 32, BoardSize: 4})
	store.SaveResult(Result{Score: 900, MaxTile: 128, BoardSize: 4})
	store.SaveResult(Result{Score: 5000, MaxTile: 256, BoardSize: 6})

	high, err = store.HighScore(4)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 900 {
		t.Errorf("HighScore(4) = %d, want 900", high)
	}
}

func TestStoreBoardSizes(t *testing.T) {
	store := openTestStore(t)

	sizes, err := store.BoardSizes()
	if err != nil {
		t.Fatalf("BoardSizes() failed: %v", err)
	}
	if len(sizes) != 0 {
		t.Errorf("expected no sizes in empty store, got %v", sizes)
	}

	store.SaveResult(Result{Score: 100, MaxTile: 16, BoardSize: 5})
	store.SaveResult(Result{Score: 200, MaxTile: 16, BoardSize: 4})
	store.SaveResult(Result{Score: 300, MaxTile: 32, BoardSize: 4})

	sizes, err = store.BoardSizes()
	if err != nil {
		t.Fatalf("BoardSizes() failed: %v", err)
	}
	if len(sizes) != 2 || sizes[0] != 4 || sizes[1] != 5 {
		t.Errorf("BoardSizes() = %v, want [4 5]", sizes)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Score: 100, MaxTile: 16, BoardSize: 4})
	store.SaveResult(Result{Score: 300, MaxTile: 64, BoardSize: 4})
	store.SaveResult(Result{Score: 24000, MaxTile: 2048, BoardSize: 4, Won: true})

	stats, err := store.GetStats(4)
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.WinsCount != 1 {
		t.Errorf("WinsCount = %d, want 1", stats.WinsCount)
	}
	if stats.HighScore != 24000 {
		t.Errorf("HighScore = %d, want 24000", stats.HighScore)
	}
	if stats.BestTile != 2048 {
		t.Errorf("BestTile = %d, want 2048", stats.BestTile)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Score: 100, MaxTile: 16, BoardSize: 4})
	store.SaveResult(Result{Score: 200, MaxTile: 16, BoardSize: 5})

	if err := store.ClearResults(4); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.TopResults(4, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results after clear, got %d", len(results))
	}

	// Other board sizes are untouched.
	others, err := store.TopResults(5, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(others) != 1 {
		t.Errorf("expected 1 result for 5x5, got %d", len(others))
	}
}

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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenInMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if err := store.Insert("ABC", 100); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	high, err := store.High()
	if err != nil {
		t.Fatalf("High() failed: %v", err)
	}
	if high != 100 {
		t.Errorf("Expected high 100 in memory store, got %d", high)
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreInsertAndLeaders(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []struct {
		name  string
		score int
	}{
		{"AAA", 100},
		{"BBB", 50},
		{"CCC", 200},
	} {
		if err := store.Insert(e.name, e.score); err != nil {
			t.Fatalf("Insert(%s, %d) failed: %v", e.name, e.score, err)
		}
	}

	leaders, err := store.Leaders()
	if err != nil {
		t.Fatalf("Leaders() failed: %v", err)
	}

	if len(leaders) != 3 {
		t.Fatalf("Expected 3 leaders, got %d", len(leaders))
	}

	// Should be sorted descending
	if leaders[0].Name != "CCC" || leaders[0].Score != 200 {
		t.Errorf("Expected CCC 200 first, got %s %d", leaders[0].Name, leaders[0].Score)
	}
	if leaders[1].Name != "AAA" || leaders[1].Score != 100 {
		t.Errorf("Expected AAA 100 second, got %s %d", leaders[1].Name, leaders[1].Score)
	}
	if leaders[2].Name != "BBB" || leaders[2].Score != 50 {
		t.Errorf("Expected BBB 50 third, got %s %d", leaders[2].Name, leaders[2].Score)
	}
}

func TestStoreLeadersTieRanksEarlierEntryHigher(t *testing.T) {
	store := openTestStore(t)

	store.Insert("OLD", 300)
	store.Insert("NEW", 300)

	leaders, err := store.Leaders()
	if err != nil {
		t.Fatalf("Leaders() failed: %v", err)
	}
	if len(leaders) != 2 {
		t.Fatalf("Expected 2 leaders, got %d", len(leaders))
	}
	if leaders[0].Name != "OLD" {
		t.Errorf("Expected earlier entry to win the tie, got %s first", leaders[0].Name)
	}
}

func TestStoreLeadersCapAtTen(t *testing.T) {
	store := openTestStore(t)

	names := []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF", "GGG", "HHH", "III", "JJJ", "KKK", "LLL"}
	for i, name := range names {
		if err := store.Insert(name, (i+1)*100); err != nil {
			t.Fatalf("Insert() failed: %v", err)
		}
	}

	leaders, err := store.Leaders()
	if err != nil {
		t.Fatalf("Leaders() failed: %v", err)
	}
	if len(leaders) != 10 {
		t.Errorf("Expected board capped at 10, got %d", len(leaders))
	}
	if leaders[0].Score != 1200 {
		t.Errorf("Expected best 1200, got %d", leaders[0].Score)
	}
	if leaders[9].Score != 300 {
		t.Errorf("Expected board floor 300, got %d", leaders[9].Score)
	}
}

func TestStoreInsertRejectsBadNames(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"", "AB", "ABCD", "ab1", "A★B", "abc"} {
		if err := store.Insert(name, 100); err == nil {
			t.Errorf("Expected error for name %q", name)
		}
	}
}

func TestStoreInsertRejectsOutOfRangeScores(t *testing.T) {
	store := openTestStore(t)

	if err := store.Insert("AAA", -1); err == nil {
		t.Error("Expected error for negative score")
	}
	if err := store.Insert("AAA", 10000); err == nil {
		t.Error("Expected error for score above 9999")
	}
	if err := store.Insert("AAA", 9999); err != nil {
		t.Errorf("Score 9999 should be accepted: %v", err)
	}
}

func TestStoreHighAndLow(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.High()
	if err != nil {
		t.Fatalf("High() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high 0 on empty board, got %d", high)
	}

	low, err := store.Low()
	if err != nil {
		t.Fatalf("Low() failed: %v", err)
	}
	if low != 0 {
		t.Errorf("Expected low 0 on empty board, got %d", low)
	}

	store.Insert("AAA", 100)
	store.Insert("BBB", 300)
	store.Insert("CCC", 200)

	high, _ = store.High()
	if high != 300 {
		t.Errorf("Expected high 300, got %d", high)
	}
	low, _ = store.Low()
	if low != 100 {
		t.Errorf("Expected low 100, got %d", low)
	}
}

func TestStoreLowIsBoardFloorNotHistoryMin(t *testing.T) {
	store := openTestStore(t)

	// 12 scores; the two worst fall off the ten-deep board.
	names := []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF", "GGG", "HHH", "III", "JJJ", "KKK", "LLL"}
	for i, name := range names {
		store.Insert(name, (i+1)*100)
	}

	low, err := store.Low()
	if err != nil {
		t.Fatalf("Low() failed: %v", err)
	}
	if low != 300 {
		t.Errorf("Expected low 300 (floor of the top ten), got %d", low)
	}
}

func TestStoreQualifies(t *testing.T) {
	store := openTestStore(t)

	// Empty board: any positive score ranks, zero never does.
	ok, err := store.Qualifies(0)
	if err != nil {
		t.Fatalf("Qualifies() failed: %v", err)
	}
	if ok {
		t.Error("Zero score should not qualify")
	}
	ok, _ = store.Qualifies(10)
	if !ok {
		t.Error("Positive score should qualify on an empty board")
	}

	// Short board: still open.
	store.Insert("AAA", 500)
	ok, _ = store.Qualifies(10)
	if !ok {
		t.Error("Positive score should qualify while the board is short")
	}

	// Full board: must beat the floor.
	names := []string{"BBB", "CCC", "DDD", "EEE", "FFF", "GGG", "HHH", "III", "JJJ"}
	for i, name := range names {
		store.Insert(name, (i+1)*100)
	}

	ok, _ = store.Qualifies(100)
	if ok {
		t.Error("Matching the floor should not qualify on a full board")
	}
	ok, _ = store.Qualifies(101)
	if !ok {
		t.Error("Beating the floor should qualify")
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.Insert("AAA", 100)
	store.Insert("BBB", 200)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	leaders, _ := store.Leaders()
	if len(leaders) != 0 {
		t.Errorf("Expected empty board after clear, got %d entries", len(leaders))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Games != 0 || stats.HighScore != 0 {
		t.Errorf("Expected zeroed stats on empty board, got %+v", stats)
	}

	store.Insert("AAA", 100)
	store.Insert("BBB", 300)

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Games != 2 {
		t.Errorf("Expected 2 games, got %d", stats.Games)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
}

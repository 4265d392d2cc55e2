package seed

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

func newTestStore(t *testing.T) (*storage.SQLiteStore, int64) {
	t.Helper()

	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "habitual.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	userID, err := store.AddUser("Demo", "demo@example.com")
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	return store, userID
}

func TestDemoHabits(t *testing.T) {
	store, userID := newTestStore(t)

	n, err := DemoHabits(store, userID)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("seeded %d habits, want 5", n)
	}

	habits, err := store.GetHabitsByUser(userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(habits) != 5 {
		t.Fatalf("store has %d habits, want 5", len(habits))
	}

	daily, weekly := 0, 0
	for _, h := range habits {
		switch h.Periodicity {
		case models.PeriodicityDaily:
			daily++
		case models.PeriodicityWeekly:
			weekly++
		}
		if h.LastCompletedDate != nil || h.Streak != 0 {
			t.Errorf("seeded habit %q has progress: %+v", h.Name, h)
		}
	}
	if daily != 3 || weekly != 2 {
		t.Errorf("periodicity mix = %d daily / %d weekly, want 3/2", daily, weekly)
	}

	// Re-seeding an account with habits is a no-op.
	n, err = DemoHabits(store, userID)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("second seed inserted %d habits, want 0", n)
	}
}

func TestBackfill(t *testing.T) {
	store, userID := newTestStore(t)

	if _, err := DemoHabits(store, userID); err != nil {
		t.Fatal(err)
	}
	if err := Backfill(store, userID); err != nil {
		t.Fatal(err)
	}

	habits, err := store.GetHabitsByUser(userID)
	if err != nil {
		t.Fatal(err)
	}

	for _, h := range habits {
		var wantStreak, wantCount int
		var wantLast string
		switch h.Periodicity {
		case models.PeriodicityDaily:
			wantStreak, wantCount, wantLast = 28, 28, "2025-02-02"
		case models.PeriodicityWeekly:
			wantStreak, wantCount, wantLast = 4, 4, "2025-01-27"
		default:
			continue
		}

		if h.Streak != wantStreak {
			t.Errorf("%s: streak = %d, want %d", h.Name, h.Streak, wantStreak)
		}
		if !h.Completed {
			t.Errorf("%s: not marked completed", h.Name)
		}
		if h.LastCompletedDate == nil || *h.LastCompletedDate != wantLast {
			t.Errorf("%s: last completed = %v, want %s", h.Name, h.LastCompletedDate, wantLast)
		}

		history, err := store.GetCompletions(h.ID, 100)
		if err != nil {
			t.Fatal(err)
		}
		if len(history) != wantCount {
			t.Errorf("%s: %d completions logged, want %d", h.Name, len(history), wantCount)
		}
	}
}

func TestBackfillSkipsTrackedHabits(t *testing.T) {
	store, userID := newTestStore(t)

	if _, err := DemoHabits(store, userID); err != nil {
		t.Fatal(err)
	}

	habits, err := store.GetHabitsByUser(userID)
	if err != nil {
		t.Fatal(err)
	}
	tracked := habits[0]
	last := "2025-03-01"
	if err := store.UpdateHabitProgress(tracked.ID, true, 3, &last); err != nil {
		t.Fatal(err)
	}

	if err := Backfill(store, userID); err != nil {
		t.Fatal(err)
	}

	habits, err = store.GetHabitsByUser(userID)
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range habits {
		if h.ID != tracked.ID {
			continue
		}
		if h.Streak != 3 || h.LastCompletedDate == nil || *h.LastCompletedDate != last {
			t.Errorf("backfill overwrote real progress: %+v", h)
		}
	}
}

func TestBackfillWindow(t *testing.T) {
	start, end := BackfillWindow()
	if start != "2025-01-06" || end != "2025-02-02" {
		t.Errorf("window = %s..%s, want 2025-01-06..2025-02-02", start, end)
	}
}

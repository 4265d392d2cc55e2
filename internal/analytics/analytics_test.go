package analytics

import (
	"testing"

	"github.com/julianstephens/habitual/internal/models"
)

func sampleHabits() []models.Habit {
	return []models.Habit{
		{ID: 1, Name: "Drink Water", Periodicity: models.PeriodicityDaily, Streak: 5},
		{ID: 2, Name: "Call Family", Periodicity: models.PeriodicityWeekly, Streak: 12},
		{ID: 3, Name: "Read", Periodicity: models.PeriodicityDaily, Streak: 12},
		{ID: 4, Name: "Budget Review", Periodicity: models.PeriodicityMonthly, Streak: 2},
	}
}

func TestListAllPreservesOrder(t *testing.T) {
	rows := sampleHabits()
	got := ListAll(rows)

	if len(got) != len(rows) {
		t.Fatalf("len = %d, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i].ID != rows[i].ID {
			t.Errorf("position %d: id = %d, want %d", i, got[i].ID, rows[i].ID)
		}
	}

	// Mutating the result must not touch the input.
	got[0].Name = "changed"
	if rows[0].Name != "Drink Water" {
		t.Error("ListAll returned a view into its input")
	}
}

func TestListByPeriodicity(t *testing.T) {
	rows := sampleHabits()

	daily := ListByPeriodicity(rows, models.PeriodicityDaily)
	if len(daily) != 2 || daily[0].ID != 1 || daily[1].ID != 3 {
		t.Errorf("daily = %v, want habits 1 and 3 in order", daily)
	}

	monthly := ListByPeriodicity(rows, models.PeriodicityMonthly)
	if len(monthly) != 1 || monthly[0].ID != 4 {
		t.Errorf("monthly = %v, want habit 4", monthly)
	}

	none := ListByPeriodicity(rows, models.Periodicity("Daily"))
	if none == nil {
		t.Error("no-match result is nil, want empty slice")
	}
	if len(none) != 0 {
		t.Errorf("matching is case-sensitive, got %d results for %q", len(none), "Daily")
	}
}

func TestLongestStreakOverall(t *testing.T) {
	habitID, longest, ok := LongestStreakOverall(sampleHabits())
	if !ok {
		t.Fatal("ok = false for non-empty input")
	}
	if longest != 12 {
		t.Errorf("longest = %d, want 12", longest)
	}
	// Habits 2 and 3 tie at 12; the first in input order wins.
	if habitID != 2 {
		t.Errorf("habitID = %d, want first maximum (2)", habitID)
	}
}

func TestLongestStreakOverallEmpty(t *testing.T) {
	habitID, longest, ok := LongestStreakOverall(nil)
	if ok || habitID != 0 || longest != 0 {
		t.Errorf("empty input = (%d, %d, %v), want (0, 0, false)", habitID, longest, ok)
	}
}

func TestLongestStreakFor(t *testing.T) {
	rows := sampleHabits()

	if got := LongestStreakFor(rows, 2); got != 12 {
		t.Errorf("streak for habit 2 = %d, want 12", got)
	}
	if got := LongestStreakFor(rows, 9999); got != 0 {
		t.Errorf("streak for unknown habit = %d, want 0", got)
	}
}

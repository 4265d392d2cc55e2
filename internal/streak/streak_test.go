package streak

import (
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strptr(s string) *string { return &s }

func TestCheckOffFirstCompletion(t *testing.T) {
	for _, p := range []models.Periodicity{
		models.PeriodicityDaily,
		models.PeriodicityWeekly,
		models.PeriodicityMonthly,
	} {
		got, err := CheckOff(Progress{}, p, date("2025-01-06"))
		if err != nil {
			t.Fatalf("CheckOff(%s): %v", p, err)
		}
		if got.Streak != 1 {
			t.Errorf("%s: first check-off streak = %d, want 1", p, got.Streak)
		}
		if !got.Completed {
			t.Errorf("%s: completed not set", p)
		}
		if got.LastCompletedDate == nil || *got.LastCompletedDate != "2025-01-06" {
			t.Errorf("%s: last completed date = %v, want 2025-01-06", p, got.LastCompletedDate)
		}
	}
}

func TestCheckOffDailyConsecutive(t *testing.T) {
	p := Progress{}
	var err error
	for i, day := range []string{"2025-01-06", "2025-01-07", "2025-01-08"} {
		p, err = CheckOff(p, models.PeriodicityDaily, date(day))
		if err != nil {
			t.Fatalf("CheckOff(%s): %v", day, err)
		}
		if p.Streak != i+1 {
			t.Errorf("after %s: streak = %d, want %d", day, p.Streak, i+1)
		}
	}
}

func TestCheckOffDailyMissedDayResets(t *testing.T) {
	p := Progress{Completed: true, Streak: 5, LastCompletedDate: strptr("2025-01-06")}

	p, err := CheckOff(p, models.PeriodicityDaily, date("2025-01-09"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1 after a gap", p.Streak)
	}
	if *p.LastCompletedDate != "2025-01-09" {
		t.Errorf("last completed = %s, want 2025-01-09", *p.LastCompletedDate)
	}
}

func TestCheckOffWeekly(t *testing.T) {
	p := Progress{Completed: true, Streak: 1, LastCompletedDate: strptr("2025-01-06")}

	p, err := CheckOff(p, models.PeriodicityWeekly, date("2025-01-13"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Streak != 2 {
		t.Errorf("on-schedule weekly streak = %d, want 2", p.Streak)
	}

	// Skipping a week resets.
	p, err = CheckOff(p, models.PeriodicityWeekly, date("2025-01-27"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Streak != 1 {
		t.Errorf("after missed week streak = %d, want 1", p.Streak)
	}
}

func TestCheckOffMonthlyClampsToMonthEnd(t *testing.T) {
	// Jan 31 -> next due Feb 28 (2025 is not a leap year).
	p := Progress{Completed: true, Streak: 1, LastCompletedDate: strptr("2025-01-31")}

	p, err := CheckOff(p, models.PeriodicityMonthly, date("2025-02-28"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Streak != 2 {
		t.Errorf("month-end check-off streak = %d, want 2", p.Streak)
	}
}

func TestCheckOffSamePeriodKeepsStreak(t *testing.T) {
	p := Progress{Completed: true, Streak: 3, LastCompletedDate: strptr("2025-01-06")}

	p, err := CheckOff(p, models.PeriodicityDaily, date("2025-01-06"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Streak != 3 {
		t.Errorf("same-day streak = %d, want unchanged 3", p.Streak)
	}
	if *p.LastCompletedDate != "2025-01-06" {
		t.Errorf("anchor = %s, want 2025-01-06", *p.LastCompletedDate)
	}
}

func TestCheckOffBackdatedMovesAnchorBack(t *testing.T) {
	p := Progress{Completed: true, Streak: 3, LastCompletedDate: strptr("2025-01-10")}

	p, err := CheckOff(p, models.PeriodicityDaily, date("2025-01-04"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Streak != 3 {
		t.Errorf("backdated streak = %d, want unchanged 3", p.Streak)
	}
	// The anchor follows the check-off date, even backwards.
	if *p.LastCompletedDate != "2025-01-04" {
		t.Errorf("anchor = %s, want 2025-01-04", *p.LastCompletedDate)
	}
}

func TestCheckOffInvalidStoredDate(t *testing.T) {
	p := Progress{Completed: true, Streak: 2, LastCompletedDate: strptr("not-a-date")}

	if _, err := CheckOff(p, models.PeriodicityDaily, date("2025-01-06")); err == nil {
		t.Fatal("expected error for corrupt stored date")
	}
}

func TestNextDue(t *testing.T) {
	tests := []struct {
		last        string
		periodicity models.Periodicity
		want        string
	}{
		{"2025-01-06", models.PeriodicityDaily, "2025-01-07"},
		{"2025-01-06", models.PeriodicityWeekly, "2025-01-13"},
		{"2025-01-15", models.PeriodicityMonthly, "2025-02-15"},
		{"2025-01-31", models.PeriodicityMonthly, "2025-02-28"},
		{"2024-01-31", models.PeriodicityMonthly, "2024-02-29"},
		{"2025-12-15", models.PeriodicityMonthly, "2026-01-15"},
	}

	for _, tt := range tests {
		got := NextDue(date(tt.last), tt.periodicity).Format("2006-01-02")
		if got != tt.want {
			t.Errorf("NextDue(%s, %s) = %s, want %s", tt.last, tt.periodicity, got, tt.want)
		}
	}
}

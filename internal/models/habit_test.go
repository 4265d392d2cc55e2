package models

import "testing"

func TestNewHabitFromForm(t *testing.T) {
	habit, err := NewHabitFromForm("Drink Water", "8 glasses", "Hydration", "2025-01-06", "daily", "09:00")
	if err != nil {
		t.Fatal(err)
	}

	if habit.Name != "Drink Water" || habit.Goal != "Hydration" {
		t.Errorf("unexpected habit fields: %+v", habit)
	}
	if habit.Periodicity != PeriodicityDaily {
		t.Errorf("periodicity = %s, want daily", habit.Periodicity)
	}
	if habit.Reminder == nil || *habit.Reminder != "09:00" {
		t.Errorf("reminder = %v, want 09:00", habit.Reminder)
	}
	if habit.Completed || habit.Streak != 0 || habit.LastCompletedDate != nil {
		t.Errorf("new habit must start with zero progress, got %+v", habit)
	}
}

func TestNewHabitFromFormEmptyReminder(t *testing.T) {
	habit, err := NewHabitFromForm("Read", "", "", "2025-01-06", "weekly", "")
	if err != nil {
		t.Fatal(err)
	}
	if habit.Reminder != nil {
		t.Errorf("empty reminder = %v, want nil", habit.Reminder)
	}
}

func TestNewHabitFromFormValidation(t *testing.T) {
	tests := []struct {
		name                           string
		startDate, periodicity, remind string
	}{
		{"bad date", "06-01-2025", "daily", ""},
		{"bad periodicity", "2025-01-06", "hourly", ""},
		{"uppercase periodicity", "2025-01-06", "Daily", ""},
		{"bad reminder", "2025-01-06", "daily", "9am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHabitFromForm("x", "", "", tt.startDate, tt.periodicity, tt.remind); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParsePeriodicity(t *testing.T) {
	for _, valid := range []string{"daily", "weekly", "monthly"} {
		if _, err := ParsePeriodicity(valid); err != nil {
			t.Errorf("ParsePeriodicity(%q): %v", valid, err)
		}
	}

	if _, err := ParsePeriodicity("yearly"); err == nil {
		t.Error("expected error for unknown periodicity")
	}
}

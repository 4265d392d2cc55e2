package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// Periodicity is the cadence a habit is expected to be completed on.
type Periodicity string

const (
	PeriodicityDaily   Periodicity = "daily"
	PeriodicityWeekly  Periodicity = "weekly"
	PeriodicityMonthly Periodicity = "monthly"
)

// ParsePeriodicity validates a raw periodicity string.
func ParsePeriodicity(s string) (Periodicity, error) {
	switch Periodicity(s) {
	case PeriodicityDaily, PeriodicityWeekly, PeriodicityMonthly:
		return Periodicity(s), nil
	}
	return "", fmt.Errorf("periodicity must be one of: daily, weekly, monthly (got %q)", s)
}

// Habit represents one tracked recurring practice together with its
// progress state (streak, last completion date).
type Habit struct {
	ID                int64       `json:"id"`
	UserID            int64       `json:"user_id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Goal              string      `json:"goal"`
	StartDate         string      `json:"start_date"` // YYYY-MM-DD format
	Periodicity       Periodicity `json:"periodicity"`
	Reminder          *string     `json:"reminder,omitempty"` // HH:MM format
	Completed         bool        `json:"completed"`
	Streak            int         `json:"streak"`
	LastCompletedDate *string     `json:"last_completed_date,omitempty"` // YYYY-MM-DD format
}

// NewHabitFromForm creates a Habit from raw user-supplied strings.
//
// The start date must be YYYY-MM-DD and the optional reminder HH:MM; an
// empty reminder means no reminder. All failures are recoverable: callers
// report the error and abort the single operation.
func NewHabitFromForm(name, description, goal, startDate, periodicity, reminder string) (Habit, error) {
	if _, err := time.Parse(constants.DateFormat, startDate); err != nil {
		return Habit{}, fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", startDate)
	}

	p, err := ParsePeriodicity(periodicity)
	if err != nil {
		return Habit{}, err
	}

	var reminderTime *string
	if reminder != "" {
		if _, err := time.Parse(constants.TimeFormat, reminder); err != nil {
			return Habit{}, fmt.Errorf("invalid reminder time %q (expected HH:MM)", reminder)
		}
		reminderTime = &reminder
	}

	return Habit{
		Name:        name,
		Description: description,
		Goal:        goal,
		StartDate:   startDate,
		Periodicity: p,
		Reminder:    reminderTime,
	}, nil
}

// Package seed inserts demo data for a fresh account.
package seed

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/streak"
)

type demoHabit struct {
	name        string
	description string
	goal        string
	startDate   string
	periodicity string
	reminder    string
}

var demoHabits = []demoHabit{
	{"Drink Water", "8 glasses", "Hydration", "2025-01-01", "daily", "09:00"},
	{"Read", "Read 10 pages", "Learning", "2025-01-01", "daily", "20:30"},
	{"Meditate", "5 minutes breathing", "Mindfulness", "2025-01-01", "daily", ""},
	{"Call Family", "Phone call to parents", "Relationships", "2025-01-01", "weekly", ""},
	{"Budget Review", "Review spending", "Finance", "2025-01-01", "weekly", "18:00"},
}

// backfillStart is the Monday the replayed four-week history begins on.
var backfillStart = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

// DemoHabits inserts the predefined starter habits for a user. It is a
// no-op when the user already has habits, so it is safe to call on every
// startup. Returns the number of habits inserted.
func DemoHabits(store storage.Provider, userID int64) (int, error) {
	existing, err := store.GetHabitsByUser(userID)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for _, d := range demoHabits {
		habit, err := models.NewHabitFromForm(d.name, d.description, d.goal, d.startDate, d.periodicity, d.reminder)
		if err != nil {
			return 0, fmt.Errorf("invalid demo habit %q: %w", d.name, err)
		}
		habit.UserID = userID

		if _, err := store.AddHabit(habit); err != nil {
			return 0, err
		}
	}

	return len(demoHabits), nil
}

// Backfill replays four weeks of on-schedule completions for every habit of
// the user that has never been checked off: 28 consecutive days for daily
// habits, 4 completions a week apart for weekly ones. Each replayed
// check-off goes through the streak transition and is logged to the
// completion history.
func Backfill(store storage.Provider, userID int64) error {
	habits, err := store.GetHabitsByUser(userID)
	if err != nil {
		return err
	}

	for _, h := range habits {
		if h.LastCompletedDate != nil {
			// Already tracked; leave real progress alone.
			continue
		}

		var stepDays, count int
		switch h.Periodicity {
		case models.PeriodicityDaily:
			stepDays, count = 1, 28
		case models.PeriodicityWeekly:
			stepDays, count = 7, 4
		default:
			continue
		}

		progress := streak.Progress{
			Completed:         h.Completed,
			Streak:            h.Streak,
			LastCompletedDate: h.LastCompletedDate,
		}

		for i := 0; i < count; i++ {
			day := backfillStart.AddDate(0, 0, i*stepDays)

			progress, err = streak.CheckOff(progress, h.Periodicity, day)
			if err != nil {
				return err
			}

			// Log the completion at a fixed morning hour on that day.
			completedAt := day.Add(8 * time.Hour).Format(time.RFC3339)
			if err := store.AddCompletion(h.ID, completedAt); err != nil {
				return err
			}
		}

		if err := store.UpdateHabitProgress(h.ID, progress.Completed, progress.Streak, progress.LastCompletedDate); err != nil {
			return err
		}
	}

	return nil
}

// BackfillWindow describes the replayed range for display purposes.
func BackfillWindow() (start, end string) {
	return backfillStart.Format(constants.DateFormat),
		backfillStart.AddDate(0, 0, 27).Format(constants.DateFormat)
}

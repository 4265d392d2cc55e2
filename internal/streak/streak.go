// Package streak implements the periodicity-aware streak transition applied
// to a habit's progress state on every check-off. It is pure: no storage,
// no clock reads.
package streak

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

// Progress is the progress state of a single habit.
type Progress struct {
	Completed         bool
	Streak            int
	LastCompletedDate *string // YYYY-MM-DD format
}

// CheckOff records a completion on the given date and returns the next
// progress state.
//
// Rules:
//   - First-ever completion starts the streak at 1.
//   - A completion on the expected next date increments the streak.
//   - A completion after the expected date resets the streak to 1.
//   - A same-period or early completion leaves the streak unchanged.
//
// The anchor date always advances to onDate, even when the completion is
// early or predates the last recorded completion.
func CheckOff(p Progress, periodicity models.Periodicity, onDate time.Time) (Progress, error) {
	day := onDate.Format(constants.DateFormat)

	if p.LastCompletedDate == nil {
		p.Streak = 1
	} else {
		last, err := time.Parse(constants.DateFormat, *p.LastCompletedDate)
		if err != nil {
			return p, fmt.Errorf("invalid last completed date %q: %w", *p.LastCompletedDate, err)
		}

		expected := NextDue(last, periodicity).Format(constants.DateFormat)
		switch {
		case day == expected:
			p.Streak++
		case day > expected:
			// At least one required period was missed.
			p.Streak = 1
		default:
			// Same-period or early completion: recorded, streak unchanged.
		}
	}

	p.Completed = true
	p.LastCompletedDate = &day
	return p, nil
}

// NextDue returns the date a completion is expected on to continue the
// streak, given the last completion date.
func NextDue(last time.Time, periodicity models.Periodicity) time.Time {
	switch periodicity {
	case models.PeriodicityWeekly:
		return last.AddDate(0, 0, 7)
	case models.PeriodicityMonthly:
		year, month, day := last.Date()
		month++
		if month > time.December {
			month = time.January
			year++
		}
		// Clamp to the target month's last valid day (Jan 31 -> Feb 28/29).
		if lastDay := daysIn(year, month); day > lastDay {
			day = lastDay
		}
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	default:
		return last.AddDate(0, 0, 1)
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

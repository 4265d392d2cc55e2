// Package analytics contains pure, read-only queries over habit snapshots
// as loaded from the store at call time. Functions never mutate their input
// and never perform I/O.
package analytics

import "github.com/julianstephens/habitual/internal/models"

// ListAll returns every habit in input order.
func ListAll(rows []models.Habit) []models.Habit {
	out := make([]models.Habit, len(rows))
	copy(out, rows)
	return out
}

// ListByPeriodicity returns the habits whose periodicity matches p exactly,
// preserving input order. No match yields an empty list, never an error.
func ListByPeriodicity(rows []models.Habit, p models.Periodicity) []models.Habit {
	out := []models.Habit{}
	for _, h := range rows {
		if h.Periodicity == p {
			out = append(out, h)
		}
	}
	return out
}

// LongestStreakOverall returns the id and streak of the habit with the
// maximum streak. Ties resolve to the first maximum in input order. When
// rows is empty, ok is false.
func LongestStreakOverall(rows []models.Habit) (habitID int64, longest int, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}

	top := rows[0]
	for _, h := range rows[1:] {
		if h.Streak > top.Streak {
			top = h
		}
	}
	return top.ID, top.Streak, true
}

// LongestStreakFor returns the streak of the first habit matching habitID,
// or 0 when the id is not present. An unknown id is a defined sentinel
// result, not an error.
func LongestStreakFor(rows []models.Habit, habitID int64) int {
	for _, h := range rows {
		if h.ID == habitID {
			return h.Streak
		}
	}
	return 0
}

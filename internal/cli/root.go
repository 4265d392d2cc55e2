package cli

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// ResolveUser looks up the account for the given email. Commands outside
// the interactive menu select their account with --user.
func (c *Context) ResolveUser(email string) (models.User, error) {
	if email == "" {
		return models.User{}, fmt.Errorf("no user selected (pass --user EMAIL)")
	}

	user, err := c.Store.GetUserByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("no account found for %s (run 'habitual user add' first)", email)
	}
	return user, nil
}

// FormatHabitLine renders one habit the way the list and summary views
// print it.
func FormatHabitLine(h models.Habit) string {
	last := "never"
	if h.LastCompletedDate != nil {
		last = *h.LastCompletedDate
	}
	return fmt.Sprintf("#%d %s | %s | streak=%d | last=%s", h.ID, h.Name, h.Periodicity, h.Streak, last)
}

// FindHabit returns the habit with the given id from a loaded snapshot.
func FindHabit(rows []models.Habit, id int64) (models.Habit, error) {
	for _, h := range rows {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit with id %d not found", id)
}

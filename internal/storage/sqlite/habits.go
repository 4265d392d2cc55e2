package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/habitual/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) (int64, error) {
	var reminder, lastCompleted sql.NullString
	if habit.Reminder != nil {
		reminder = sql.NullString{String: *habit.Reminder, Valid: true}
	}
	if habit.LastCompletedDate != nil {
		lastCompleted = sql.NullString{String: *habit.LastCompletedDate, Valid: true}
	}

	res, err := s.db.Exec(`
		INSERT INTO habits (
			user_id, name, description, goal, start_date, periodicity,
			reminder, completed, streak, last_completed_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.UserID, habit.Name, habit.Description, habit.Goal, habit.StartDate,
		string(habit.Periodicity), reminder, habit.Completed, habit.Streak, lastCompleted,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetHabitsByUser(userID int64) ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, name, description, goal, start_date, periodicity,
		       reminder, completed, streak, last_completed_date
		FROM habits WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var periodicity string
		var reminder, lastCompleted sql.NullString

		err := rows.Scan(
			&h.ID, &h.UserID, &h.Name, &h.Description, &h.Goal, &h.StartDate,
			&periodicity, &reminder, &h.Completed, &h.Streak, &lastCompleted,
		)
		if err != nil {
			return nil, err
		}

		h.Periodicity = models.Periodicity(periodicity)
		if reminder.Valid {
			h.Reminder = &reminder.String
		}
		if lastCompleted.Valid {
			h.LastCompletedDate = &lastCompleted.String
		}

		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) UpdateHabitProgress(habitID int64, completed bool, streak int, lastCompletedDate *string) error {
	var lastCompleted sql.NullString
	if lastCompletedDate != nil {
		lastCompleted = sql.NullString{String: *lastCompletedDate, Valid: true}
	}

	res, err := s.db.Exec(`
		UPDATE habits SET completed = ?, streak = ?, last_completed_date = ?
		WHERE id = ?`,
		completed, streak, lastCompleted, habitID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit with id %d not found", habitID)
	}
	return nil
}

// DeleteHabit removes a habit and its completion history in one
// transaction.
func (s *Store) DeleteHabit(habitID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habit_completions WHERE habit_id = ?", habitID); err != nil {
		return err
	}

	res, err := tx.Exec("DELETE FROM habits WHERE id = ?", habitID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit with id %d not found", habitID)
	}

	return tx.Commit()
}

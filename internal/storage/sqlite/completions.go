package sqlite

func (s *Store) AddCompletion(habitID int64, completedAt string) error {
	_, err := s.db.Exec(
		"INSERT INTO habit_completions (habit_id, completed_at) VALUES (?, ?)",
		habitID, completedAt)
	return err
}

// GetCompletions returns up to limit completion timestamps, most recent
// first.
func (s *Store) GetCompletions(habitID int64, limit int) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT completed_at FROM habit_completions
		WHERE habit_id = ?
		ORDER BY completed_at DESC, id DESC LIMIT ?`,
		habitID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []string
	for rows.Next() {
		var ts string
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		completions = append(completions, ts)
	}

	return completions, rows.Err()
}

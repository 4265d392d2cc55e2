package models

import "errors"

// ErrDuplicateEmail is returned by stores when a user with the same email
// already exists.
var ErrDuplicateEmail = errors.New("email already exists")

// User represents an account of the habit tracker. The ID is assigned by
// the store when the user is first saved.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Completion is a single check-off event in the append-only history log.
// Events are never mutated and only bulk-deleted with the owning habit.
type Completion struct {
	ID          int64  `json:"id"`
	HabitID     int64  `json:"habit_id"`
	CompletedAt string `json:"completed_at"` // RFC3339 timestamp
}

package storage

import "github.com/julianstephens/habitual/internal/models"

// Provider is the persistence collaborator consumed by the CLI flows. All
// access is serialized by the single caller; concurrent multi-process use
// is not supported.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Users
	AddUser(name, email string) (int64, error)
	GetUserByEmail(email string) (models.User, error)

	// Habits
	AddHabit(habit models.Habit) (int64, error)
	GetHabitsByUser(userID int64) ([]models.Habit, error)
	UpdateHabitProgress(habitID int64, completed bool, streak int, lastCompletedDate *string) error
	DeleteHabit(habitID int64) error

	// Completions
	AddCompletion(habitID int64, completedAt string) error
	GetCompletions(habitID int64, limit int) ([]string, error)

	// Utils
	GetConfigPath() string
}

package storage

import (
	"database/sql"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to the Provider interface.
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a new PostgreSQL-backed store for the given
// connection string.
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{store: postgres.New(connStr)}
}

// Lifecycle
func (s *PostgresStore) Init() error  { return s.store.Init() }
func (s *PostgresStore) Load() error  { return s.store.Load() }
func (s *PostgresStore) Close() error { return s.store.Close() }

// Users
func (s *PostgresStore) AddUser(name, email string) (int64, error) {
	return s.store.AddUser(name, email)
}
func (s *PostgresStore) GetUserByEmail(email string) (models.User, error) {
	return s.store.GetUserByEmail(email)
}

// Habits
func (s *PostgresStore) AddHabit(habit models.Habit) (int64, error) { return s.store.AddHabit(habit) }
func (s *PostgresStore) GetHabitsByUser(userID int64) ([]models.Habit, error) {
	return s.store.GetHabitsByUser(userID)
}
func (s *PostgresStore) UpdateHabitProgress(habitID int64, completed bool, streak int, lastCompletedDate *string) error {
	return s.store.UpdateHabitProgress(habitID, completed, streak, lastCompletedDate)
}
func (s *PostgresStore) DeleteHabit(habitID int64) error { return s.store.DeleteHabit(habitID) }

// Completions
func (s *PostgresStore) AddCompletion(habitID int64, completedAt string) error {
	return s.store.AddCompletion(habitID, completedAt)
}
func (s *PostgresStore) GetCompletions(habitID int64, limit int) ([]string, error) {
	return s.store.GetCompletions(habitID, limit)
}

// Utils
func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *PostgresStore) GetDB() *sql.DB        { return s.store.GetDB() }

package storage

import (
	"database/sql"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite-backed store at the given path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

// Lifecycle
func (s *SQLiteStore) Init() error  { return s.store.Init() }
func (s *SQLiteStore) Load() error  { return s.store.Load() }
func (s *SQLiteStore) Close() error { return s.store.Close() }

// Users
func (s *SQLiteStore) AddUser(name, email string) (int64, error) { return s.store.AddUser(name, email) }
func (s *SQLiteStore) GetUserByEmail(email string) (models.User, error) {
	return s.store.GetUserByEmail(email)
}

// Habits
func (s *SQLiteStore) AddHabit(habit models.Habit) (int64, error) { return s.store.AddHabit(habit) }
func (s *SQLiteStore) GetHabitsByUser(userID int64) ([]models.Habit, error) {
	return s.store.GetHabitsByUser(userID)
}
func (s *SQLiteStore) UpdateHabitProgress(habitID int64, completed bool, streak int, lastCompletedDate *string) error {
	return s.store.UpdateHabitProgress(habitID, completed, streak, lastCompletedDate)
}
func (s *SQLiteStore) DeleteHabit(habitID int64) error { return s.store.DeleteHabit(habitID) }

// Completions
func (s *SQLiteStore) AddCompletion(habitID int64, completedAt string) error {
	return s.store.AddCompletion(habitID, completedAt)
}
func (s *SQLiteStore) GetCompletions(habitID int64, limit int) ([]string, error) {
	return s.store.GetCompletions(habitID, limit)
}

// Utils
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *SQLiteStore) GetDB() *sql.DB        { return s.store.GetDB() }

package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/julianstephens/habitual/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolation = "23505"

func (s *Store) AddUser(name, email string) (int64, error) {
	var id int64
	err := s.db.QueryRow(
		"INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id",
		name, email).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, fmt.Errorf("%w: %s", models.ErrDuplicateEmail, email)
		}
		return 0, err
	}
	return id, nil
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	row := s.db.QueryRow("SELECT id, name, email FROM users WHERE email = $1", email)

	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		return models.User{}, err
	}
	return u, nil
}

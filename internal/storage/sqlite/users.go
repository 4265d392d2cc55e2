package sqlite

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/models"
)

func (s *Store) AddUser(name, email string) (int64, error) {
	res, err := s.db.Exec("INSERT INTO users (name, email) VALUES (?, ?)", name, email)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("%w: %s", models.ErrDuplicateEmail, email)
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	row := s.db.QueryRow("SELECT id, name, email FROM users WHERE email = ?", email)

	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		return models.User{}, err
	}
	return u, nil
}

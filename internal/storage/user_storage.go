package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	"modernc.org/sqlite"

	"CreditPathAI/internal/models"
)

var (
	ErrEmailExists  = eris.New("email already registered")
	ErrUserNotFound = eris.New("user not found")
)

// sqliteConstraintUnique is SQLITE_CONSTRAINT_UNIQUE.
const sqliteConstraintUnique = 2067

func (s *Store) CreateUser(name, email, passwordHash string) (models.User, error) {
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	stmt, err := s.db.Prepare("INSERT INTO users(name, email, password_hash, created_at) VALUES(?, ?, ?, ?)")
	if err != nil {
		return user, eris.Wrap(err, "storage: prepare insert user")
	}
	defer stmt.Close()

	res, err := stmt.Exec(name, email, passwordHash, user.CreatedAt.Format(time.RFC3339))
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return user, ErrEmailExists
		}
		return user, eris.Wrap(err, "storage: insert user")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return user, eris.Wrap(err, "storage: user id")
	}
	user.ID = int(id)
	return user, nil
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	var created string

	row := s.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, eris.Wrap(err, "storage: get user")
	}

	user.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return user, nil
}

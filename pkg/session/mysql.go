package session

import (
	"database/sql"
	"time"
)

// MySQLRegistry shares the token set between instances through a
// sessions table. created_at is stored so an expiry policy can be
// added without a schema change.
type MySQLRegistry struct {
	DB *sql.DB
}

func NewMySQLRegistry(db *sql.DB) *MySQLRegistry {
	return &MySQLRegistry{DB: db}
}

func (r *MySQLRegistry) Create() (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	_, err = r.DB.Exec(`
		INSERT INTO sessions (token, created_at)
		VALUES (?, ?)
	`, token, time.Now().UTC())
	if err != nil {
		return "", err
	}

	return token, nil
}

func (r *MySQLRegistry) IsValid(token string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM sessions
			WHERE token = ?
		)
	`, token).Scan(&exists)
	return exists, err
}

func (r *MySQLRegistry) Invalidate(token string) error {
	_, err := r.DB.Exec(`
		DELETE FROM sessions WHERE token = ?
	`, token)
	return err
}

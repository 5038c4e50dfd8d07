// ABOUTME: User rows: creation and lookup for the auth service.
// ABOUTME: Emails are lower-cased before every read and write.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/eccahealth/ecca/internal/models"
)

// CreateUser inserts a user and returns the assigned id. The email is
// normalized to lower case; a duplicate (case-insensitive) violates the
// unique constraint and surfaces as an error.
func (d *DB) CreateUser(name, email, passwordHash string) (int64, error) {
	conn, err := d.handle()
	if err != nil {
		return 0, err
	}

	res, err := conn.Exec(
		`INSERT INTO users (name, email, password) VALUES (?, ?, ?)`,
		name, strings.ToLower(email), passwordHash,
	)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user insert id: %w", err)
	}
	return id, nil
}

// GetUserByID fetches a user row. The password hash is never returned.
func (d *DB) GetUserByID(id int64) (*models.User, error) {
	conn, err := d.handle()
	if err != nil {
		return nil, err
	}

	var u models.User
	var createdAt string
	err = conn.QueryRow(
		`SELECT id, name, email, created_at FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	return &u, nil
}

// GetUserCredentials looks up a user's id and password hash by email for
// credential checks. Returns ErrNotFound when the email is unknown.
func (d *DB) GetUserCredentials(email string) (int64, string, error) {
	conn, err := d.handle()
	if err != nil {
		return 0, "", err
	}

	var id int64
	var hash string
	err = conn.QueryRow(
		`SELECT id, password FROM users WHERE email = ?`, strings.ToLower(email),
	).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", ErrNotFound
	}
	if err != nil {
		return 0, "", fmt.Errorf("get credentials: %w", err)
	}
	return id, hash, nil
}

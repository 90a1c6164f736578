// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/fitroom/models"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("user not found")
)

// UserStore persists user records in the users table.
type UserStore struct {
	db *sql.DB
}

func New(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// userColumns is the column list scanned by the find methods. Order must
// match scanUser.
const userColumns = `id, username, password_hash,
	height, weight, chest, underbust, waist, hips, sleeve, thigh, inseam, outseam, gender`

// CreateUser hashes the password and inserts a new record with all
// measurement fields null. Returns ErrDuplicateUsername if the username
// is taken.
func (s *UserStore) CreateUser(ctx context.Context, username, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, string(hash),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new user id: %w", err)
	}

	return id, nil
}

// FindByUsername returns the full user record, or ErrNotFound.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = ?", username)
	return scanUser(row)
}

// FindByID returns the full user record, or ErrNotFound.
func (s *UserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

// ApplyPartialUpdate writes exactly the named columns in one UPDATE,
// leaving every other column untouched. Callers pass parallel column and
// value slices; a nil value clears the column. Passing no columns is an
// error in the store: deciding that an empty update is a no-op belongs
// to the caller.
func (s *UserStore) ApplyPartialUpdate(ctx context.Context, id int64, columns []string, values []any) error {
	if len(columns) == 0 || len(columns) != len(values) {
		return fmt.Errorf("malformed partial update: %d columns, %d values", len(columns), len(values))
	}

	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = col + " = ?"
	}

	args := append(append([]any{}, values...), id)
	query := "UPDATE users SET " + strings.Join(assignments, ", ") + " WHERE id = ?"

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update user %d: %w", id, err)
	}

	return nil
}

// VerifyPassword reports whether the password matches the stored hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	m := &u.Measurements
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash,
		&m.Height, &m.Weight, &m.Chest, &m.Underbust, &m.Waist,
		&m.Hips, &m.Sleeve, &m.Thigh, &m.Inseam, &m.Outseam, &m.Gender,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &u, nil
}

// isUniqueViolation detects the sqlite unique-constraint error without
// depending on driver error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

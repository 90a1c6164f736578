// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// MeasurementColumns maps each measurement column to its sqlite type.
// This is the authoritative list of columns migration 2 reconciles.
var MeasurementColumns = []struct {
	Name string
	Type string
}{
	{"height", "REAL"},
	{"weight", "REAL"},
	{"chest", "REAL"},
	{"underbust", "REAL"},
	{"waist", "REAL"},
	{"hips", "REAL"},
	{"sleeve", "REAL"},
	{"thigh", "REAL"},
	{"inseam", "REAL"},
	{"outseam", "REAL"},
	{"gender", "TEXT"},
}

type migration struct {
	version int
	name    string
	apply   func(db *sql.DB) error
}

// migrations is the ordered, versioned list applied by Migrate. Append
// only; never renumber an applied version.
var migrations = []migration{
	{1, "create users table", createUsersTable},
	{2, "add measurement columns", addMeasurementColumns},
}

// Migrate brings the database schema up to date. Must run to completion
// before the server starts accepting requests, since migration 2 alters
// table structure. Safe to call on every startup.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var applied int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}

		if err := m.apply(db); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}

		_, err = db.Exec(
			"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
			m.version, m.name, time.Now(),
		)
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}

		slog.Info("migration applied", "version", m.version, "name", m.name)
	}

	return nil
}

func createUsersTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL
		)
	`)
	return err
}

// addMeasurementColumns adds each measurement column individually.
// A database created before migrations were versioned may already carry
// some of these columns, so a failed ALTER is logged and skipped rather
// than failing startup.
func addMeasurementColumns(db *sql.DB) error {
	existing, err := TableColumns(db, "users")
	if err != nil {
		return err
	}

	for _, col := range MeasurementColumns {
		if existing[col.Name] {
			continue
		}
		_, err := db.Exec(fmt.Sprintf("ALTER TABLE users ADD COLUMN %s %s", col.Name, col.Type))
		if err != nil {
			slog.Warn("could not add column, assuming it already exists",
				"column", col.Name, "error", err)
		}
	}

	return nil
}

// TableColumns returns the set of column names of a table.
func TableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to read table info: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dfltValue  any
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dfltValue, &primaryKey); err != nil {
			return nil, fmt.Errorf("failed to scan table info: %w", err)
		}
		columns[name] = true
	}

	return columns, rows.Err()
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema migrations for the sqlite user store.

# Migrations

Migrate applies a versioned migration list, recording applied versions in
a schema_migrations table:

	if err := db.Migrate(conn); err != nil {
		log.Fatal(err)
	}

Safe to call on every startup; already-applied versions are skipped, so
running it twice leaves the column set unchanged.

# Versions

 1. create users table: id, username (unique), password_hash
 2. add measurement columns: ten REAL anthropometric columns plus a TEXT
    gender column, added one ALTER TABLE at a time

Migration 2 tolerates individual column-add failures. Databases that
predate versioned migrations may already carry some of the columns, and
sqlite has no ADD COLUMN IF NOT EXISTS; a failure is logged and the
column assumed present.

# Ordering

Migrate must finish before the HTTP server starts: it mutates table
structure and must not race in-flight request handling.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the credential store over the users table.

# Operations

	id, err := users.CreateUser(ctx, "alice", "hunter2")
	u, err := users.FindByUsername(ctx, "alice")
	u, err := users.FindByID(ctx, id)
	err := users.ApplyPartialUpdate(ctx, id, columns, values)

CreateUser hashes passwords with bcrypt before they reach the database;
plaintext passwords are never stored. Username uniqueness is enforced by
the table's UNIQUE constraint and surfaced as ErrDuplicateUsername.

# Partial Updates

ApplyPartialUpdate issues a single UPDATE naming exactly the supplied
columns. It never overwrites the whole record: clients legitimately
submit whichever subset of measurements they have, and untouched columns
must keep their prior values. Column names come from the fixed allow-list
in package measure, never from client input.

# Errors

ErrDuplicateUsername and ErrNotFound are the two expected failures; the
handler layer maps them to 409 and 404. Anything else is a wrapped
backend error and becomes a 500.
*/
package store

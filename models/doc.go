// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared
across the server.

# Domain Types

User is the sole persisted entity: an id, a unique username, a one-way
password hash, and a set of optional body measurements. The password hash
is never serialized.

Measurements uses pointer fields throughout because every measurement is
independently nullable. JSON tags deliberately omit omitempty so that GET
/api/user/measurements returns an explicit null for fields the user has
never filled in.

# Request/Response Types

Request bodies and response envelopes for the auth and measurement
endpoints, plus the standard ErrorResponse:

	{"error": "Bad Request", "message": "username is required"}

Gender values are constrained to the GenderMan and GenderWoman constants.
*/
package models

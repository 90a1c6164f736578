// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

# Handler Groups

  - AuthHandler: registration, login, logout, and the auth status probe
  - MeasurementHandler: the sparse measurement update and read endpoints
  - PageHandler: static HTML pages, css/js assets, and 3D model files

Handlers receive their dependencies (user store, session manager) through
constructors; there is no ambient request-local state. Each handler maps
domain errors onto the status taxonomy:

	validation failure  -> 400
	bad credentials     -> 401
	record vanished     -> 404
	duplicate username  -> 409
	backend failure     -> 500

Backend failures are logged with the user id and surfaced as a generic
500; there are no retries.

# Auth

Protected routes are wrapped with middleware.RequireSession at the
router. Handlers that need the user id call sessions.FromRequest
themselves rather than trusting anything the gate might have stashed.
*/
package handlers

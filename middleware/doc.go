// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging logs request start and completion with a per-request uuid:

	mux.HandleFunc("GET /profile", middleware.WithLogging(handler))

# Session Gate

RequireSession is the login gate composed onto every protected route:

	middleware.RequireSession(sessions, handler)

Unauthenticated requests short-circuit to a 302 redirect to /login. The
gate deliberately carries no payload of its own; gated handlers call
sessions.FromRequest again when they need the user id.

Routes left open: the login and register pages and submissions, logout,
the auth status probe, and static assets.

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody standardize response
encoding and the {error, message} error envelope.

# Client IP

GetClientIP resolves the originating address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr.
*/
package middleware

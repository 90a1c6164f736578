// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Fitroom server.

Fitroom is a session-authenticated web backend for a virtual fitting
room: it stores per-user body measurements and serves a fixed set of
static HTML pages gated by login state.

# Starting the Server

The server reads configuration from environment variables (a .env file
is honored) or CLI flags:

	SESSION_SECRET=... go run .

Or with flags:

	go run . -p 5000 -d users.db --session-secret ...

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): HMAC key for session cookies

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_PATH (-d): sqlite file (default: users.db)
  - ASSETS_DIR (-a): static asset directory (default: .)
  - MODELS_DIR (-m): 3D model directory (default: models)
  - SESSION_TTL (--session-ttl): session lifetime (default: 168h)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, measurements, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: session gate, logging, JSON helpers
  - models: request/response and domain types
  - session: HMAC-signed cookie sessions
  - store: user record persistence over sqlite
  - measure: sparse measurement validation and partial updates
  - db: versioned, idempotent schema migrations
  - cliparse: configuration parsing

Schema migrations run to completion before the listener starts.

See package documentation for each component.
*/
package main

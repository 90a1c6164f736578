// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and
environment variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

CLI flags take precedence over environment variables. Settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_PATH (-d): sqlite database file (default: users.db)
  - ASSETS_DIR (-a): static HTML/CSS/JS directory (default: .)
  - MODELS_DIR (-m): 3D model directory (default: models)
  - SESSION_TTL (--session-ttl): session lifetime as a Go duration
    (default: 168h)
  - SESSION_SECRET (--session-secret): REQUIRED, the HMAC key used to
    sign session cookies

SESSION_SECRET has no default on purpose: a guessable secret lets anyone
mint valid sessions.
*/
package cliparse

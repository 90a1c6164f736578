// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ routing.

# Route Map

Login-gated (302 to /login without a valid session):

	GET  /, /profile, /wardrobe, /recommendations,
	     /virtual-try-on, /shop, /settings
	POST /api/user/measurements
	GET  /api/user/measurements

Open:

	GET  /login, /register        (redirect to / when authenticated)
	POST /login, /register
	GET  /logout
	GET  /api/auth/status
	GET  /health
	GET  /style.css, /script.js, /models/{name}

NewRouter wires the session manager, user store, and handlers with
explicit dependency injection and composes the RequireSession gate onto
every protected route.
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements stateless, HMAC-signed cookie sessions.

# Format

A session token is two URL-safe base64 segments joined by a dot:

	base64url(json payload) "." base64url(hmac-sha256(payload))

The payload carries the user id, username, a random session id (uuid,
used only to correlate log lines), and the issue time. Because the token
is signed with a server-side secret, the server needs no session table:
a token that verifies is one the server issued.

# Usage

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	sess := sessions.Issue(w, user.ID, user.Username)  // at login
	sessions.Clear(w)                                  // at logout

	if sess, ok := sessions.FromRequest(r); ok {
		// authenticated; sess.UserID identifies the record
	}

# Expiry

Expiry is enforced at decode from the issue time plus the configured TTL.
A tampered, malformed, or expired token reads identically to no cookie at
all; callers only ever see the ok bool.

Signature checks use hmac.Equal for constant-time comparison.
*/
package session

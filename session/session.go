// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "fitroom_session"

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpired      = errors.New("session expired")
)

// Session is the client-held state established at login. The server
// keeps no session table; everything lives in the signed cookie.
type Session struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	ID       string `json:"sid"` // random, for log correlation only
	IssuedAt int64  `json:"iat"` // unix seconds
}

// Manager signs and verifies session cookies with HMAC-SHA256.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue establishes a session for the user and sets the cookie.
func (m *Manager) Issue(w http.ResponseWriter, userID int64, username string) Session {
	s := Session{
		UserID:   userID,
		Username: username,
		ID:       uuid.NewString(),
		IssuedAt: time.Now().Unix(),
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    m.Encode(s),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return s
}

// Clear unconditionally removes the session cookie. There are no error
// cases: clearing an absent session is a no-op.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest returns the session carried by the request, if any.
// A missing, tampered, or expired cookie all read as "not logged in".
func (m *Manager) FromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}

	s, err := m.Decode(cookie.Value)
	if err != nil {
		return Session{}, false
	}

	return s, true
}

// Encode serializes and signs a session as payload.signature, both
// URL-safe base64 without padding.
func (m *Manager) Encode(s Session) string {
	payload, _ := json.Marshal(s)
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + m.sign(encoded)
}

// Decode verifies the signature and expiry, then unpacks the session.
func (m *Manager) Decode(token string) (Session, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok {
		return Session{}, ErrInvalidToken
	}

	// Constant-time comparison; never branch on partial matches
	if !hmac.Equal([]byte(sig), []byte(m.sign(encoded))) {
		return Session{}, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return Session{}, ErrInvalidToken
	}
	if s.UserID == 0 {
		return Session{}, ErrInvalidToken
	}

	if time.Since(time.Unix(s.IssuedAt, 0)) > m.ttl {
		return Session{}, ErrExpired
	}

	return s, nil
}

func (m *Manager) sign(encoded string) string {
	h := hmac.New(sha256.New, m.secret)
	h.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

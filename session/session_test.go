package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	s := Session{UserID: 42, Username: "alice", ID: "sid-1", IssuedAt: time.Now().Unix()}
	got, err := m.Decode(m.Encode(s))

	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDecodeRejectsTampering(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	token := m.Encode(Session{UserID: 42, Username: "alice", IssuedAt: time.Now().Unix()})

	tests := []struct {
		name  string
		token string
	}{
		{"no separator", strings.ReplaceAll(token, ".", "")},
		{"flipped payload byte", "x" + token[1:]},
		{"truncated signature", token[:len(token)-2]},
		{"empty", ""},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Decode(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestDecodeRejectsForeignSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token := issuer.Encode(Session{UserID: 42, Username: "alice", IssuedAt: time.Now().Unix()})
	_, err := verifier.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", time.Minute)

	stale := Session{
		UserID:   42,
		Username: "alice",
		IssuedAt: time.Now().Add(-2 * time.Minute).Unix(),
	}
	_, err := m.Decode(m.Encode(stale))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestIssueSetsCookie(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	w := httptest.NewRecorder()

	sess := m.Issue(w, 7, "bob")

	require.Equal(t, int64(7), sess.UserID)
	require.Equal(t, "bob", sess.Username)
	require.NotEmpty(t, sess.ID)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)

	got, err := m.Decode(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestClearExpiresCookie(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	w := httptest.NewRecorder()

	m.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}

func TestFromRequest(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	// No cookie at all
	r := httptest.NewRequest("GET", "/profile", nil)
	_, ok := m.FromRequest(r)
	assert.False(t, ok)

	// A valid cookie round-trips through Issue
	w := httptest.NewRecorder()
	issued := m.Issue(w, 9, "carol")

	r = httptest.NewRequest("GET", "/profile", nil)
	r.AddCookie(w.Result().Cookies()[0])
	got, ok := m.FromRequest(r)
	require.True(t, ok)
	assert.Equal(t, issued, got)

	// A tampered cookie reads as unauthenticated
	r = httptest.NewRequest("GET", "/profile", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "forged.token"})
	_, ok = m.FromRequest(r)
	assert.False(t, ok)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/fitroom/middleware"
	"github.com/danielhkuo/fitroom/models"
	"github.com/danielhkuo/fitroom/session"
	"github.com/danielhkuo/fitroom/store"
)

type AuthHandler struct {
	users    *store.UserStore
	sessions *session.Manager
}

func NewAuthHandler(users *store.UserStore, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	id, err := h.users.CreateUser(r.Context(), req.Username, req.Password)
	if errors.Is(err, store.ErrDuplicateUsername) {
		middleware.ErrorResponse(w, http.StatusConflict, "Username already exists. Please choose a different one.")
		return
	}
	if err != nil {
		slog.Error("failed to register user", "username", req.Username, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "An internal error occurred during registration.")
		return
	}

	slog.Info("user registered", "user_id", id, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		Message:     "User " + req.Username + " registered successfully! Please login.",
		RedirectURL: "/login",
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.users.FindByUsername(r.Context(), req.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to look up user", "username", req.Username, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "An internal error occurred during login.")
		return
	}

	// Missing user and wrong password answer identically
	if err != nil || !store.VerifyPassword(user.PasswordHash, req.Password) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	sess := h.sessions.Issue(w, user.ID, user.Username)
	slog.Info("user logged in", "user_id", user.ID, "session_id", sess.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Message:     "Login successful!",
		RedirectURL: "/",
	})
}

// Logout handles GET /logout. Clearing is unconditional; logging out
// without a session is fine.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.sessions.FromRequest(r); ok {
		slog.Info("user logged out", "user_id", sess.UserID, "session_id", sess.ID)
	}
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Status handles GET /api/auth/status. Open route; both states are 200.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.FromRequest(r)
	if !ok {
		middleware.JSONResponse(w, http.StatusOK, models.AuthStatusResponse{LoggedIn: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuthStatusResponse{
		LoggedIn: true,
		Username: sess.Username,
	})
}

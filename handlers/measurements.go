// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/fitroom/measure"
	"github.com/danielhkuo/fitroom/middleware"
	"github.com/danielhkuo/fitroom/models"
	"github.com/danielhkuo/fitroom/session"
	"github.com/danielhkuo/fitroom/store"
)

type MeasurementHandler struct {
	users    *store.UserStore
	engine   *measure.Engine
	sessions *session.Manager
}

func NewMeasurementHandler(users *store.UserStore, sessions *session.Manager) *MeasurementHandler {
	return &MeasurementHandler{
		users:    users,
		engine:   measure.NewEngine(users),
		sessions: sessions,
	}
}

// Save handles POST /api/user/measurements
func (h *MeasurementHandler) Save(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.FromRequest(r)
	if !ok {
		// Unreachable behind the route gate
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
		return
	}

	var raw map[string]json.RawMessage
	if err := middleware.ParseJSONBody(r, &raw); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	saved, err := h.engine.SaveMeasurements(r.Context(), sess.UserID, raw)
	if err != nil {
		var fieldErr *measure.InvalidFieldError
		switch {
		case errors.Is(err, measure.ErrInvalidGender), errors.As(err, &fieldErr):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to save measurements", "user_id", sess.UserID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "An internal error occurred while saving measurements.")
		}
		return
	}

	if saved == 0 {
		middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
			Message: "No measurement data provided to update.",
		})
		return
	}

	slog.Info("measurements saved", "user_id", sess.UserID, "fields", saved)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Measurements saved successfully!",
	})
}

// Get handles GET /api/user/measurements
func (h *MeasurementHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.FromRequest(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
		return
	}

	user, err := h.users.FindByID(r.Context(), sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		// Session outlived the record
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found or no measurements available")
		return
	}
	if err != nil {
		slog.Error("failed to load measurements", "user_id", sess.UserID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "An internal error occurred while loading measurements.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user.Measurements)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/fitroom/cliparse"
	"github.com/danielhkuo/fitroom/handlers"
	"github.com/danielhkuo/fitroom/middleware"
	"github.com/danielhkuo/fitroom/session"
	"github.com/danielhkuo/fitroom/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize shared dependencies and handlers
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	users := store.New(db)

	authHandler := handlers.NewAuthHandler(users, sessions)
	measurementHandler := handlers.NewMeasurementHandler(users, sessions)
	pageHandler := handlers.NewPageHandler(cfg, sessions)

	// gate composes the login requirement onto a protected route
	gate := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(sessions, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// HTML pages (login-gated)
	mux.HandleFunc("GET /{$}", gate(pageHandler.Page("index.html")))
	mux.HandleFunc("GET /profile", gate(pageHandler.Page("profile.html")))
	mux.HandleFunc("GET /wardrobe", gate(pageHandler.Page("wardrobe.html")))
	mux.HandleFunc("GET /recommendations", gate(pageHandler.Page("recommendations.html")))
	mux.HandleFunc("GET /virtual-try-on", gate(pageHandler.Page("virtual_try_on.html")))
	mux.HandleFunc("GET /shop", gate(pageHandler.Page("shop.html")))
	mux.HandleFunc("GET /settings", gate(pageHandler.Page("settings.html")))

	// Entry pages (open; redirect home when already logged in)
	mux.HandleFunc("GET /login", middleware.WithLogging(pageHandler.EntryPage("login.html")))
	mux.HandleFunc("GET /register", middleware.WithLogging(pageHandler.EntryPage("register.html")))

	// Static assets (open)
	mux.HandleFunc("GET /style.css", pageHandler.Asset("style.css"))
	mux.HandleFunc("GET /script.js", pageHandler.Asset("script.js"))
	mux.HandleFunc("GET /models/{name}", pageHandler.Model)

	// Auth API (open)
	mux.HandleFunc("POST /register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /api/auth/status", middleware.WithLogging(authHandler.Status))

	// Measurement API (login-gated)
	mux.HandleFunc("POST /api/user/measurements", gate(measurementHandler.Save))
	mux.HandleFunc("GET /api/user/measurements", gate(measurementHandler.Get))

	return mux
}

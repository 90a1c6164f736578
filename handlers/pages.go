// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/fitroom/cliparse"
	"github.com/danielhkuo/fitroom/session"
)

// PageHandler serves the fixed set of static HTML pages and assets.
type PageHandler struct {
	cfg      cliparse.Config
	sessions *session.Manager
}

func NewPageHandler(cfg cliparse.Config, sessions *session.Manager) *PageHandler {
	return &PageHandler{cfg: cfg, sessions: sessions}
}

// Page returns a handler serving a single HTML file from the assets
// directory. Auth gating is composed at the router, not here.
func (h *PageHandler) Page(filename string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(h.cfg.AssetsDir, filename))
	}
}

// EntryPage serves the login/register pages, which flip the usual gate:
// an already-authenticated user is sent home instead.
func (h *PageHandler) EntryPage(filename string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.sessions.FromRequest(r); ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		http.ServeFile(w, r, filepath.Join(h.cfg.AssetsDir, filename))
	}
}

// Asset serves a single static file (css/js) from the assets directory.
func (h *PageHandler) Asset(filename string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(h.cfg.AssetsDir, filename))
	}
}

// Model handles GET /models/{name}, serving 3D model files.
func (h *PageHandler) Model(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	// The pattern only matches a single segment, but never trust a
	// client-supplied path component to stay inside the directory.
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.cfg.ModelsDir, name))
}

// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fkuhne/full-stack-react-site/middleware"
)

// StaticHandler serves the single-page front end. Every non-/api path
// that does not match a file in the build directory falls back to
// index.html so client-side routing works on deep links.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Serve handles the catch-all route.
func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	// Unmatched /api paths are API 404s, never SPA pages.
	if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown API route")
		return
	}

	if h.dir == "" {
		middleware.ErrorResponse(w, http.StatusNotFound, "No front end configured")
		return
	}

	// Clean against traversal before touching the filesystem.
	name := filepath.Join(h.dir, filepath.FromSlash(strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")))

	info, err := os.Stat(name)
	if err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}

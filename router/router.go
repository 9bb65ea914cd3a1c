// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/fkuhne/full-stack-react-site/auth"
	"github.com/fkuhne/full-stack-react-site/cliparse"
	"github.com/fkuhne/full-stack-react-site/handlers"
	"github.com/fkuhne/full-stack-react-site/middleware"
	"github.com/fkuhne/full-stack-react-site/store"
)

func NewRouter(st store.ArticleStore, verifier auth.Verifier, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	articleHandler := handlers.NewArticleHandler(st)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

	// Pipeline stages: logging → identity resolution → [access gate] → handler.
	public := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithIdentity(verifier, h))
	}
	gated := func(h http.HandlerFunc) http.HandlerFunc {
		return public(middleware.RequireIdentity(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Article engagement
	mux.HandleFunc("GET /api/articles/{name}", public(articleHandler.Get))
	mux.HandleFunc("PUT /api/articles/{name}/upvote", gated(articleHandler.Upvote))
	mux.HandleFunc("POST /api/articles/{name}/comments", gated(articleHandler.AddComment))

	// Everything else is the front end
	mux.HandleFunc("/", middleware.WithLogging(staticHandler.Serve))

	return mux
}

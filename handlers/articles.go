// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fkuhne/full-stack-react-site/middleware"
	"github.com/fkuhne/full-stack-react-site/models"
	"github.com/fkuhne/full-stack-react-site/store"
)

type ArticleHandler struct {
	store store.ArticleStore
}

func NewArticleHandler(st store.ArticleStore) *ArticleHandler {
	return &ArticleHandler{store: st}
}

// Get handles GET /api/articles/:name (public)
// Returns the article with the request-specific canUpvote flag. The
// flag is derived from the resolved identity and never persisted.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	article, err := h.store.FindArticle(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		slog.Error("failed to query article", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	id := middleware.IdentityFrom(r.Context())
	article.CanUpvote = !id.IsAnonymous() && !article.HasUpvoted(id.UID)

	middleware.JSONResponse(w, http.StatusOK, article)
}

// Upvote handles PUT /api/articles/:name/upvote (identity required)
// At most one upvote per user per article; the store's conditional
// mutation enforces that, so a repeat call is a no-op that still
// returns the current state. Upvoting a missing article is also a
// no-op and answers 200 with a null body, the route's historical
// contract.
func (h *ArticleHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	id := middleware.IdentityFrom(r.Context())

	if err := h.store.Upvote(r.Context(), name, id.UID); err != nil {
		slog.Error("failed to record upvote", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	article, err := h.store.FindArticle(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		middleware.JSONResponse(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		slog.Error("failed to query article", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("article upvoted", "name", name, "uid", id.UID, "upvotes", article.Upvotes)

	middleware.JSONResponse(w, http.StatusOK, article)
}

// AddComment handles POST /api/articles/:name/comments (identity required)
// The comment is attributed to the verified identity's email, whatever
// the body claims. Commenting on a missing article answers 200 with a
// plain-text message rather than a structured error; that shape is the
// route's historical contract.
func (h *ArticleHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	var req models.AddCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id := middleware.IdentityFrom(r.Context())
	comment := models.Comment{
		PostedBy: id.Email,
		Text:     req.Text,
	}

	if err := h.store.AddComment(r.Context(), name, comment); err != nil {
		slog.Error("failed to append comment", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	article, err := h.store.FindArticle(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		w.Write([]byte("That article doesn't exist."))
		return
	}
	if err != nil {
		slog.Error("failed to query article", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("comment added", "name", name, "posted_by", comment.PostedBy)

	middleware.JSONResponse(w, http.StatusOK, article)
}

// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the article API.

# Handler Types

Each handler is a struct created via a constructor with its dependencies:

	articleHandler := handlers.NewArticleHandler(st)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

ArticleHandler receives the store explicitly; there is no package-level
database handle.

# Engagement Routes

	GET  /api/articles/{name}          → Get        (public)
	PUT  /api/articles/{name}/upvote   → Upvote     (identity required)
	POST /api/articles/{name}/comments → AddComment (identity required)

Get augments the article with a request-specific canUpvote flag. Upvote
relies on the store's atomic conditional mutation for the
at-most-once-per-user invariant and returns the updated article either
way. AddComment appends a comment attributed to the verified identity's
email.

# Missing-Article Responses

The three routes intentionally differ when the article is absent:

  - Get: 404 JSON error
  - Upvote: 200 with a JSON null body (silent no-op)
  - AddComment: 200 with a plain-text "That article doesn't exist."

These shapes are part of the wire contract and pinned by tests; see the
tests in this package before changing any of them.

# Static Front End

StaticHandler serves the SPA build directory on all non-/api paths,
falling back to index.html for client-side routes.
*/
package handlers

// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the article API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, verifier, cfg)

# Endpoints

Health:

	GET /health

Articles (public):

	GET /api/articles/{name} - Article with request-specific canUpvote

Articles (identity required via authtoken header):

	PUT  /api/articles/{name}/upvote   - Cast an upvote (once per user)
	POST /api/articles/{name}/comments - Append a comment

Front end:

	/ - Static SPA with index.html fallback on all non-/api paths

# Middleware Pipeline

Every API route runs logging then identity resolution; the two write
routes add the access gate in front of the handler:

	public: WithLogging → WithIdentity → handler
	gated:  WithLogging → WithIdentity → RequireIdentity → handler

Identity resolution rejects invalid credentials with 400 before
dispatch; the gate rejects anonymous requests with 401. The handler
only ever runs with a usable identity on gated routes.
*/
package router

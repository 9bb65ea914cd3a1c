// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Identity Resolution

WithIdentity runs on every API route. It reads the "authtoken" header,
resolves it through an auth.Verifier, and attaches the result to the
request context:

	mux.HandleFunc("GET /api/articles/{name}",
		middleware.WithIdentity(verifier, handler))

A missing token attaches the anonymous identity and proceeds. A token
that fails verification halts the request with 400 — it is never
downgraded to anonymous. A verifier fault halts with 500.

Handlers read the resolved identity from the context:

	id := middleware.IdentityFrom(r.Context())

# Access Gate

RequireIdentity guards identity-required routes. Installed after
WithIdentity, it halts anonymous requests with 401 and is otherwise a
stateless pass-through:

	middleware.WithIdentity(verifier, middleware.RequireIdentity(handler))

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(duration_ms). Request ids are UUIDs, generated per request.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, authtoken.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.AddCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware

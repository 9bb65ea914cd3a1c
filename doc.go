// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the article engagement server.

The server exposes pre-seeded articles with per-user upvoting and comment
threads. Reads are public; writes require a verified identity carried as
an opaque token in the "authtoken" request header.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... TOKEN_SALT=... go run .

Or with flags:

	go run . -p 8000 -d "postgres://..." --token-salt "..."

A .env file in the working directory is loaded automatically when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string (not needed for -t memory)
  - TOKEN_SALT (--token-salt): secret for local HMAC token verification
    (not needed when AUTH_VERIFY_URL is set)

Optional settings:

  - PORT (-p): server port (default: 8000)
  - DATABASE_TYPE (-t): postgres, sqlite, or memory (default: postgres)
  - STATIC_DIR (-s): front-end build directory served on non-/api paths
  - AUTH_VERIFY_URL (--verify-url): remote identity-provider endpoint;
    when set, tokens are verified remotely instead of via TOKEN_SALT

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (articles, static front end)
  - router: route definitions using Go 1.22+ routing
  - middleware: identity resolution, access gate, CORS, logging, JSON helpers
  - auth: credential token verification (local HMAC or remote provider)
  - store: article store interface with SQL and in-memory implementations
  - models: request/response and domain types
  - db: schema creation and article seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

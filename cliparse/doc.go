// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: server listen port (default: 8000)
  - DatabaseURL: database connection string (required unless memory)
  - DatabaseType: postgres, sqlite or memory (default: postgres)
  - StaticDir: front-end build directory (optional)
  - TokenSalt: secret for local HMAC token verification
  - VerifyURL: remote identity-provider verify endpoint (optional)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-s            Front-end build directory
	--token-salt  Token signing salt
	--verify-url  Remote verify endpoint

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	STATIC_DIR      → -s
	TOKEN_SALT      → --token-salt
	AUTH_VERIFY_URL → --verify-url

CLI flags take precedence over environment variables. main loads a
.env file first, so either mechanism can live there.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided for the postgres and sqlite types
  - TOKEN_SALT must be provided unless AUTH_VERIFY_URL is set
*/
package cliparse

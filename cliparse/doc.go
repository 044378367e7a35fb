// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first, if present.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default) or postgres
  - DatabaseURL: Connection string (default: file:ars.sqlite for sqlite)
  - CreatePass: Room creation passphrase (required)
  - BaseURL: Public base URL for share links (default: http://localhost:3318)

# CLI Flags

	-p           Server port
	-d           Database URL or SQLite path
	-t           Database type
	-base-url    Public base URL
	-create-pass Room creation passphrase

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	ARS_BASE_URL    → -base-url
	ARS_CREATE_PASS → -create-pass

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - ARS_CREATE_PASS must be provided
  - DATABASE_URL must be provided when DATABASE_TYPE is postgres
*/
package cliparse

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string or sqlite file (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - IdentifierSalt: Secret for hashing voter identifiers (required)
  - CORSOrigin: Allowed origin; empty echoes the request origin
  - WriteRate, WriteBurst: Per-client write limit (default: 1/s, burst 5)

# CLI Flags

	-env          Dotenv file (default: .env, missing file is ignored)
	-p            Server port
	-d            Database URL
	-t            Database type
	--cors-origin Allowed CORS origin
	--id-salt     Identifier salt
	--write-rate  Write requests per second
	--write-burst Write burst size

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	CORS_ORIGIN     → --cors-origin
	IDENTIFIER_SALT → --id-salt
	WRITE_RATE      → --write-rate
	WRITE_BURST     → --write-burst

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - IDENTIFIER_SALT must be provided
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Lanka Compass API server.

Lanka Compass is a bilingual (English and Sinhala) political compass quiz.
Answers on a four-point Likert scale place the user on an economic and a
social axis, a 10x10 grid cell, and next to the closest Sri Lankan
political figure. Users can share results and suggest figures for empty
cells.

# Starting the Server

The server reads CLI flags, the environment, and an optional .env file:

	DATABASE_URL=compass.db IDENTIFIER_SALT=... go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..." -id-salt ...

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file or PostgreSQL connection string
  - IDENTIFIER_SALT (--id-salt): Secret for hashing voter identifiers

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - CORS_ORIGIN (--cors-origin): Allowed origin
  - WRITE_RATE, WRITE_BURST: Per-client write limit

# Architecture

  - compass: Question bank, scoring, grid, quadrants, figures (no I/O)
  - i18n: Language negotiation and localized labels
  - handlers: HTTP request handlers (quiz, results, stats, suggestions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, security headers, locale, rate limiting, logging, JSON helpers
  - models: Request/response types
  - auth: IDs, suggester tags, identifier hashing
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

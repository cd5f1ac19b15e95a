// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database pool and creates the schema.

# Connecting

Open picks the driver from the config and pings before returning:

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

DATABASE_TYPE=postgres uses lib/pq. The default, sqlite, uses the pure Go
modernc.org/sqlite driver with foreign keys enabled and a single open
connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on both PostgreSQL and SQLite.

# Tables

  - user_results: Saved quiz results (name, scores, quadrant, avatar)
  - politician_suggestions: Community suggestions for empty grid cells
  - suggestion_votes: One row per identifier per suggestion

# Relationships

	politician_suggestions 1──* suggestion_votes

suggestion_votes.suggestion_id uses ON DELETE CASCADE and
(suggestion_id, user_identifier) is unique.

# Errors

IsUniqueViolation recognises unique constraint failures from both drivers,
so handlers can map them to 409 Conflict.
*/
package db

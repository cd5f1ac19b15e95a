// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	// One statement per Exec; lib/pq and sqlite differ on multi-statement strings.
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

const schema = `
-- Quiz results shared to the community board
CREATE TABLE IF NOT EXISTS user_results (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    economic_score DOUBLE PRECISION NOT NULL,
    social_score DOUBLE PRECISION NOT NULL,
    quadrant TEXT NOT NULL CHECK (quadrant IN ('libertarian-left', 'libertarian-right', 'authoritarian-left', 'authoritarian-right', 'centrist')),
    avatar TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_user_results_created_at ON user_results(created_at);
CREATE INDEX IF NOT EXISTS idx_user_results_quadrant ON user_results(quadrant);

-- Community suggestions for empty grid cells
CREATE TABLE IF NOT EXISTS politician_suggestions (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    quadrant TEXT NOT NULL,
    x_coordinate INTEGER NOT NULL,
    y_coordinate INTEGER NOT NULL,
    grid_id INTEGER NOT NULL CHECK (grid_id >= 0 AND grid_id <= 99),
    votes INTEGER NOT NULL DEFAULT 1,
    suggested_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_politician_suggestions_grid_id ON politician_suggestions(grid_id);
CREATE INDEX IF NOT EXISTS idx_politician_suggestions_votes ON politician_suggestions(votes);

-- One vote per identifier per suggestion
CREATE TABLE IF NOT EXISTS suggestion_votes (
    id TEXT PRIMARY KEY,
    suggestion_id TEXT NOT NULL REFERENCES politician_suggestions(id) ON DELETE CASCADE,
    user_identifier TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (suggestion_id, user_identifier)
);

CREATE INDEX IF NOT EXISTS idx_suggestion_votes_suggestion_id ON suggestion_votes(suggestion_id);
`

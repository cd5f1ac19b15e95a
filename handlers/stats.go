// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/lankacompass/server/compass"
	"github.com/lankacompass/server/middleware"
	"github.com/lankacompass/server/models"
)

// CommunityStats holds aggregates over all saved results
type CommunityStats struct {
	TotalUsers      int
	Distribution    map[string]int
	AverageEconomic float64
	AverageSocial   float64
}

type StatsHandler struct {
	db *sql.DB
}

func NewStatsHandler(db *sql.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := ComputeStats(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	avgGrid := compass.CalculateGridPosition(stats.AverageEconomic, stats.AverageSocial)
	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		TotalUsers:        stats.TotalUsers,
		TotalUsersDisplay: humanize.Comma(int64(stats.TotalUsers)),
		Distribution:      stats.Distribution,
		AverageEconomic:   stats.AverageEconomic,
		AverageSocial:     stats.AverageSocial,
		AverageGrid:       avgGrid.Block,
		Success:           true,
	})
}

// ComputeStats aggregates the user_results table. Every quadrant appears in
// the distribution, with zero when no result has it. Averages are rounded
// to one decimal and are zero for an empty table.
func ComputeStats(ctx context.Context, db *sql.DB) (CommunityStats, error) {
	var stats CommunityStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalUsers, stats.AverageEconomic, stats.AverageSocial, err = getTotals(ctx, db)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Distribution, err = getDistribution(ctx, db)
		return err
	})
	if err := g.Wait(); err != nil {
		return CommunityStats{}, err
	}

	return stats, nil
}

func getTotals(ctx context.Context, db *sql.DB) (int, float64, float64, error) {
	var (
		total            int
		economic, social sql.NullFloat64
	)
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(economic_score), AVG(social_score)
		FROM user_results
	`).Scan(&total, &economic, &social)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to query totals: %w", err)
	}

	return total, compass.RoundTenth(economic.Float64), compass.RoundTenth(social.Float64), nil
}

func getDistribution(ctx context.Context, db *sql.DB) (map[string]int, error) {
	distribution := make(map[string]int)
	for _, q := range compass.Quadrants() {
		distribution[string(q)] = 0
	}

	rows, err := db.QueryContext(ctx, `
		SELECT quadrant, COUNT(*)
		FROM user_results
		GROUP BY quadrant
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			quadrant string
			count    int
		)
		if err := rows.Scan(&quadrant, &count); err != nil {
			return nil, fmt.Errorf("failed to scan distribution: %w", err)
		}
		distribution[quadrant] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate distribution: %w", err)
	}

	return distribution, nil
}

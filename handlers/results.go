// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/lankacompass/server/auth"
	"github.com/lankacompass/server/compass"
	"github.com/lankacompass/server/i18n"
	"github.com/lankacompass/server/middleware"
	"github.com/lankacompass/server/models"
)

const (
	MaxResultNameLength = 50
	DefaultRecentLimit  = 10
	DefaultPageLimit    = 20
	MaxListLimit        = 100
)

type ResultsHandler struct {
	db *sql.DB
}

func NewResultsHandler(db *sql.DB) *ResultsHandler {
	return &ResultsHandler{db: db}
}

// SaveResult handles POST /api/results
func (h *ResultsHandler) SaveResult(w http.ResponseWriter, r *http.Request) {
	var req models.SaveResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name is required and must be a non-empty string")
		return
	}
	if utf8.RuneCountInString(name) > MaxResultNameLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Name must be %d characters or less", MaxResultNameLength))
		return
	}

	if !validScore(req.EconomicScore) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Economic score must be a number between -10 and 10")
		return
	}
	if !validScore(req.SocialScore) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Social score must be a number between -10 and 10")
		return
	}

	quadrant, err := compass.ParseQuadrant(req.Quadrant)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid quadrant")
		return
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = compass.DefaultAvatar
	}
	if _, ok := compass.AvatarByFilename(avatar); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid avatar")
		return
	}

	id := auth.NewID()
	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO user_results (id, name, economic_score, social_score, quadrant, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, name, *req.EconomicScore, *req.SocialScore, string(quadrant), avatar, time.Now().UTC())
	if err != nil {
		slog.Error("failed to save result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save result")
		return
	}

	slog.Info("result saved", "result_id", id, "quadrant", quadrant)

	lang := middleware.LanguageFromContext(r.Context())
	middleware.JSONResponse(w, http.StatusCreated, models.SaveResultResponse{
		Success: true,
		ID:      id,
		Message: i18n.T(lang, "result.saved"),
	})
}

func validScore(v *float64) bool {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return false
	}
	return *v >= -10 && *v <= 10
}

// ListResults handles GET /api/results
// mode=recent (default) returns the newest results; mode=paginated adds
// totals and supports a case-insensitive name search.
func (h *ResultsHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode := q.Get("mode")
	if mode == "" {
		mode = models.ModeRecent
	}
	if mode != models.ModeRecent && mode != models.ModePaginated {
		middleware.ErrorResponse(w, http.StatusBadRequest, "mode must be recent or paginated")
		return
	}

	defaultLimit := DefaultRecentLimit
	if mode == models.ModePaginated {
		defaultLimit = DefaultPageLimit
	}
	limit, err := intParam(q.Get("limit"), defaultLimit, 1, MaxListLimit)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "limit "+err.Error())
		return
	}

	if mode == models.ModeRecent {
		results, err := queryResults(r.Context(), h.db, "", limit, 0)
		if err != nil {
			slog.Error("failed to query recent results", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, models.RecentResultsResponse{Results: results})
		return
	}

	page, err := intParam(q.Get("page"), 1, 1, math.MaxInt32)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "page "+err.Error())
		return
	}
	search := strings.TrimSpace(q.Get("search"))

	var (
		results []models.UserResult
		total   int
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		results, err = queryResults(ctx, h.db, search, limit, (page-1)*limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = countResults(ctx, h.db, search)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("failed to query paginated results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PaginatedResultsResponse{
		Results:    results,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
		Page:       page,
	})
}

// intParam parses an optional integer query parameter within [lo, hi].
func intParam(raw string, def, lo, hi int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("must be an integer")
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("must be between %d and %d", lo, hi)
	}
	return v, nil
}

// likePattern builds a case-insensitive substring pattern. Wildcards in
// the search text are escaped with a backslash.
func likePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(search)) + "%"
}

func queryResults(ctx context.Context, db *sql.DB, search string, limit, offset int) ([]models.UserResult, error) {
	query := `
		SELECT id, name, economic_score, social_score, quadrant, avatar, created_at
		FROM user_results`
	args := []any{}
	if search != "" {
		query += ` WHERE LOWER(name) LIKE $1 ESCAPE '\'`
		args = append(args, likePattern(search))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	results := []models.UserResult{}
	for rows.Next() {
		var res models.UserResult
		if err := rows.Scan(&res.ID, &res.Name, &res.EconomicScore, &res.SocialScore,
			&res.Quadrant, &res.Avatar, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		res.CreatedAgo = humanize.Time(res.CreatedAt)
		res.Grid = compass.CalculateGridPosition(res.EconomicScore, res.SocialScore)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	return results, nil
}

func countResults(ctx context.Context, db *sql.DB, search string) (int, error) {
	query := `SELECT COUNT(*) FROM user_results`
	args := []any{}
	if search != "" {
		query += ` WHERE LOWER(name) LIKE $1 ESCAPE '\'`
		args = append(args, likePattern(search))
	}

	var total int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return total, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lankacompass/server/auth"
	"github.com/lankacompass/server/cliparse"
	"github.com/lankacompass/server/compass"
	"github.com/lankacompass/server/db"
	"github.com/lankacompass/server/i18n"
	"github.com/lankacompass/server/middleware"
	"github.com/lankacompass/server/models"
)

// UserIdentifierHeader carries the client's stable voter identifier
const UserIdentifierHeader = "X-User-Identifier"

const MaxSuggestionNameLength = 100

type SuggestionsHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	figures *compass.FigureIndex
}

func NewSuggestionsHandler(db *sql.DB, cfg cliparse.Config, figures *compass.FigureIndex) *SuggestionsHandler {
	return &SuggestionsHandler{db: db, cfg: cfg, figures: figures}
}

// ListSuggestions handles GET /api/suggestions
func (h *SuggestionsHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT id, name, quadrant, x_coordinate, y_coordinate, grid_id, votes, suggested_by, created_at
		FROM politician_suggestions
		ORDER BY votes DESC, created_at DESC, id
	`)
	if err != nil {
		slog.Error("failed to query suggestions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch suggestions")
		return
	}
	defer rows.Close()

	suggestions := []models.Suggestion{}
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			slog.Error("failed to scan suggestion", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch suggestions")
			return
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate suggestions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch suggestions")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuggestionsResponse{Suggestions: suggestions})
}

// CreateSuggestion handles POST /api/suggestions
// The suggester's own vote is recorded with the suggestion.
func (h *SuggestionsHandler) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	voterHash, ok := h.voterHash(w, r)
	if !ok {
		return
	}

	var req models.CreateSuggestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.X == nil || req.Y == nil || req.GridID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name, x, y, and gridId are required")
		return
	}
	if utf8.RuneCountInString(name) > MaxSuggestionNameLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Name must be %d characters or less", MaxSuggestionNameLength))
		return
	}

	gridID := *req.GridID
	if gridID < 0 || gridID >= compass.GridCells {
		middleware.ErrorResponse(w, http.StatusBadRequest, "gridId must be between 0 and 99")
		return
	}
	x, y := *req.X, *req.Y
	pos := compass.CalculateGridPosition(float64(x), float64(y))
	if pos.Block != gridID {
		middleware.ErrorResponse(w, http.StatusBadRequest, "gridId does not match coordinates")
		return
	}
	if req.Quadrant != "" && req.Quadrant != string(pos.Quadrant) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "quadrant does not match grid cell")
		return
	}

	if fig, taken := h.figures.FigureAt(gridID); taken {
		middleware.ErrorResponse(w, http.StatusConflict, "Grid cell is already occupied by "+fig.Name)
		return
	}

	suggestedBy, err := auth.GenerateSuggesterTag()
	if err != nil {
		slog.Error("failed to generate suggester tag", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create suggestion")
		return
	}

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create suggestion")
		return
	}
	defer tx.Rollback()

	id := auth.NewID()
	now := time.Now().UTC()
	_, err = tx.ExecContext(r.Context(), `
		INSERT INTO politician_suggestions (id, name, quadrant, x_coordinate, y_coordinate, grid_id, votes, suggested_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8)
	`, id, name, string(pos.Quadrant), x, y, gridID, suggestedBy, now)
	if err != nil {
		slog.Error("failed to insert suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create suggestion")
		return
	}

	if err := insertVote(r.Context(), tx, id, voterHash, now); err != nil {
		slog.Error("failed to record suggester vote", "error", err, "suggestion_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create suggestion")
		return
	}

	suggestion, err := getSuggestion(r.Context(), tx, id)
	if err != nil {
		slog.Error("failed to reload suggestion", "error", err, "suggestion_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create suggestion")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create suggestion")
		return
	}

	slog.Info("suggestion created", "suggestion_id", id, "grid_id", gridID)

	lang := middleware.LanguageFromContext(r.Context())
	middleware.JSONResponse(w, http.StatusCreated, models.SuggestionResponse{
		Suggestion: suggestion,
		Message:    i18n.T(lang, "suggestion.created"),
	})
}

// Vote handles POST /api/suggestions/{id}/vote
// Each identifier may vote once per suggestion.
func (h *SuggestionsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	suggestionID := r.PathValue("id")
	if suggestionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "suggestion id is required")
		return
	}

	voterHash, ok := h.voterHash(w, r)
	if !ok {
		return
	}

	lang := middleware.LanguageFromContext(r.Context())

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(r.Context(), `
		SELECT EXISTS(SELECT 1 FROM politician_suggestions WHERE id = $1)
	`, suggestionID).Scan(&exists)
	if err != nil {
		slog.Error("failed to look up suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Suggestion not found")
		return
	}

	err = insertVote(r.Context(), tx, suggestionID, voterHash, time.Now().UTC())
	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, i18n.T(lang, "error.already_voted"))
		return
	}
	if err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	_, err = tx.ExecContext(r.Context(), `
		UPDATE politician_suggestions SET votes = votes + 1 WHERE id = $1
	`, suggestionID)
	if err != nil {
		slog.Error("failed to increment votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	suggestion, err := getSuggestion(r.Context(), tx, suggestionID)
	if err != nil {
		slog.Error("failed to reload suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	if err := tx.Commit(); err != nil {
		// A concurrent duplicate can surface at commit time on some backends
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, i18n.T(lang, "error.already_voted"))
			return
		}
		slog.Error("failed to commit vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("suggestion vote recorded", "suggestion_id", suggestionID, "votes", suggestion.Votes)

	middleware.JSONResponse(w, http.StatusOK, models.SuggestionResponse{
		Suggestion: suggestion,
		Message:    i18n.T(lang, "suggestion.voted"),
	})
}

// voterHash reads and hashes the identifier header, writing a 400 when it
// is missing.
func (h *SuggestionsHandler) voterHash(w http.ResponseWriter, r *http.Request) (string, bool) {
	hash, err := auth.HashIdentifier(r.Header.Get(UserIdentifierHeader), h.cfg.IdentifierSalt)
	if errors.Is(err, auth.ErrEmptyIdentifier) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User identifier is required")
		return "", false
	}
	if err != nil {
		slog.Error("failed to hash identifier", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return "", false
	}
	return hash, true
}

func insertVote(ctx context.Context, tx *sql.Tx, suggestionID, voterHash string, at time.Time) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO suggestion_votes (id, suggestion_id, user_identifier, created_at)
		VALUES ($1, $2, $3, $4)
	`, auth.NewID(), suggestionID, voterHash, at)
	return err
}

func getSuggestion(ctx context.Context, tx *sql.Tx, id string) (models.Suggestion, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT id, name, quadrant, x_coordinate, y_coordinate, grid_id, votes, suggested_by, created_at
		FROM politician_suggestions
		WHERE id = $1
	`, id)
	return scanSuggestion(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSuggestion(row rowScanner) (models.Suggestion, error) {
	var s models.Suggestion
	err := row.Scan(&s.ID, &s.Name, &s.Quadrant, &s.X, &s.Y, &s.GridID, &s.Votes, &s.SuggestedBy, &s.CreatedAt)
	return s, err
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/lankacompass/server/cliparse"
	"github.com/lankacompass/server/compass"
	"github.com/lankacompass/server/handlers"
	"github.com/lankacompass/server/i18n"
	"github.com/lankacompass/server/middleware"
)

// Banner is the body of GET /
const Banner = "lanka-compass API v1"

// NewRouter wires every route. Write endpoints share limiter; the returned
// handler already applies CORS, security headers and locale resolution.
func NewRouter(db *sql.DB, cfg cliparse.Config, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	figures := compass.DefaultFigures()

	// Initialize handlers
	resultsHandler := handlers.NewResultsHandler(db)
	statsHandler := handlers.NewStatsHandler(db)
	suggestionsHandler := handlers.NewSuggestionsHandler(db, cfg, figures)
	quizHandler := handlers.NewQuizHandler(figures)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(i18n.T(middleware.LanguageFromContext(r.Context()), "health.ok")))
	})

	// Quiz (stateless)
	mux.HandleFunc("GET /api/questions", middleware.WithLogging(quizHandler.GetQuestions))
	mux.HandleFunc("POST /api/score", middleware.WithLogging(quizHandler.Score))

	// Reference data
	mux.HandleFunc("GET /api/figures", middleware.WithLogging(quizHandler.ListFigures))
	mux.HandleFunc("GET /api/grid/{block}", middleware.WithLogging(quizHandler.GetGridBlock))
	mux.HandleFunc("GET /api/avatars", middleware.WithLogging(quizHandler.ListAvatars))

	// Community results
	mux.HandleFunc("POST /api/results", middleware.WithLogging(limiter.Limit(resultsHandler.SaveResult)))
	mux.HandleFunc("GET /api/results", middleware.WithLogging(resultsHandler.ListResults))
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(statsHandler.GetStats))

	// Politician suggestions
	mux.HandleFunc("GET /api/suggestions", middleware.WithLogging(suggestionsHandler.ListSuggestions))
	mux.HandleFunc("POST /api/suggestions", middleware.WithLogging(limiter.Limit(suggestionsHandler.CreateSuggestion)))
	mux.HandleFunc("POST /api/suggestions/{id}/vote", middleware.WithLogging(limiter.Limit(suggestionsHandler.Vote)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return middleware.CORS(cfg.CORSOrigin)(middleware.SecureHeaders(middleware.Locale(mux)))
}

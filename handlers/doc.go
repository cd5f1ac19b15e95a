// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Lanka Compass API.

# Handler Types

Each handler is a struct with its dependencies:

  - QuizHandler: Questions, scoring, figures, grid blocks, avatars
  - ResultsHandler: Saving and listing community results
  - StatsHandler: Community aggregates
  - SuggestionsHandler: Politician suggestions and votes

Database handlers are created with *sql.DB. SuggestionsHandler also takes
Config for the identifier salt:

	resultsHandler := handlers.NewResultsHandler(db)
	suggestionsHandler := handlers.NewSuggestionsHandler(db, cfg, compass.DefaultFigures())

QuizHandler only needs the figure index:

	quizHandler := handlers.NewQuizHandler(compass.DefaultFigures())

# Quiz

Scoring is stateless; nothing is written until the user saves:

	GET  /api/questions   → GetQuestions (?page, ?perPage, ?lang)
	POST /api/score       → Score (?breakdown=true adds the walkthrough)
	GET  /api/figures     → ListFigures
	GET  /api/grid/{block} → GetGridBlock
	GET  /api/avatars     → ListAvatars

# Community Results

	POST /api/results → SaveResult
	GET  /api/results → ListResults (?mode=recent|paginated, ?search)
	GET  /api/stats   → GetStats

Stats are computed with concurrent queries via errgroup:

	stats, err := ComputeStats(ctx, db)

# Suggestions

	GET  /api/suggestions           → ListSuggestions
	POST /api/suggestions           → CreateSuggestion
	POST /api/suggestions/{id}/vote → Vote

Suggestion writes require the X-User-Identifier header. The identifier is
stored only as a salted hash, and each hash may vote once per suggestion.
*/
package handlers

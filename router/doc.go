// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Lanka Compass API.

# Route Registration

NewRouter returns the full handler stack:

	limiter := middleware.NewRateLimiter(cfg.WriteRate, cfg.WriteBurst).TrustForwarded(cfg.TrustProxy)
	handler := router.NewRouter(db, cfg, limiter)

Every response passes through CORS, SecureHeaders and Locale.

# Endpoints

Health:

	GET /health
	GET /

Quiz (stateless):

	GET  /api/questions?lang=&page=&perPage= - Localized question page
	POST /api/score[?breakdown=true]          - Score answers

Reference data:

	GET /api/figures       - Curated figures with grid blocks
	GET /api/grid/{block}  - Block details and occupying figure
	GET /api/avatars       - Avatar catalog

Community (writes are rate limited):

	POST /api/results                - Save a result
	GET  /api/results?mode=          - Recent or paginated results
	GET  /api/stats                  - Totals and distribution
	GET  /api/suggestions            - Suggestions by votes
	POST /api/suggestions            - Suggest a figure (X-User-Identifier)
	POST /api/suggestions/{id}/vote  - Vote once (X-User-Identifier)
*/
package router

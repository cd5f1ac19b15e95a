// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# CORS, Security Headers, Locale

The router wraps the whole mux:

	handler := middleware.CORS(cfg.CORSOrigin)(
		middleware.SecureHeaders(middleware.Locale(mux)))

CORS echoes the request origin unless one is configured and allows the
Content-Type, Accept-Language and X-User-Identifier headers. SecureHeaders
sets X-Frame-Options, X-Content-Type-Options, Referrer-Policy and
X-DNS-Prefetch-Control. Locale picks "en" or "si" from ?lang= or
Accept-Language; read it back with LanguageFromContext.

# Rate Limiting

Write endpoints share a per-client token bucket:

	limiter := middleware.NewRateLimiter(cfg.WriteRate, cfg.WriteBurst).TrustForwarded(cfg.TrustProxy)
	mux.HandleFunc("POST /api/results", middleware.WithLogging(limiter.Limit(h.SaveResult)))
	go limiter.Run(ctx, time.Minute)

Clients are keyed on the socket address. X-Forwarded-For is honored only
when TrustForwarded is on. Clients over budget get 429 Too Many Requests
with a Retry-After header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.SaveResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used as the rate limiter key.
*/
package middleware

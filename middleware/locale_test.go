// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocale(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		accept   string
		expected string
	}{
		{"default", "/api/questions", "", "en"},
		{"query param", "/api/questions?lang=si", "", "si"},
		{"query overrides header", "/api/questions?lang=en", "si-LK,si;q=0.9", "en"},
		{"accept language", "/api/questions", "si-LK,si;q=0.9,en;q=0.5", "si"},
		{"unsupported falls back", "/api/questions?lang=fr", "de-DE", "en"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			handler := Locale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LanguageFromContext(r.Context())
			}))

			req := httptest.NewRequest("GET", tc.url, nil)
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if got != tc.expected {
				t.Errorf("Expected language %q, got %q", tc.expected, got)
			}
			if w.Header().Get("Content-Language") != tc.expected {
				t.Errorf("Expected Content-Language %q, got %q", tc.expected, w.Header().Get("Content-Language"))
			}
		})
	}
}

func TestLanguageFromContext_Default(t *testing.T) {
	if got := LanguageFromContext(context.Background()); got != "en" {
		t.Errorf("Expected default 'en', got %q", got)
	}
}

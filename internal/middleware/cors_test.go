package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		preflight  bool
		wantStatus int
		wantOrigin string
	}{
		{"nothing configured", nil, "https://shop.example", http.MethodGet, false, http.StatusOK, ""},
		{"exact match", []string{"https://shop.example"}, "https://shop.example", http.MethodGet, false, http.StatusOK, "https://shop.example"},
		{"case insensitive", []string{"HTTPS://SHOP.EXAMPLE"}, "https://shop.example", http.MethodPost, false, http.StatusOK, "https://shop.example"},
		{"other origin served bare", []string{"https://shop.example"}, "https://evil.example", http.MethodGet, false, http.StatusOK, ""},
		{"preflight allowed", []string{"https://shop.example"}, "https://shop.example", http.MethodOptions, true, http.StatusNoContent, "https://shop.example"},
		{"preflight denied", []string{"https://shop.example"}, "https://evil.example", http.MethodOptions, true, http.StatusForbidden, ""},
		{"subdomain pattern", []string{"*.shop.example"}, "https://api.shop.example", http.MethodGet, false, http.StatusOK, "https://api.shop.example"},
		{"pattern skips apex", []string{"*.shop.example"}, "https://shop.example", http.MethodGet, false, http.StatusOK, ""},
		{"pattern skips lookalike", []string{"*.shop.example"}, "https://evilshop.example", http.MethodGet, false, http.StatusOK, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultCORSConfig()
			cfg.AllowedOrigins = tt.allowed
			handler := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/products", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if rec.Header().Get("Access-Control-Allow-Credentials") != "" {
				t.Error("credentials must never be allowed")
			}
		})
	}
}

func TestCORS_PreflightHeaders(t *testing.T) {
	t.Parallel()

	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"https://shop.example"}
	handler := CORS(cfg)(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/cart", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	want := map[string]string{
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, X-Request-ID, Accept, Accept-Language",
		"Access-Control-Max-Age":       "86400",
		"Vary":                         "Origin",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}

func TestCORS_NoOriginPassesThrough(t *testing.T) {
	t.Parallel()

	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"https://shop.example"}
	handler := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", rec.Code)
	}
	if rec.Header().Get("Vary") != "" {
		t.Error("same-origin requests should not get CORS headers")
	}
}

package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SecurityConfig controls the response hardening headers.
type SecurityConfig struct {
	// IsDevelopment disables HSTS.
	IsDevelopment bool
	// PublicPrefixes lists path prefixes whose GET responses may be cached
	// by clients for PublicMaxAge. The catalog is the only such surface.
	PublicPrefixes []string
	PublicMaxAge   time.Duration
}

var baseSecurityHeaders = [...][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
}

// Security sets hardening headers on every response. Carts, users and
// orders are never cacheable; catalog reads under PublicPrefixes are.
func Security(cfg SecurityConfig) func(http.Handler) http.Handler {
	publicCache := ""
	if cfg.PublicMaxAge > 0 {
		publicCache = "public, max-age=" + strconv.Itoa(int(cfg.PublicMaxAge.Seconds()))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range baseSecurityHeaders {
				h.Set(kv[0], kv[1])
			}
			if !cfg.IsDevelopment {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			cacheControl := "no-store"
			if publicCache != "" && r.Method == http.MethodGet && hasAnyPrefix(r.URL.Path, cfg.PublicPrefixes) {
				cacheControl = publicCache
			}
			h.Set("Cache-Control", cacheControl)

			next.ServeHTTP(w, r)
		})
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}

// MaxBodySize rejects bodies that declare a Content-Length above maxBytes
// and caps the rest with http.MaxBytesReader, so oversized chunked bodies
// fail while decoding.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}
			if r.ContentLength > maxBytes {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write([]byte(`{"error":"Request body too large","code":"PAYLOAD_TOO_LARGE"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

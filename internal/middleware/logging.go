package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger emits one access record per request and stores a logger tagged
// with the request ID in the context for downstream middleware. Successful
// hits on quietPaths (probes, scrapes) are logged at debug level.
// Request bodies are never logged; they carry passwords.
func Logger(logger *slog.Logger, quietPaths ...string) func(http.Handler) http.Handler {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger
			if id := RequestIDFrom(r.Context()); id != "" {
				reqLogger = logger.With(slog.String("request_id", id))
			}
			ctx := context.WithValue(r.Context(), loggerCtxKey, reqLogger)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status_code", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.UserAgent()),
			}
			if rctx := chi.RouteContext(ctx); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					attrs = append(attrs, slog.String("route", pattern))
				}
			}

			reqLogger.LogAttrs(ctx, accessLevel(status, r.URL.Path, quiet), "http request", attrs...)
		})
	}
}

func accessLevel(status int, path string, quiet map[string]struct{}) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	if _, ok := quiet[path]; ok {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// LoggerFrom returns the request-scoped logger installed by Logger. Outside
// that middleware it returns fallback, tagged with the request ID if one is
// present.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return l
	}
	if id := RequestIDFrom(ctx); id != "" {
		return fallback.With(slog.String("request_id", id))
	}
	return fallback
}

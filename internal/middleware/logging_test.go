package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// TestLogging_NoBodyLogged ensures passwords sent in request bodies never reach the logs.
func TestLogging_NoBodyLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Logger(logger)(handler)

	body := `{"username_or_email":"alice","password":"hunter2-super-secret"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	logOutput := buf.String()
	if strings.Contains(logOutput, "hunter2-super-secret") {
		t.Error("Log output contains the request password")
	}
	if !strings.Contains(logOutput, `"path":"/login"`) {
		t.Errorf("expected path to be logged, got %s", logOutput)
	}
}

// TestLogging_RequiredFields verifies the fields every access log record carries.
func TestLogging_RequiredFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	wrapped := RequestID(Logger(logger)(handler))

	req := httptest.NewRequest("POST", "/cart", nil)
	req.Header.Set("User-Agent", "TestBrowser/2.0")
	req.Header.Set(RequestIDHeader, "req-123")

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	logOutput := buf.String()

	expectedFields := []string{
		`"request_id":"req-123"`,
		`"method":"POST"`,
		`"path":"/cart"`,
		`"status_code":201`,
		`"bytes":5`,
		`"user_agent":"TestBrowser/2.0"`,
	}

	for _, field := range expectedFields {
		if !strings.Contains(logOutput, field) {
			t.Errorf("Expected log field %s not found in output", field)
		}
	}
}

// TestLogging_RoutePattern verifies chi route patterns are logged.
func TestLogging_RoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(Logger(logger))
	r.Get("/cart/{userId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart/42", nil))

	if !strings.Contains(buf.String(), `"route":"/cart/{userId}"`) {
		t.Errorf("route pattern not logged: %s", buf.String())
	}
}

// TestLogging_ErrorStatusLevel verifies error statuses are logged at error level.
func TestLogging_ErrorStatusLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantLevel  string
	}{
		{"success", http.StatusOK, "INFO"},
		{"created", http.StatusCreated, "INFO"},
		{"bad request", http.StatusBadRequest, "WARN"},
		{"unauthorized", http.StatusUnauthorized, "WARN"},
		{"not found", http.StatusNotFound, "WARN"},
		{"internal error", http.StatusInternalServerError, "ERROR"},
		{"bad gateway", http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			loggingMiddleware := Logger(logger)
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})

			wrapped := loggingMiddleware(handler)

			req := httptest.NewRequest("GET", "/test", nil)
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			logOutput := buf.String()

			// Check log level
			if !strings.Contains(logOutput, `"level":"`+tt.wantLevel+`"`) {
				t.Errorf("Expected log level %s for status %d, got output: %s", tt.wantLevel, tt.statusCode, logOutput)
			}
		})
	}
}

func TestLogging_QuietPathsLogAtDebug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{"probe success", "/healthz", http.StatusOK, "DEBUG"},
		{"probe failure", "/readyz", http.StatusServiceUnavailable, "ERROR"},
		{"regular path", "/products", http.StatusOK, "INFO"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			handler := Logger(logger, "/healthz", "/readyz")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if !strings.Contains(buf.String(), `"level":"`+tt.wantLevel+`"`) {
				t.Errorf("want level %s, got %s", tt.wantLevel, buf.String())
			}
		})
	}
}

func TestLogging_ImplicitStatusIsOK(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stats", nil))

	if !strings.Contains(buf.String(), `"status_code":200`) {
		t.Errorf("implicit status not logged as 200: %s", buf.String())
	}
}

func TestLoggerFrom(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := RequestID(Logger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		LoggerFrom(r.Context(), slog.New(slog.NewJSONHandler(io.Discard, nil))).Info("inside handler")
	})))

	req := httptest.NewRequest(http.MethodGet, "/cart/1", nil)
	req.Header.Set(RequestIDHeader, "scoped-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "inside handler") {
			found = true
			if !strings.Contains(line, `"request_id":"scoped-1"`) {
				t.Errorf("scoped logger lost request ID: %s", line)
			}
		}
	}
	if !found {
		t.Errorf("handler record not written through scoped logger: %s", buf.String())
	}
}

func TestLoggerFrom_Fallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&buf, nil))

	LoggerFrom(context.Background(), fallback).Info("plain")
	LoggerFrom(WithRequestID(context.Background(), "bg-7"), fallback).Info("tagged")

	out := buf.String()
	if strings.Count(out, `"request_id"`) != 1 || !strings.Contains(out, `"request_id":"bg-7"`) {
		t.Errorf("unexpected fallback output: %s", out)
	}
}

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"replypilot/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type noopReplyHandler struct{}

func (noopReplyHandler) GenerateReply(c *gin.Context) {
	c.Status(http.StatusOK)
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	srv, err := New(&mockLogger{}, Config{
		Logger:       &mockLogger{},
		Port:         8080,
		Mode:         gin.TestMode,
		Environment:  model.EnvironmentDevelopment,
		ReplyHandler: noopReplyHandler{},
		ProviderStatus: map[string]bool{
			"groq":   true,
			"gemini": false,
			"openai": false,
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}
	return srv
}

func TestNew_RequiresLogger(t *testing.T) {
	_, err := New(nil, Config{Port: 8080, Mode: gin.TestMode})
	if err == nil {
		t.Fatal("expected error for missing logger")
	}
}

func TestNew_RequiresPort(t *testing.T) {
	_, err := New(&mockLogger{}, Config{Mode: gin.TestMode})
	if err == nil {
		t.Fatal("expected error for missing port")
	}
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "healthy" || body["service"] != ServiceName {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestStatusCheck_ReportsProviderAvailability(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["groqConfigured"] != true {
		t.Errorf("expected groqConfigured=true, got %v", body["groqConfigured"])
	}
	if body["geminiConfigured"] != false {
		t.Errorf("expected geminiConfigured=false, got %v", body["geminiConfigured"])
	}
}

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}
}

func TestRequestID_EchoedWhenPresent(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("expected echoed request ID, got %q", got)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-reply", nil)
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS headers on preflight response")
	}
}

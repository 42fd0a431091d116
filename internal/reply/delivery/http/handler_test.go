package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"replypilot/internal/language"
	"replypilot/internal/reply"
	replyHTTP "replypilot/internal/reply/delivery/http"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

type mockUseCase struct {
	output    reply.GenerateOutput
	err       error
	callCount int
}

func (m *mockUseCase) Generate(ctx context.Context, input reply.GenerateInput) (reply.GenerateOutput, error) {
	m.callCount++
	return m.output, m.err
}

type mockTracker struct {
	allow    bool
	recorded int
}

func (m *mockTracker) Record(caller string)    { m.recorded++ }
func (m *mockTracker) Count(caller string) int { return m.recorded }
func (m *mockTracker) Allow(caller string) bool {
	return m.allow
}

// ── Helpers ────────────────────────────────────────────────────────────────

func newTestRouter(uc reply.UseCase, tracker *mockTracker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := replyHTTP.New(&mockLogger{}, uc, tracker)
	replyHTTP.MapRoutes(r.Group("/api"), h)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestGenerateReply_Success(t *testing.T) {
	uc := &mockUseCase{output: reply.GenerateOutput{
		Reply:    "Salamat po sa order!",
		Engine:   "gemini",
		Language: language.Taglish,
	}}
	w := postJSON(t, newTestRouter(uc, &mockTracker{allow: true}), "/api/generate-reply", gin.H{
		"reviewText": "ang bilis ng delivery po",
		"tone":       "friendly",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp["reply"] != "Salamat po sa order!" || resp["engine"] != "gemini" || resp["language"] != "taglish" {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestGenerateReply_MissingReviewText(t *testing.T) {
	uc := &mockUseCase{}
	w := postJSON(t, newTestRouter(uc, &mockTracker{allow: true}), "/api/generate-reply", gin.H{
		"tone": "friendly",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if uc.callCount != 0 {
		t.Errorf("use case must not be invoked without review text, got %d calls", uc.callCount)
	}
}

func TestGenerateReply_BlankReviewText(t *testing.T) {
	uc := &mockUseCase{}
	w := postJSON(t, newTestRouter(uc, &mockTracker{allow: true}), "/api/generate-reply", gin.H{
		"reviewText": "   ",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if uc.callCount != 0 {
		t.Errorf("use case must not be invoked for blank review text")
	}
}

func TestGenerateReply_RateLimited(t *testing.T) {
	uc := &mockUseCase{}
	w := postJSON(t, newTestRouter(uc, &mockTracker{allow: false}), "/api/generate-reply", gin.H{
		"reviewText": "great item",
	})

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if uc.callCount != 0 {
		t.Errorf("use case must not be invoked when rate limited")
	}
}

func TestGenerateReply_EmptyReplyMapsTo502(t *testing.T) {
	uc := &mockUseCase{err: reply.ErrEmptyReply}
	w := postJSON(t, newTestRouter(uc, &mockTracker{allow: true}), "/api/generate-reply", gin.H{
		"reviewText": "great item",
	})

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp["error"] == "" {
		t.Errorf("expected error message in body: %v", resp)
	}
}

func TestGenerateReply_LegacyAlias(t *testing.T) {
	uc := &mockUseCase{output: reply.GenerateOutput{
		Reply:    "Thank you!",
		Engine:   "groq",
		Language: language.English,
	}}
	w := postJSON(t, newTestRouter(uc, &mockTracker{allow: true}), "/api/replypilot", gin.H{
		"reviewText": "great item",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on legacy route, got %d", w.Code)
	}
}

package usecase

import (
	"context"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// mockEngine implements reply.Generator with scripted responses.
// Successive calls pop from the front of the script.
type mockEngine struct {
	calls  []engineCall
	script []engineResult
}

type engineCall struct {
	language string
	system   string
	user     string
}

type engineResult struct {
	text string
	path string
	err  error
}

func (m *mockEngine) Generate(ctx context.Context, language, system, user string) (string, string, error) {
	m.calls = append(m.calls, engineCall{language: language, system: system, user: user})
	if len(m.script) == 0 {
		return "", "", nil
	}
	next := m.script[0]
	m.script = m.script[1:]
	return next.text, next.path, next.err
}

// mockTracker implements usage.Tracker with plain counters.
type mockTracker struct {
	recorded map[string]int
	allow    bool
}

func newMockTracker() *mockTracker {
	return &mockTracker{recorded: make(map[string]int), allow: true}
}

func (m *mockTracker) Record(caller string) { m.recorded[caller]++ }
func (m *mockTracker) Count(caller string) int {
	return m.recorded[caller]
}
func (m *mockTracker) Allow(caller string) bool { return m.allow }

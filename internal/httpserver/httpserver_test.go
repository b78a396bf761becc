package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/chat"
	chatHTTP "timesheet-assistant/internal/chat/delivery/http"
	"timesheet-assistant/internal/httpserver"
	"timesheet-assistant/internal/orchestrator"
	reportUC "timesheet-assistant/internal/report/usecase"
	"timesheet-assistant/internal/router"
	"timesheet-assistant/internal/timesheet/repository/memory"
	"timesheet-assistant/internal/timesheet/seed"
	timesheetUC "timesheet-assistant/internal/timesheet/usecase"
	"timesheet-assistant/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newChatHandler(t *testing.T) chatHTTP.Handler {
	t.Helper()
	ctx := context.Background()
	l := &mockLogger{}

	r := memory.New(l)
	if err := seed.Load(ctx, r); err != nil {
		t.Fatalf("seed.Load: %v", err)
	}
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	p = p.WithClock(func() time.Time { return time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC) })

	rt := router.New(p, l)
	rp := reportUC.New(r, p, reportUC.Config{}, l)
	orch, err := orchestrator.New(rt, timesheetUC.New(r, p, timesheetUC.Config{}, l), rp, orchestrator.Config{}, l)
	if err != nil {
		t.Fatalf("orchestrator.New: %v", err)
	}
	return chatHTTP.New(l, orch, rt, rp, chat.NewExportStore(8, time.Minute), p, chatHTTP.Config{UserID: 1, UserName: "Daniel"})
}

func newServer(t *testing.T) *httpserver.HTTPServer {
	t.Helper()
	srv, err := httpserver.New(&mockLogger{}, httpserver.Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		ChatHandler: newChatHandler(t),
	})
	if err != nil {
		t.Fatalf("httpserver.New: %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  httpserver.Config
		want string
	}{
		{name: "missing port", cfg: httpserver.Config{Mode: gin.TestMode, ChatHandler: newChatHandler(t)}, want: "port is required"},
		{name: "missing chat handler", cfg: httpserver.Config{Mode: gin.TestMode, Port: 8080}, want: "chat handler is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := httpserver.New(&mockLogger{}, tc.cfg)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected %q, got %v", tc.want, err)
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("expected a request id header")
			}

			var body struct {
				Data map[string]any `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Data["service"] != httpserver.ServiceName {
				t.Errorf("unexpected service %v", body.Data["service"])
			}
		})
	}
}

func TestDomainRoutes(t *testing.T) {
	srv := newServer(t)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/summary?year=2025&month=11", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from calendar summary, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader("{}")))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected the telegram webhook to be unmounted, got %d", w.Code)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv, err := httpserver.New(&mockLogger{}, httpserver.Config{
		Port:        18089,
		Mode:        gin.TestMode,
		ChatHandler: newChatHandler(t),
	})
	if err != nil {
		t.Fatalf("httpserver.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

package app_test

import (
	"context"
	"testing"

	"timesheet-assistant/config"
	"timesheet-assistant/internal/app"
	repo "timesheet-assistant/internal/timesheet/repository"
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

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		seed   bool
		want   int
	}{
		{name: "memory seeded", driver: "memory", seed: true, want: 2},
		{name: "sqlite seeded", driver: "sqlite", seed: true, want: 2},
		{name: "memory empty", driver: "memory", seed: false, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				Timesheet: config.TimesheetConfig{Timezone: "UTC", UserID: 1, CostCenter: "IT", HoursPerDay: 8, SeedDemoData: tc.seed},
				Store:     config.StoreConfig{Driver: tc.driver, DSN: ":memory:"},
			}

			a, err := app.Build(context.Background(), cfg, &mockLogger{})
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			defer a.Close()

			if a.Orchestrator == nil || a.Router == nil || a.Report == nil {
				t.Fatal("expected every component to be wired")
			}

			holidays, err := a.Repo.ListEntries(context.Background(), repo.ListEntriesOptions{HolidaysOnly: true})
			if err != nil {
				t.Fatalf("ListEntries: %v", err)
			}
			if len(holidays) != tc.want {
				t.Errorf("expected %d holidays, got %d", tc.want, len(holidays))
			}
		})
	}
}

func TestBuild_InvalidTimezone(t *testing.T) {
	cfg := &config.Config{
		Timesheet: config.TimesheetConfig{Timezone: "Nowhere/Land", HoursPerDay: 8},
		Store:     config.StoreConfig{Driver: "memory"},
	}
	if _, err := app.Build(context.Background(), cfg, &mockLogger{}); err == nil {
		t.Fatal("expected an error for an unknown timezone")
	}
}

package sqlite_test

import (
	"context"
	"errors"
	"testing"

	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/internal/timesheet/repository/sqlite"
	"timesheet-assistant/internal/timesheet/seed"
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

func openSeeded(t *testing.T) repo.Repository {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r, err := sqlite.New(ctx, db, &mockLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := seed.Load(ctx, r); err != nil {
		t.Fatalf("seed.Load: %v", err)
	}
	return r
}

func TestInsertAndFind(t *testing.T) {
	ctx := context.Background()
	r := openSeeded(t)

	e, err := r.InsertEntry(ctx, repo.InsertEntryOptions{
		UserID: 1, UserName: "Daniel", CostCenter: "IT", Project: "Alfa",
		TaskName: "Diseño Gráfico", StartDate: "2025-11-18", Hours: 2.5, Detail: "Diseño Gráfico - Alfa",
	})
	if err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}
	if e.LegacyID != 30 {
		t.Errorf("LegacyID = %d, want 30", e.LegacyID)
	}

	got, err := r.FindEntry(ctx, repo.FindEntryOptions{UserID: 1, TaskName: "DISEÑO GRÁFICO", Project: "alfa", Date: "2025-11-18"})
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}
	if got.ID != e.ID || got.Hours != 2.5 {
		t.Errorf("FindEntry = %+v, want %+v", got, e)
	}
}

func TestListEntries(t *testing.T) {
	ctx := context.Background()
	r := openSeeded(t)

	tests := []struct {
		name string
		opt  repo.ListEntriesOptions
		want int
	}{
		{"all", repo.ListEntriesOptions{}, 34},
		{"holidays only", repo.ListEntriesOptions{HolidaysOnly: true}, 2},
		{"users and range", repo.ListEntriesOptions{UserIDs: []int{5, 6}, From: "2025-11-17", To: "2025-11-23", PositiveHours: true}, 6},
		{"date set", repo.ListEntriesOptions{Dates: []string{"2025-11-10"}, ExcludeHolidays: true}, 2},
		{"project unicode fold", repo.ListEntriesOptions{Project: "ADMINISTRACIÓN"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ListEntries(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListEntries: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestUpdateDelete(t *testing.T) {
	ctx := context.Background()
	r := openSeeded(t)

	e, err := r.FindEntry(ctx, repo.FindEntryOptions{TaskName: "Testing/Pruebas", Project: "Alfa", Date: "2025-11-10"})
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}

	updated, err := r.UpdateEntryHours(ctx, e.ID, 3)
	if err != nil {
		t.Fatalf("UpdateEntryHours: %v", err)
	}
	if updated.Hours != 3 || updated.LegacyID != 2 {
		t.Errorf("updated = %+v", updated)
	}

	if err := r.DeleteEntry(ctx, e.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if _, err := r.FindEntry(ctx, repo.FindEntryOptions{TaskName: "Testing/Pruebas", Project: "Alfa", Date: "2025-11-10"}); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := r.DeleteEntry(ctx, e.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestHolidaysAndAssignments(t *testing.T) {
	ctx := context.Background()
	r := openSeeded(t)

	h, err := r.FindHoliday(ctx, "2025-11-24")
	if err != nil {
		t.Fatalf("FindHoliday: %v", err)
	}
	if h.TaskName != "Día de la Soberanía Nacional" {
		t.Errorf("TaskName = %q", h.TaskName)
	}

	team, err := r.ListAssignments(ctx, repo.ListAssignmentsOptions{LeaderUserIDs: []int{1}})
	if err != nil {
		t.Fatalf("ListAssignments: %v", err)
	}
	if len(team) != 2 || team[0].UserName != "María" || team[0].LeaderUserID == nil || *team[0].LeaderUserID != 1 {
		t.Errorf("team = %+v", team)
	}

	leaders, _ := r.ListAssignments(ctx, repo.ListAssignmentsOptions{UserName: "juan"})
	if len(leaders) != 1 || leaders[0].LeaderUserID != nil {
		t.Errorf("leaders = %+v", leaders)
	}
}

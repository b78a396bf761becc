package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/internal/timesheet/repository/memory"
	"timesheet-assistant/internal/timesheet/seed"
	"timesheet-assistant/internal/timesheet/usecase"
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

type fixture struct {
	uc   timesheet.UseCase
	repo repo.Repository
	view *model.StaticView
	sc   model.Scope
}

// newFixture seeds the demo data with "today" pinned to now.
func newFixture(t *testing.T, now time.Time) fixture {
	t.Helper()
	ctx := context.Background()

	r := memory.New(&mockLogger{})
	if err := seed.Load(ctx, r); err != nil {
		t.Fatalf("seed.Load: %v", err)
	}
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	p = p.WithClock(func() time.Time { return now })

	view := &model.StaticView{Year: 2025, Month: time.November}
	return fixture{
		uc:   usecase.New(r, p, usecase.Config{DefaultUserID: 1, CostCenter: "IT"}, &mockLogger{}),
		repo: r,
		view: view,
		sc:   model.Scope{SessionID: "test", UserID: 1, View: view},
	}
}

// Thursday, November 13, 2025.
var thursday = time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)

func mustConfirm(t *testing.T, f fixture, out model.Outcome) model.Reply {
	t.Helper()
	if out.Confirmation == nil {
		t.Fatalf("expected a confirmation, got %+v", out.Reply)
	}
	reply, err := out.Confirmation.OnConfirm(context.Background(), f.sc)
	if err != nil {
		t.Fatalf("OnConfirm: %v", err)
	}
	return reply
}

func userMessage(t *testing.T, err error, kind error) string {
	t.Helper()
	var ue *model.UserError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *model.UserError, got %v", err)
	}
	if !errors.Is(err, kind) {
		t.Errorf("error kind = %v, want %v", ue.Kind, kind)
	}
	return ue.Message
}

func TestLoadDaily(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, thursday)

	out, err := f.uc.LoadDaily(ctx, f.sc, timesheet.LoadDailyInput{
		Hours: 8, TaskName: "Desarrollo Web", Project: "Alfa", DateRef: "hoy", Date: "2025-11-13",
	})
	if err != nil {
		t.Fatalf("LoadDaily: %v", err)
	}
	wantPrompt := `¿Confirmás cargar 8h de "Desarrollo Web" al proyecto "Alfa" para hoy (13 de Noviembre)?`
	if out.Confirmation.Prompt != wantPrompt {
		t.Errorf("prompt = %q, want %q", out.Confirmation.Prompt, wantPrompt)
	}

	// Nothing is written before confirming.
	if _, err := f.repo.FindEntry(ctx, repo.FindEntryOptions{UserID: 1, TaskName: "Desarrollo Web", Project: "Alfa", Date: "2025-11-13"}); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("entry written before confirmation: %v", err)
	}

	reply := mustConfirm(t, f, out)
	want := `✅ Perfecto! He cargado 8h de "Desarrollo Web" al proyecto "Alfa" para hoy (13 de Noviembre).`
	if len(reply.Messages) != 1 || reply.Messages[0] != want {
		t.Errorf("reply = %v", reply.Messages)
	}

	e, err := f.repo.FindEntry(ctx, repo.FindEntryOptions{UserID: 1, TaskName: "desarrollo web", Project: "alfa", Date: "2025-11-13"})
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}
	if e.CostCenter != "IT" || e.UserName != "Daniel" || e.Detail != "Desarrollo Web - Alfa" || e.EndDate != e.StartDate {
		t.Errorf("entry = %+v", e)
	}
	if !f.view.CalendarRefreshed {
		t.Error("expected calendar refresh")
	}
}

func TestLoadDaily_Cancel(t *testing.T) {
	f := newFixture(t, thursday)
	out, err := f.uc.LoadDaily(context.Background(), f.sc, timesheet.LoadDailyInput{
		Hours: 4, TaskName: "QA", Project: "Alfa", DateRef: "ayer", Date: "2025-11-12",
	})
	if err != nil {
		t.Fatalf("LoadDaily: %v", err)
	}
	reply := out.Confirmation.OnCancel(context.Background(), f.sc)
	if reply.Messages[0] != "Operación cancelada. ¿Hay algo más en lo que pueda ayudarte?" {
		t.Errorf("cancel reply = %v", reply.Messages)
	}
	entries, _ := f.repo.ListEntries(context.Background(), repo.ListEntriesOptions{TaskName: "QA"})
	if len(entries) != 0 {
		t.Errorf("cancel wrote %d entries", len(entries))
	}
}

func TestLoadDaily_HolidayRejectedBeforeConfirmation(t *testing.T) {
	f := newFixture(t, thursday)
	out, err := f.uc.LoadDaily(context.Background(), f.sc, timesheet.LoadDailyInput{
		Hours: 8, TaskName: "Desarrollo", Project: "Alfa", DateRef: "el 24 de noviembre", Date: "2025-11-24",
	})
	if out.Confirmation != nil {
		t.Fatal("holiday conflict must not reach confirmation")
	}
	msg := userMessage(t, err, timesheet.ErrHolidayConflict)
	want := `❌ No se puede cargar horas en 24 de Noviembre porque es un feriado: "Día de la Soberanía Nacional".`
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestLoadDaily_InvalidHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  string
	}{
		{"zero", 0, `❌ La cantidad de horas debe ser mayor a 0 y como máximo 24 (recibí 0h). Para quitar horas usá "eliminá".`},
		{"over a day", 25, `❌ La cantidad de horas debe ser mayor a 0 y como máximo 24 (recibí 25h). Para quitar horas usá "eliminá".`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, thursday)
			_, err := f.uc.LoadDaily(context.Background(), f.sc, timesheet.LoadDailyInput{
				Hours: tt.hours, TaskName: "QA", Project: "Alfa", DateRef: "hoy", Date: "2025-11-13",
			})
			if msg := userMessage(t, err, timesheet.ErrInvalidHours); msg != tt.want {
				t.Errorf("message = %q, want %q", msg, tt.want)
			}
		})
	}
}

func TestLoadBlock_SkipsHolidays(t *testing.T) {
	ctx := context.Background()
	// Thursday of the week holding the Friday 21 holiday.
	f := newFixture(t, time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC))

	out, err := f.uc.LoadBlock(ctx, f.sc, timesheet.LoadBlockInput{
		Hours: 8, TaskName: "Soporte", Project: "Alfa", StartDay: "lunes", EndDay: "viernes",
		Dates: []string{"2025-11-17", "2025-11-18", "2025-11-19", "2025-11-20", "2025-11-21"},
	})
	if err != nil {
		t.Fatalf("LoadBlock: %v", err)
	}
	wantPrompt := `¿Confirmás cargar 8h de "Soporte" al proyecto "Alfa" de Lunes a Viernes (5 días)?`
	if out.Confirmation.Prompt != wantPrompt {
		t.Errorf("prompt = %q", out.Confirmation.Prompt)
	}

	reply := mustConfirm(t, f, out)
	want := `✅ Perfecto! He cargado 8h de "Soporte" al proyecto "Alfa" para 4 días. Se omitieron 1 día por ser feriado.`
	if reply.Messages[0] != want {
		t.Errorf("reply = %q, want %q", reply.Messages[0], want)
	}

	entries, _ := f.repo.ListEntries(ctx, repo.ListEntriesOptions{TaskName: "Soporte"})
	if len(entries) != 4 {
		t.Errorf("inserted %d entries, want 4", len(entries))
	}
}

func TestLoadBlock_NoHolidays(t *testing.T) {
	f := newFixture(t, thursday)
	out, err := f.uc.LoadBlock(context.Background(), f.sc, timesheet.LoadBlockInput{
		Hours: 2.5, TaskName: "Docs", Project: "Alfa", StartDay: "martes", EndDay: "jueves",
		Dates: []string{"2025-11-11", "2025-11-12", "2025-11-13"},
	})
	if err != nil {
		t.Fatalf("LoadBlock: %v", err)
	}
	reply := mustConfirm(t, f, out)
	want := `✅ Perfecto! He cargado 2.5h de "Docs" al proyecto "Alfa" para 3 días (de Martes a Jueves).`
	if reply.Messages[0] != want {
		t.Errorf("reply = %q, want %q", reply.Messages[0], want)
	}
}

func TestEditHours(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, thursday)

	out, err := f.uc.EditHours(ctx, f.sc, timesheet.EditHoursInput{
		TaskName: "planificación", Project: "Alfa", DateRef: "10 de noviembre", Date: "2025-11-10", Hours: 6,
	})
	if err != nil {
		t.Fatalf("EditHours: %v", err)
	}
	wantPrompt := `¿Confirmás cambiar las horas de la tarea "planificación" del proyecto "Alfa" de 10 de noviembre (10 de Noviembre) de 4h a 6h?`
	if out.Confirmation.Prompt != wantPrompt {
		t.Errorf("prompt = %q", out.Confirmation.Prompt)
	}
	mustConfirm(t, f, out)

	e, err := f.repo.FindEntry(ctx, repo.FindEntryOptions{UserID: 1, TaskName: "Planificación", Project: "Alfa", Date: "2025-11-10"})
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}
	if e.Hours != 6 {
		t.Errorf("Hours = %v, want 6", e.Hours)
	}
}

func TestEditHours_NotFound(t *testing.T) {
	f := newFixture(t, thursday)
	// Juan's entry is not Daniel's to edit.
	_, err := f.uc.EditHours(context.Background(), f.sc, timesheet.EditHoursInput{
		TaskName: "Análisis", Project: "Alfa", DateRef: "el martes", Date: "2025-11-11", Hours: 2,
	})
	msg := userMessage(t, err, timesheet.ErrTaskNotFound)
	want := `❌ No encontré la tarea "Análisis" en el proyecto "Alfa" para el martes (11 de Noviembre).`
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestDeleteSpecific(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, thursday)

	out, err := f.uc.DeleteSpecific(ctx, f.sc, timesheet.DeleteSpecificInput{
		TaskName: "Testing/Pruebas", Project: "Alfa", DateRef: "lunes", Date: "2025-11-10",
	})
	if err != nil {
		t.Fatalf("DeleteSpecific: %v", err)
	}
	reply := mustConfirm(t, f, out)
	want := `✅ Perfecto! He eliminado las horas de la tarea "Testing/Pruebas" del proyecto "Alfa" de lunes (10 de Noviembre).`
	if reply.Messages[0] != want {
		t.Errorf("reply = %q", reply.Messages[0])
	}
	if _, err := f.repo.FindEntry(ctx, repo.FindEntryOptions{TaskName: "Testing/Pruebas", Project: "Alfa", Date: "2025-11-10"}); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("entry still present: %v", err)
	}
}

func TestDeleteBulk(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, thursday)
	week := datemath.DatesBetween(datemath.Range{Start: "2025-11-10", End: "2025-11-16"})

	out, err := f.uc.DeleteBulk(ctx, f.sc, timesheet.DeleteBulkInput{Period: "esta semana", Dates: week})
	if err != nil {
		t.Fatalf("DeleteBulk: %v", err)
	}
	if want := `¿Confirmás eliminar todas las horas de todas las tareas de esta semana? (2 tareas)`; out.Confirmation.Prompt != want {
		t.Errorf("prompt = %q", out.Confirmation.Prompt)
	}
	reply := mustConfirm(t, f, out)
	if want := `✅ Perfecto! He eliminado todas las horas de todas las tareas de esta semana (2 tareas eliminadas).`; reply.Messages[0] != want {
		t.Errorf("reply = %q", reply.Messages[0])
	}

	// Other users' rows in the same week survive.
	left, _ := f.repo.ListEntries(ctx, repo.ListEntriesOptions{Dates: week, PositiveHours: true})
	if len(left) != 12 {
		t.Errorf("left %d entries, want 12", len(left))
	}

	_, err = f.uc.DeleteBulk(ctx, f.sc, timesheet.DeleteBulkInput{Period: "esta semana", Dates: week})
	if msg := userMessage(t, err, timesheet.ErrNoEntriesFound); msg != `❌ No encontré horas cargadas para esta semana.` {
		t.Errorf("message = %q", msg)
	}
}

func TestDuplicateLastWeek(t *testing.T) {
	ctx := context.Background()
	// Thursday Nov 20: last week is Nov 10-16, this week holds the Friday 21 holiday.
	f := newFixture(t, time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC))

	// A Friday source lands on the holiday and is skipped.
	if _, err := f.repo.InsertEntry(ctx, repo.InsertEntryOptions{
		UserID: 1, UserName: "Daniel", CostCenter: "IT", Project: "Alfa",
		TaskName: "Desarrollo", StartDate: "2025-11-14", Hours: 8,
	}); err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}
	// An existing target gets overwritten.
	if _, err := f.repo.InsertEntry(ctx, repo.InsertEntryOptions{
		UserID: 1, UserName: "Daniel", CostCenter: "IT", Project: "Alfa",
		TaskName: "Planificación", StartDate: "2025-11-17", Hours: 1,
	}); err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}

	out, err := f.uc.DuplicateLastWeek(ctx, f.sc, timesheet.DuplicateLastWeekInput{Project: "alfa"})
	if err != nil {
		t.Fatalf("DuplicateLastWeek: %v", err)
	}
	wantPrompt := `¿Confirmás copiar 3 entradas del proyecto "alfa" de la semana pasada (desde 10 de Noviembre) a esta semana (desde 17 de Noviembre)?`
	if out.Confirmation.Prompt != wantPrompt {
		t.Errorf("prompt = %q", out.Confirmation.Prompt)
	}

	reply := mustConfirm(t, f, out)
	want := `✅ Listo. Copié 2 entradas de la semana pasada para el proyecto "alfa" a esta semana. Se omitieron 1 día por ser feriado.`
	if reply.Messages[0] != want {
		t.Errorf("reply = %q, want %q", reply.Messages[0], want)
	}

	monday, _ := f.repo.ListEntries(ctx, repo.ListEntriesOptions{UserIDs: []int{1}, Dates: []string{"2025-11-17"}})
	if len(monday) != 2 {
		t.Fatalf("Monday entries = %d, want 2", len(monday))
	}
	for _, e := range monday {
		if e.Hours != 4 {
			t.Errorf("%s hours = %v, want 4", e.TaskName, e.Hours)
		}
	}
}

func TestDuplicateLastWeek_RunTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC))

	targetWeek := func() map[string]float64 {
		t.Helper()
		entries, err := f.repo.ListEntries(ctx, repo.ListEntriesOptions{
			UserIDs: []int{1}, From: "2025-11-17", To: "2025-11-23", ExcludeHolidays: true,
		})
		if err != nil {
			t.Fatalf("ListEntries: %v", err)
		}
		hours := make(map[string]float64, len(entries))
		for _, e := range entries {
			key := e.StartDate + "|" + e.Project + "|" + e.TaskName
			if _, dup := hours[key]; dup {
				t.Fatalf("duplicate row for %s", key)
			}
			hours[key] = e.Hours
		}
		return hours
	}

	run := func() {
		t.Helper()
		out, err := f.uc.DuplicateLastWeek(ctx, f.sc, timesheet.DuplicateLastWeekInput{Project: "Alfa"})
		if err != nil {
			t.Fatalf("DuplicateLastWeek: %v", err)
		}
		mustConfirm(t, f, out)
	}

	run()
	first := targetWeek()
	if len(first) == 0 {
		t.Fatal("expected the first run to fill the target week")
	}

	run()
	second := targetWeek()
	if len(second) != len(first) {
		t.Fatalf("entry count changed: %d then %d", len(first), len(second))
	}
	for key, h := range first {
		if second[key] != h {
			t.Errorf("%s hours = %v after second run, want %v", key, second[key], h)
		}
	}
}

func TestDuplicateLastWeek_Empty(t *testing.T) {
	f := newFixture(t, thursday)
	_, err := f.uc.DuplicateLastWeek(context.Background(), f.sc, timesheet.DuplicateLastWeekInput{Project: "Alfa"})
	if msg := userMessage(t, err, timesheet.ErrNoEntriesFound); msg != `❌ No encontré horas en la semana pasada para el proyecto "Alfa".` {
		t.Errorf("message = %q", msg)
	}
}

func TestFillRestOfMonth(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, thursday)

	out, err := f.uc.FillRestOfMonth(ctx, f.sc, timesheet.FillRestOfMonthInput{Project: "Alfa"})
	if err != nil {
		t.Fatalf("FillRestOfMonth: %v", err)
	}
	wantPrompt := `¿Confirmás completar el mes con 2 entradas del proyecto "Alfa" replicadas en las semanas restantes del mes?`
	if out.Confirmation.Prompt != wantPrompt {
		t.Errorf("prompt = %q", out.Confirmation.Prompt)
	}

	reply := mustConfirm(t, f, out)
	// Monday 17 gets both rows, Monday 24 is a holiday.
	want := `✅ Listo. Completé el mes con 2 entradas replicadas del proyecto "Alfa". Se omitieron 2 días por ser feriados.`
	if reply.Messages[0] != want {
		t.Errorf("reply = %q, want %q", reply.Messages[0], want)
	}

	// Running again never overwrites.
	out, err = f.uc.FillRestOfMonth(ctx, f.sc, timesheet.FillRestOfMonthInput{Project: "Alfa"})
	if err != nil {
		t.Fatalf("FillRestOfMonth: %v", err)
	}
	reply = mustConfirm(t, f, out)
	if !strings.Contains(reply.Messages[0], "con 0 entradas replicadas") {
		t.Errorf("second run reply = %q", reply.Messages[0])
	}
}

func TestFillRestOfMonth_NoWeeksLeft(t *testing.T) {
	// Thursday Nov 27: next Monday is December 1.
	f := newFixture(t, time.Date(2025, 11, 27, 9, 0, 0, 0, time.UTC))
	if _, err := f.repo.InsertEntry(context.Background(), repo.InsertEntryOptions{
		UserID: 1, Project: "Alfa", TaskName: "Cierre", StartDate: "2025-11-25", Hours: 8,
	}); err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}

	_, err := f.uc.FillRestOfMonth(context.Background(), f.sc, timesheet.FillRestOfMonthInput{Project: "Alfa"})
	if msg := userMessage(t, err, timesheet.ErrNoWeeksLeft); msg != "ℹ️ No quedan semanas completas en el mes para completar." {
		t.Errorf("message = %q", msg)
	}
}

func TestRefresh_SummaryOnlyOutsideDisplayedMonth(t *testing.T) {
	f := newFixture(t, thursday)
	out, err := f.uc.LoadDaily(context.Background(), f.sc, timesheet.LoadDailyInput{
		Hours: 8, TaskName: "Análisis", Project: "Alfa", DateRef: "3 de marzo", Date: "2025-03-03",
	})
	if err != nil {
		t.Fatalf("LoadDaily: %v", err)
	}
	mustConfirm(t, f, out)
	if f.view.CalendarRefreshed || !f.view.SummaryRefreshed {
		t.Errorf("refresh = calendar %v summary %v, want summary only", f.view.CalendarRefreshed, f.view.SummaryRefreshed)
	}
}

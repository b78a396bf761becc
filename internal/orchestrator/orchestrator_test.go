package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/orchestrator"
	reportUC "timesheet-assistant/internal/report/usecase"
	"timesheet-assistant/internal/router"
	repo "timesheet-assistant/internal/timesheet/repository"
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

// recorder is a model.Channel that keeps everything it is asked to show.
type recorder struct {
	messages []string
	prompts  []string
	files    []model.Export
	working  int
}

func (r *recorder) Emit(ctx context.Context, text string) error {
	r.messages = append(r.messages, text)
	return nil
}

func (r *recorder) Confirm(ctx context.Context, prompt string) error {
	r.prompts = append(r.prompts, prompt)
	return nil
}

func (r *recorder) SendFile(ctx context.Context, export model.Export) error {
	r.files = append(r.files, export)
	return nil
}

func (r *recorder) SignalWorking(ctx context.Context) error {
	r.working++
	return nil
}

func (r *recorder) last() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

type fixture struct {
	o    *orchestrator.Orchestrator
	repo repo.Repository
	sc   model.Scope
}

func newFixture(t *testing.T) fixture {
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
	// Thursday, November 13, 2025.
	p = p.WithClock(func() time.Time { return time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC) })

	o, err := orchestrator.New(
		router.New(p, l),
		timesheetUC.New(r, p, timesheetUC.Config{}, l),
		reportUC.New(r, p, reportUC.Config{}, l),
		orchestrator.Config{SessionCacheSize: 8},
		l,
	)
	if err != nil {
		t.Fatalf("orchestrator.New: %v", err)
	}

	sc := model.Scope{SessionID: "s1", UserID: 1, View: &model.StaticView{Year: 2025, Month: time.November}}
	return fixture{o: o, repo: r, sc: sc}
}

func TestHandleMessage_Help(t *testing.T) {
	f := newFixture(t)
	ch := &recorder{}

	if err := f.o.HandleMessage(context.Background(), f.sc, ch, "hola, ¿qué tal?"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if ch.working != 1 {
		t.Errorf("expected one working signal, got %d", ch.working)
	}
	if ch.last() != orchestrator.HelpText {
		t.Errorf("expected the help text, got %q", ch.last())
	}
}

func TestHandleMessage_ConfirmByText(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ch := &recorder{}

	if err := f.o.HandleMessage(ctx, f.sc, ch, "Cargá 8h de Desarrollo Web al proyecto Alfa hoy"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	want := `¿Confirmás cargar 8h de "Desarrollo Web" al proyecto "Alfa" para hoy (13 de Noviembre)?`
	if len(ch.prompts) != 1 || ch.prompts[0] != want {
		t.Fatalf("prompts = %v", ch.prompts)
	}
	if !f.o.Pending(f.sc.SessionID) {
		t.Fatal("expected a pending confirmation")
	}

	if err := f.o.HandleMessage(ctx, f.sc, ch, "Sí"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if f.o.Pending(f.sc.SessionID) {
		t.Error("confirmation still pending after answer")
	}
	if !strings.HasPrefix(ch.last(), "✅ Perfecto! He cargado 8h") {
		t.Errorf("last message = %q", ch.last())
	}

	got, err := f.repo.ListEntries(ctx, repo.ListEntriesOptions{UserIDs: []int{1}, Dates: []string{"2025-11-13"}})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(got) != 1 || got[0].TaskName != "Desarrollo Web" {
		t.Errorf("entries = %+v", got)
	}
}

func TestHandleMessage_PendingRejectsNewCommands(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ch := &recorder{}

	if err := f.o.HandleMessage(ctx, f.sc, ch, "Eliminá todas las horas de todas las tareas de esta semana"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if err := f.o.HandleMessage(ctx, f.sc, ch, "Cargá 8h de QA al proyecto Alfa hoy"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !strings.HasPrefix(ch.last(), "ℹ️") {
		t.Errorf("expected a reminder, got %q", ch.last())
	}
	if len(ch.prompts) != 1 {
		t.Errorf("the second command must not prompt, got %v", ch.prompts)
	}

	if err := f.o.HandleMessage(ctx, f.sc, ch, "no"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if ch.last() != "Operación cancelada. ¿Hay algo más en lo que pueda ayudarte?" {
		t.Errorf("last message = %q", ch.last())
	}

	// Nothing was deleted.
	got, err := f.repo.ListEntries(ctx, repo.ListEntriesOptions{UserIDs: []int{1}, PositiveHours: true})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected Daniel's 2 entries untouched, got %d", len(got))
	}
}

func TestHandleMessage_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ch := &recorder{}

	if err := f.o.HandleMessage(ctx, f.sc, ch, "Eliminá todas las horas de esta semana"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	other := f.sc
	other.SessionID = "s2"
	if f.o.Pending(other.SessionID) {
		t.Fatal("pending state leaked into another session")
	}
	if err := f.o.HandleMessage(ctx, other, ch, "Generame un reporte del proyecto Alfa"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(ch.prompts) != 2 {
		t.Errorf("expected two prompts, got %d", len(ch.prompts))
	}
}

func TestHandleMessage_UserError(t *testing.T) {
	f := newFixture(t)
	ch := &recorder{}

	err := f.o.HandleMessage(context.Background(), f.sc, ch,
		"Cambiá las horas de la tarea Inexistente de ayer en proyecto Alfa a 3h")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	want := `❌ No encontré la tarea "Inexistente" en el proyecto "Alfa" para ayer (12 de Noviembre).`
	if ch.last() != want {
		t.Errorf("last message = %q, want %q", ch.last(), want)
	}
	if f.o.Pending(f.sc.SessionID) {
		t.Error("an error must not leave a pending confirmation")
	}
}

func TestResolve_Export(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ch := &recorder{}

	if err := f.o.HandleMessage(ctx, f.sc, ch, "Generame un reporte del Equipo de Daniel"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if err := f.o.Resolve(ctx, f.sc, ch, true); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ch.last() != "✅ Archivo CSV generado y descargado." {
		t.Errorf("last message = %q", ch.last())
	}
	if len(ch.files) != 1 || ch.files[0].Filename != "reporte_equipo_Daniel.csv" {
		t.Errorf("files = %+v", ch.files)
	}

	if err := f.o.Resolve(ctx, f.sc, ch, true); !errors.Is(err, orchestrator.ErrNoPendingConfirmation) {
		t.Errorf("second Resolve: expected ErrNoPendingConfirmation, got %v", err)
	}
}

func TestReset_DropsPendingConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ch := &recorder{}

	if err := f.o.HandleMessage(ctx, f.sc, ch, "Cargá 2h de Soporte al proyecto Alfa hoy"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !f.o.Pending(f.sc.SessionID) {
		t.Fatal("expected a pending confirmation")
	}
	if !f.o.Reset(f.sc.SessionID) {
		t.Error("Reset should report an existing session")
	}
	if f.o.Pending(f.sc.SessionID) {
		t.Error("Reset must drop the pending confirmation")
	}
	if f.o.Reset("unknown") {
		t.Error("Reset of an unknown session should report false")
	}
}

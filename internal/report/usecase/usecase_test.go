package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/report"
	"timesheet-assistant/internal/report/usecase"
	"timesheet-assistant/internal/timesheet/repository/memory"
	"timesheet-assistant/internal/timesheet/seed"
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

// Thursday, November 13, 2025.
var thursday = time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)

const downloadDetail = "¿Querés descargar el detalle en Excel (CSV)?"

func newUseCase(t *testing.T) (report.UseCase, model.Scope) {
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
	p = p.WithClock(func() time.Time { return thursday })

	sc := model.Scope{SessionID: "test", UserID: 1, View: &model.StaticView{Year: 2025, Month: time.November}}
	return usecase.New(r, p, usecase.Config{DefaultUserID: 1, HoursPerDay: 8}, &mockLogger{}), sc
}

func prompt(t *testing.T, out model.Outcome) string {
	t.Helper()
	if out.Confirmation == nil {
		t.Fatalf("expected a download offer, got %+v", out.Reply)
	}
	return out.Confirmation.Prompt
}

func plain(t *testing.T, out model.Outcome) string {
	t.Helper()
	if out.Confirmation != nil {
		t.Fatalf("expected a plain reply, got prompt %q", out.Confirmation.Prompt)
	}
	if len(out.Reply.Messages) != 1 {
		t.Fatalf("expected one message, got %v", out.Reply.Messages)
	}
	return out.Reply.Messages[0]
}

func TestLeaderHours(t *testing.T) {
	uc, sc := newUseCase(t)

	out, err := uc.LeaderHours(context.Background(), sc, report.LeaderHoursInput{
		Names: []string{"juan", "María", "Pedro"}, Project: "alfa", Period: report.PeriodThisWeek,
	})
	if err != nil {
		t.Fatalf("LeaderHours: %v", err)
	}

	want := "Resumen de horas en proyecto \"alfa\" (esta semana, 10 de Noviembre al 16 de Noviembre):\n" +
		"• Juan: 26h\n• María: 32h\n• Pedro: 0h\nTotal: 58h\n\n" + downloadDetail
	if got := prompt(t, out); got != want {
		t.Errorf("prompt =\n%s\nwant\n%s", got, want)
	}
}

func TestLeaderHours_Export(t *testing.T) {
	uc, sc := newUseCase(t)

	out, err := uc.LeaderHours(context.Background(), sc, report.LeaderHoursInput{
		Names: []string{"Juan"}, Project: "Alfa", Period: report.PeriodThisWeek,
	})
	if err != nil {
		t.Fatalf("LeaderHours: %v", err)
	}
	reply, err := out.Confirmation.OnConfirm(context.Background(), sc)
	if err != nil {
		t.Fatalf("OnConfirm: %v", err)
	}
	if len(reply.Messages) != 1 || reply.Messages[0] != "✅ Archivo CSV generado y descargado." {
		t.Errorf("messages = %v", reply.Messages)
	}
	if reply.Export == nil {
		t.Fatal("expected an export")
	}
	if reply.Export.Filename != "horas_Alfa_2025-11-10_a_2025-11-16.csv" {
		t.Errorf("filename = %q", reply.Export.Filename)
	}
	lines := strings.Split(string(reply.Export.Data), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 4 rows, got %d lines:\n%s", len(lines), reply.Export.Data)
	}
	if lines[0] != "Usuario,Proyecto,Tarea,Fecha,Horas,Detalle" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Juan,Alfa,Análisis,2025-11-11,8,Análisis de requerimientos módulo A" {
		t.Errorf("first row = %q", lines[1])
	}

	cancel := out.Confirmation.OnCancel(context.Background(), sc)
	if cancel.Messages[0] != "De acuerdo. ¿Te ayudo con otra consulta?" {
		t.Errorf("cancel = %v", cancel.Messages)
	}
}

func TestTeamSummary(t *testing.T) {
	uc, sc := newUseCase(t)
	ctx := context.Background()

	out, err := uc.TeamSummary(ctx, sc, report.TeamSummaryInput{Project: "Alfa", Period: report.PeriodThisWeek})
	if err != nil {
		t.Fatalf("TeamSummary: %v", err)
	}
	want := "Resumen de horas del equipo en proyecto \"Alfa\" (esta semana, 10 de Noviembre al 16 de Noviembre):\n" +
		"• María: 32h\n• Nicolás: 28h\n• Juan: 26h\n• Daniel: 8h\n" +
		"Total del equipo: 94h\n14 tareas registradas\n\n" + downloadDetail
	if got := prompt(t, out); got != want {
		t.Errorf("prompt =\n%s\nwant\n%s", got, want)
	}

	out, err = uc.TeamSummary(ctx, sc, report.TeamSummaryInput{Project: "Beta", Period: report.PeriodLastWeek})
	if err != nil {
		t.Fatalf("TeamSummary: %v", err)
	}
	want = "No se encontraron horas cargadas en el proyecto \"Beta\" para la semana pasada (3 de Noviembre al 9 de Noviembre)."
	if got := plain(t, out); got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
}

func TestMissingHours(t *testing.T) {
	uc, sc := newUseCase(t)

	out, err := uc.MissingHours(context.Background(), sc, report.MissingHoursInput{Project: "Alfa", Period: report.PeriodThisWeek})
	if err != nil {
		t.Fatalf("MissingHours: %v", err)
	}
	want := "Miembros con horas faltantes en proyecto \"Alfa\" (esta semana, 10 de Noviembre al 16 de Noviembre):\n" +
		"Días laborables: 5 (40h esperadas por persona)\n\n" +
		"• Daniel: 8h cargadas, 32h faltantes\n" +
		"• Juan: 26h cargadas, 14h faltantes\n" +
		"• Nicolás: 28h cargadas, 12h faltantes\n" +
		"• María: 32h cargadas, 8h faltantes\n\n" +
		"Total de horas faltantes: 66h\n\n" + downloadDetail
	if got := prompt(t, out); got != want {
		t.Errorf("prompt =\n%s\nwant\n%s", got, want)
	}
}

func TestMissingHours_HolidayShortensWeek(t *testing.T) {
	uc, sc := newUseCase(t)

	out, err := uc.MissingHours(context.Background(), sc, report.MissingHoursInput{Project: "Alfa", Period: report.PeriodNextWeek})
	if err != nil {
		t.Fatalf("MissingHours: %v", err)
	}
	if got := prompt(t, out); !strings.Contains(got, "Días laborables: 4 (32h esperadas por persona)") {
		t.Errorf("prompt does not account for the Friday 21 holiday:\n%s", got)
	}
}

func TestNoHours(t *testing.T) {
	uc, sc := newUseCase(t)

	out, err := uc.NoHours(context.Background(), sc, report.NoHoursInput{Project: "Alfa", Period: report.PeriodThisWeek})
	if err != nil {
		t.Fatalf("NoHours: %v", err)
	}
	want := "Miembros sin horas cargadas en el proyecto \"Alfa\" esta semana (10 de Noviembre al 16 de Noviembre):\n" +
		"• Natalia\n• Borja\n• Pablo\n• Ramón\n• Lucía\n• Sofía\n\n" +
		"¿Querés descargar el listado en Excel (CSV)?"
	if got := prompt(t, out); got != want {
		t.Errorf("prompt =\n%s\nwant\n%s", got, want)
	}

	reply, err := out.Confirmation.OnConfirm(context.Background(), sc)
	if err != nil {
		t.Fatalf("OnConfirm: %v", err)
	}
	if reply.Export.Filename != "sin_horas_Alfa_2025-11-10_a_2025-11-16.csv" {
		t.Errorf("filename = %q", reply.Export.Filename)
	}
	lines := strings.Split(string(reply.Export.Data), "\n")
	if lines[0] != "Usuario,Proyecto,Rango,HorasCargadas" || lines[1] != "Natalia,Alfa,2025-11-10 a 2025-11-16,0" {
		t.Errorf("csv = %q", reply.Export.Data)
	}
}

func TestHistory(t *testing.T) {
	uc, sc := newUseCase(t)
	ctx := context.Background()

	tcs := map[string]struct {
		input report.HistoryInput
		offer bool
		want  string
	}{
		"months": {
			input: report.HistoryInput{Name: "Pablo", Project: "Alfa", Count: 2, Unit: datemath.UnitMonths},
			offer: true,
			want: "Historial de Pablo en proyecto \"Alfa\" (últimos 2 meses, 1 de Septiembre al 13 de Noviembre):\n\n" +
				"• Octubre 2025: 40h (5 tareas)\n\nTotal: 40h en 5 tareas\n\n" + downloadDetail,
		},
		"days without hours": {
			input: report.HistoryInput{Name: "pablo", Project: "Alfa", Count: 7, Unit: datemath.UnitDays},
			want:  "No se encontraron horas cargadas por pablo en el proyecto \"Alfa\" en los últimos 7 días (6 de Noviembre al 13 de Noviembre).",
		},
		"single day": {
			input: report.HistoryInput{Name: "Juan", Project: "Alfa", Count: 1, Unit: datemath.UnitDays},
			offer: true,
			want: "Historial de Juan en proyecto \"Alfa\" (últimos 1 día, 12 de Noviembre al 13 de Noviembre):\n\n" +
				"• Noviembre 2025: 14h (2 tareas)\n\nTotal: 14h en 2 tareas\n\n" + downloadDetail,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, err := uc.History(ctx, sc, tc.input)
			if err != nil {
				t.Fatalf("History: %v", err)
			}
			var got string
			if tc.offer {
				got = prompt(t, out)
			} else {
				got = plain(t, out)
			}
			if got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestHistory_UnknownCollaborator(t *testing.T) {
	uc, sc := newUseCase(t)

	_, err := uc.History(context.Background(), sc, report.HistoryInput{Name: "Pedro", Project: "Alfa", Count: 1, Unit: datemath.UnitMonths})
	if !errors.Is(err, report.ErrCollaboratorNotFound) {
		t.Fatalf("expected ErrCollaboratorNotFound, got %v", err)
	}
	var ue *model.UserError
	if !errors.As(err, &ue) || ue.Message != "No se encontró al colaborador \"Pedro\" en la base de datos." {
		t.Errorf("unexpected error %v", err)
	}
}

func TestMonthly(t *testing.T) {
	uc, sc := newUseCase(t)
	ctx := context.Background()

	out, err := uc.Monthly(ctx, sc, report.MonthlyInput{Project: "Alfa", Month: time.November})
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	want := "Resumen mensual de horas del equipo en proyecto \"Alfa\" (Noviembre 2025):\n" +
		"• Natalia: 38h\n• Borja: 36h\n• María: 36h\n• Nicolás: 36h\n• Juan: 34h\n• Daniel: 8h\n" +
		"Total del equipo: 188h\n27 tareas registradas\n\n" + downloadDetail
	if got := prompt(t, out); got != want {
		t.Errorf("prompt =\n%s\nwant\n%s", got, want)
	}

	reply, err := out.Confirmation.OnConfirm(ctx, sc)
	if err != nil {
		t.Fatalf("OnConfirm: %v", err)
	}
	if reply.Export.Filename != "horas_mensuales_Alfa_2025_11.csv" {
		t.Errorf("filename = %q", reply.Export.Filename)
	}

	out, err = uc.Monthly(ctx, sc, report.MonthlyInput{Project: "Alfa", Year: 2025, Month: time.December})
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if got := plain(t, out); got != "No se encontraron horas cargadas en el proyecto \"Alfa\" para Diciembre 2025." {
		t.Errorf("reply = %q", got)
	}
}

func TestReport(t *testing.T) {
	uc, sc := newUseCase(t)
	ctx := context.Background()

	t.Run("team", func(t *testing.T) {
		out, err := uc.Report(ctx, sc, report.ReportInput{Target: report.TargetTeam, Value: "Daniel"})
		if err != nil {
			t.Fatalf("Report: %v", err)
		}
		want := "Resumen de horas para el equipo de Daniel:\n" +
			"• María: 36h\n• Nicolás: 36h\n• Daniel: 8h\n" +
			"Total acumulado: 80h\n12 tareas registradas\n\n" + downloadDetail
		if got := prompt(t, out); got != want {
			t.Errorf("prompt =\n%s\nwant\n%s", got, want)
		}
		reply, err := out.Confirmation.OnConfirm(ctx, sc)
		if err != nil {
			t.Fatalf("OnConfirm: %v", err)
		}
		if reply.Export.Filename != "reporte_equipo_Daniel.csv" {
			t.Errorf("filename = %q", reply.Export.Filename)
		}
	})

	t.Run("cost center", func(t *testing.T) {
		out, err := uc.Report(ctx, sc, report.ReportInput{Target: report.TargetCostCenter, Value: "it"})
		if err != nil {
			t.Fatalf("Report: %v", err)
		}
		if got := prompt(t, out); !strings.Contains(got, "Total acumulado: 228h\n32 tareas registradas") {
			t.Errorf("prompt =\n%s", got)
		}
	})

	t.Run("holidays only cost center", func(t *testing.T) {
		out, err := uc.Report(ctx, sc, report.ReportInput{Target: report.TargetCostCenter, Value: "HR"})
		if err != nil {
			t.Fatalf("Report: %v", err)
		}
		if got := plain(t, out); got != "No se encontraron horas cargadas para el Centro de Costo \"HR\"." {
			t.Errorf("reply = %q", got)
		}
	})

	t.Run("project", func(t *testing.T) {
		out, err := uc.Report(ctx, sc, report.ReportInput{Target: report.TargetProject, Value: "Alfa"})
		if err != nil {
			t.Fatalf("Report: %v", err)
		}
		if got := prompt(t, out); !strings.HasPrefix(got, "Resumen de horas para el proyecto \"Alfa\":\n• Pablo: 40h") {
			t.Errorf("prompt =\n%s", got)
		}
	})

	errCases := map[string]struct {
		leader string
		kind   error
		msg    string
	}{
		"unknown leader": {"Pedro", report.ErrLeaderNotFound, "No se encontró al líder \"Pedro\" en la base de usuarios."},
		"no team":        {"María", report.ErrNoTeam, "No se encontraron colaboradores asociados al líder \"María\"."},
	}
	for name, tc := range errCases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Report(ctx, sc, report.ReportInput{Target: report.TargetTeam, Value: tc.leader})
			if !errors.Is(err, tc.kind) {
				t.Fatalf("expected %v, got %v", tc.kind, err)
			}
			var ue *model.UserError
			if !errors.As(err, &ue) || ue.Message != tc.msg {
				t.Errorf("message = %v", err)
			}
		})
	}
}

func TestMonthSummary(t *testing.T) {
	uc, sc := newUseCase(t)

	got, err := uc.MonthSummary(context.Background(), sc, 2025, time.November)
	if err != nil {
		t.Fatalf("MonthSummary: %v", err)
	}
	want := report.MonthSummary{
		Year: 2025, Month: time.November, WorkingDays: 18,
		LoadedHours: 8, WorkingHours: 144, PendingHours: 136,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if _, err := uc.MonthSummary(context.Background(), sc, 2025, 13); !errors.Is(err, report.ErrInvalidMonth) {
		t.Errorf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestMonthDays(t *testing.T) {
	uc, sc := newUseCase(t)

	days, err := uc.MonthDays(context.Background(), sc, 2025, time.November)
	if err != nil {
		t.Fatalf("MonthDays: %v", err)
	}
	if len(days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(days))
	}

	byDate := make(map[string]report.DayDetail, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}
	if d := byDate["2025-11-10"]; d.Hours != 8 || len(d.Entries) != 2 {
		t.Errorf("2025-11-10 = %+v", d)
	}
	if d := byDate["2025-11-21"]; d.Holiday != "Puente turístico no laborable" {
		t.Errorf("2025-11-21 holiday = %q", d.Holiday)
	}
	if d := byDate["2025-11-15"]; !d.Weekend || d.Entries == nil {
		t.Errorf("2025-11-15 = %+v", d)
	}
	// Juan's entries never show in Daniel's grid.
	if d := byDate["2025-11-11"]; d.Hours != 0 {
		t.Errorf("2025-11-11 hours = %v", d.Hours)
	}
}

package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"timesheet-assistant/config"
	"timesheet-assistant/internal/holiday"
	holidayUC "timesheet-assistant/internal/holiday/usecase"
	"timesheet-assistant/internal/orchestrator"
	"timesheet-assistant/internal/report"
	reportUC "timesheet-assistant/internal/report/usecase"
	"timesheet-assistant/internal/router"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/internal/timesheet/repository/memory"
	"timesheet-assistant/internal/timesheet/repository/sqlite"
	"timesheet-assistant/internal/timesheet/seed"
	timesheetUC "timesheet-assistant/internal/timesheet/usecase"
	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/gcalendar"
	"timesheet-assistant/pkg/log"
)

// App is the wired core shared by the HTTP and MCP entry points.
type App struct {
	Parser       *datemath.Parser
	Repo         repository.Repository
	Router       router.Router
	Report       report.UseCase
	Orchestrator *orchestrator.Orchestrator

	db *sql.DB
}

// Build wires the parser, the store (seeded and with holidays imported when
// configured), the router, both usecases and the orchestrator.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	parser, err := datemath.NewParser(cfg.Timesheet.Timezone)
	if err != nil {
		return nil, fmt.Errorf("app.Build: parser: %w", err)
	}

	a := &App{Parser: parser}
	if err := a.openStore(ctx, cfg, l); err != nil {
		return nil, err
	}

	if cfg.Timesheet.SeedDemoData {
		if err := seed.Load(ctx, a.Repo); err != nil {
			a.Close()
			return nil, fmt.Errorf("app.Build: %w", err)
		}
		l.Info(ctx, "Demo data loaded")
	}

	importHolidays(ctx, cfg, a.Repo, parser, l)

	rt := router.New(parser, l)
	ts := timesheetUC.New(a.Repo, parser, timesheetUC.Config{
		DefaultUserID: cfg.Timesheet.UserID,
		CostCenter:    cfg.Timesheet.CostCenter,
	}, l)
	rp := reportUC.New(a.Repo, parser, reportUC.Config{
		DefaultUserID: cfg.Timesheet.UserID,
		HoursPerDay:   cfg.Timesheet.HoursPerDay,
	}, l)

	orch, err := orchestrator.New(rt, ts, rp, orchestrator.Config{
		ThinkingDelay:    cfg.Chat.ThinkingDelay,
		ReplyDelay:       cfg.Chat.ReplyDelay,
		SessionCacheSize: cfg.Chat.SessionCacheSize,
	}, l)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("app.Build: orchestrator: %w", err)
	}

	a.Router = rt
	a.Report = rp
	a.Orchestrator = orch
	return a, nil
}

// Close releases the SQLite handle, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) openStore(ctx context.Context, cfg *config.Config, l log.Logger) error {
	switch cfg.Store.Driver {
	case "sqlite":
		db, err := sqlite.Open(cfg.Store.DSN)
		if err != nil {
			return fmt.Errorf("app.Build: %w", err)
		}
		repo, err := sqlite.New(ctx, db, l)
		if err != nil {
			db.Close()
			return fmt.Errorf("app.Build: %w", err)
		}
		a.db = db
		a.Repo = repo
	default:
		a.Repo = memory.New(l)
	}
	l.Infof(ctx, "Timesheet store: %s", cfg.Store.Driver)
	return nil
}

// importHolidays is best effort: a missing or failing calendar leaves the
// store with whatever holidays it already has.
func importHolidays(ctx context.Context, cfg *config.Config, repo repository.Repository, parser *datemath.Parser, l log.Logger) {
	gc := cfg.GoogleCalendar
	if gc.CredentialsPath == "" || gc.HolidayCalendarID == "" {
		l.Info(ctx, "Holiday import skipped: google_calendar not configured")
		return
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, gc.CredentialsPath, gc.TokenPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		l.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}

	uc := holidayUC.New(client, repo, holidayUC.Config{
		CalendarID: gc.HolidayCalendarID,
		Project:    gc.HolidayProject,
		CostCenter: gc.HolidayCostCenter,
	}, l)

	today := parser.Today()
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	months := gc.ImportMonths
	if months <= 0 {
		months = 12
	}

	out, err := uc.Import(ctx, holiday.ImportInput{From: from, To: from.AddDate(0, months, 0)})
	if err != nil {
		l.Warnf(ctx, "Holiday import failed: %v", err)
		return
	}
	l.Infof(ctx, "✅ Holidays imported: %d new, %d already present", len(out.Inserted), len(out.Skipped))
}

package report

import (
	"context"
	"time"

	"timesheet-assistant/internal/model"
)

// UseCase answers the leader's read-only queries. Non-empty results come
// back as a confirmation offering the CSV download.
type UseCase interface {
	LeaderHours(ctx context.Context, sc model.Scope, input LeaderHoursInput) (model.Outcome, error)
	TeamSummary(ctx context.Context, sc model.Scope, input TeamSummaryInput) (model.Outcome, error)
	MissingHours(ctx context.Context, sc model.Scope, input MissingHoursInput) (model.Outcome, error)
	History(ctx context.Context, sc model.Scope, input HistoryInput) (model.Outcome, error)
	Monthly(ctx context.Context, sc model.Scope, input MonthlyInput) (model.Outcome, error)
	NoHours(ctx context.Context, sc model.Scope, input NoHoursInput) (model.Outcome, error)
	Report(ctx context.Context, sc model.Scope, input ReportInput) (model.Outcome, error)

	MonthSummary(ctx context.Context, sc model.Scope, year int, month time.Month) (MonthSummary, error)
	MonthDays(ctx context.Context, sc model.Scope, year int, month time.Month) ([]DayDetail, error)
}

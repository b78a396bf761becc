package orchestrator

import (
	"context"
	"fmt"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/report"
	"timesheet-assistant/internal/router"
	"timesheet-assistant/internal/timesheet"
)

// dispatch routes a classified intent to its usecase.
func (o *Orchestrator) dispatch(ctx context.Context, sc model.Scope, intent router.Intent) (model.Outcome, error) {
	switch in := intent.Payload.(type) {
	case timesheet.LoadDailyInput:
		return o.timesheet.LoadDaily(ctx, sc, in)
	case timesheet.LoadBlockInput:
		return o.timesheet.LoadBlock(ctx, sc, in)
	case timesheet.EditHoursInput:
		return o.timesheet.EditHours(ctx, sc, in)
	case timesheet.DeleteSpecificInput:
		return o.timesheet.DeleteSpecific(ctx, sc, in)
	case timesheet.DeleteBulkInput:
		return o.timesheet.DeleteBulk(ctx, sc, in)
	case timesheet.DuplicateLastWeekInput:
		return o.timesheet.DuplicateLastWeek(ctx, sc, in)
	case timesheet.FillRestOfMonthInput:
		return o.timesheet.FillRestOfMonth(ctx, sc, in)

	case report.LeaderHoursInput:
		return o.report.LeaderHours(ctx, sc, in)
	case report.TeamSummaryInput:
		return o.report.TeamSummary(ctx, sc, in)
	case report.MissingHoursInput:
		return o.report.MissingHours(ctx, sc, in)
	case report.HistoryInput:
		return o.report.History(ctx, sc, in)
	case report.MonthlyInput:
		return o.report.Monthly(ctx, sc, in)
	case report.NoHoursInput:
		return o.report.NoHours(ctx, sc, in)
	case report.ReportInput:
		return o.report.Report(ctx, sc, in)

	case nil:
		return model.Outcome{}, fmt.Errorf("%w: %s", ErrInvalidPayload, intent.Kind)
	default:
		return model.Outcome{}, fmt.Errorf("%w: %s (%T)", ErrUnknownIntent, intent.Kind, in)
	}
}

package timesheet

import (
	"context"

	"timesheet-assistant/internal/model"
)

// UseCase executes the developer's mutating commands. Every successful call
// returns a confirmation; nothing is written until it is confirmed.
type UseCase interface {
	LoadDaily(ctx context.Context, sc model.Scope, input LoadDailyInput) (model.Outcome, error)
	LoadBlock(ctx context.Context, sc model.Scope, input LoadBlockInput) (model.Outcome, error)
	EditHours(ctx context.Context, sc model.Scope, input EditHoursInput) (model.Outcome, error)
	DeleteSpecific(ctx context.Context, sc model.Scope, input DeleteSpecificInput) (model.Outcome, error)
	DeleteBulk(ctx context.Context, sc model.Scope, input DeleteBulkInput) (model.Outcome, error)
	DuplicateLastWeek(ctx context.Context, sc model.Scope, input DuplicateLastWeekInput) (model.Outcome, error)
	FillRestOfMonth(ctx context.Context, sc model.Scope, input FillRestOfMonthInput) (model.Outcome, error)
}

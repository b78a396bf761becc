package usecase

import (
	"context"
	"fmt"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/pkg/datemath"
)

// LoadDaily asks to load hours for one task on one date.
func (uc *implUseCase) LoadDaily(ctx context.Context, sc model.Scope, input timesheet.LoadDailyInput) (model.Outcome, error) {
	if err := validHours(input.Hours); err != nil {
		return model.Outcome{}, err
	}
	if err := uc.admit(ctx, input.Date, input.Hours); err != nil {
		return model.Outcome{}, err
	}

	hours := model.FormatHours(input.Hours)
	display := datemath.FormatDisplay(input.Date)
	prompt := fmt.Sprintf(msgLoadDailyConfirm, hours, input.TaskName, input.Project, input.DateRef, display)

	return confirm(prompt, func(ctx context.Context, sc model.Scope) (model.Reply, error) {
		if err := uc.admit(ctx, input.Date, input.Hours); err != nil {
			return model.Reply{}, err
		}
		_, err := uc.insert(ctx, sc, newEntry{
			project:  input.Project,
			taskName: input.TaskName,
			date:     input.Date,
			hours:    input.Hours,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.LoadDaily InsertEntry: %v", err)
			return model.Reply{}, err
		}

		uc.refresh(sc, []string{input.Date})
		return model.NewReply(fmt.Sprintf(msgLoadDailyDone, hours, input.TaskName, input.Project, input.DateRef, display)), nil
	}), nil
}

// LoadBlock asks to load the same hours on every day of a weekday span.
// Holidays inside the span are skipped and counted.
func (uc *implUseCase) LoadBlock(ctx context.Context, sc model.Scope, input timesheet.LoadBlockInput) (model.Outcome, error) {
	if err := validHours(input.Hours); err != nil {
		return model.Outcome{}, err
	}

	hours := model.FormatHours(input.Hours)
	startDay := capitalize(input.StartDay)
	endDay := capitalize(input.EndDay)
	prompt := fmt.Sprintf(msgLoadBlockConfirm, hours, input.TaskName, input.Project, startDay, endDay, len(input.Dates))

	return confirm(prompt, func(ctx context.Context, sc model.Scope) (model.Reply, error) {
		var created, skipped int
		var affected []string
		for _, date := range input.Dates {
			if err := uc.admit(ctx, date, input.Hours); err != nil {
				if isHolidayConflict(err) {
					skipped++
					continue
				}
				return model.Reply{}, err
			}
			_, err := uc.insert(ctx, sc, newEntry{
				project:  input.Project,
				taskName: input.TaskName,
				date:     date,
				hours:    input.Hours,
			})
			if err != nil {
				uc.l.Errorf(ctx, "uc.LoadBlock InsertEntry: %v", err)
				return model.Reply{}, err
			}
			created++
			affected = append(affected, date)
		}

		uc.refresh(sc, affected)

		msg := fmt.Sprintf(msgLoadBlockDone, hours, input.TaskName, input.Project, created, model.Plural(created, "día", "días"))
		if skipped > 0 {
			msg += skippedSuffix(". ", skipped)
		} else {
			msg += fmt.Sprintf(msgLoadBlockRange, startDay, endDay)
		}
		return model.NewReply(msg), nil
	}), nil
}

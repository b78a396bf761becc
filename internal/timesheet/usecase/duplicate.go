package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/datemath"
)

// DuplicateLastWeek asks to copy last week's entries of a project onto this
// week, Monday onto Monday and so on. Existing targets are overwritten.
func (uc *implUseCase) DuplicateLastWeek(ctx context.Context, sc model.Scope, input timesheet.DuplicateLastWeekInput) (model.Outcome, error) {
	lastWeek := uc.parser.LastWeek()
	thisWeek := uc.parser.ThisWeek()

	sources, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{
		UserIDs:       []int{uc.userID(sc)},
		Project:       input.Project,
		From:          lastWeek.Start,
		To:            lastWeek.End,
		PositiveHours: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DuplicateLastWeek ListEntries: %v", err)
		return model.Outcome{}, err
	}
	if len(sources) == 0 {
		return model.Outcome{}, model.NewUserError(timesheet.ErrNoEntriesFound, fmt.Sprintf(msgDuplicateEmpty, input.Project))
	}

	n := len(sources)
	prompt := fmt.Sprintf(msgDuplicateConfirm, n, model.Plural(n, "entrada", "entradas"), input.Project,
		datemath.FormatDisplay(lastWeek.Start), datemath.FormatDisplay(thisWeek.Start))

	return confirm(prompt, func(ctx context.Context, sc model.Scope) (model.Reply, error) {
		fromDates := datemath.DatesBetween(lastWeek)
		toDates := datemath.DatesBetween(thisWeek)

		var copied, skipped int
		for _, src := range sources {
			i := slices.Index(fromDates, src.StartDate)
			if i < 0 {
				continue
			}
			target := toDates[i]

			if err := uc.admit(ctx, target, src.Hours); err != nil {
				if isHolidayConflict(err) {
					skipped++
					continue
				}
				return model.Reply{}, err
			}

			existing, err := uc.repo.FindEntry(ctx, repo.FindEntryOptions{
				UserID:   uc.userID(sc),
				Project:  src.Project,
				TaskName: src.TaskName,
				Date:     target,
			})
			switch {
			case err == nil:
				if _, err := uc.repo.UpdateEntryHours(ctx, existing.ID, src.Hours); err != nil {
					uc.l.Errorf(ctx, "uc.DuplicateLastWeek UpdateEntryHours: %v", err)
					return model.Reply{}, err
				}
			case errors.Is(err, repo.ErrNotFound):
				if _, err := uc.insert(ctx, sc, newEntry{
					project:  src.Project,
					taskName: src.TaskName,
					date:     target,
					hours:    src.Hours,
					detail:   src.Detail,
				}); err != nil {
					uc.l.Errorf(ctx, "uc.DuplicateLastWeek InsertEntry: %v", err)
					return model.Reply{}, err
				}
			default:
				uc.l.Errorf(ctx, "uc.DuplicateLastWeek FindEntry: %v", err)
				return model.Reply{}, err
			}
			copied++
		}

		uc.refresh(sc, toDates)

		msg := fmt.Sprintf(msgDuplicateDone, copied, model.Plural(copied, "entrada", "entradas"), input.Project)
		msg += skippedSuffix(" ", skipped)
		return model.NewReply(msg), nil
	}), nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/datemath"
)

// findOwn looks up the current user's loaded entry, or returns the
// not-found user error.
func (uc *implUseCase) findOwn(ctx context.Context, sc model.Scope, taskName, project, dateRef, date string) (model.TaskEntry, error) {
	e, err := uc.repo.FindEntry(ctx, repo.FindEntryOptions{
		UserID:   uc.userID(sc),
		Project:  project,
		TaskName: taskName,
		Date:     date,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.TaskEntry{}, model.NewUserError(timesheet.ErrTaskNotFound,
			fmt.Sprintf(msgTaskNotFound, taskName, project, dateRef, datemath.FormatDisplay(date)))
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.findOwn FindEntry: %v", err)
		return model.TaskEntry{}, err
	}
	return e, nil
}

// EditHours asks to replace the hours of an existing entry.
func (uc *implUseCase) EditHours(ctx context.Context, sc model.Scope, input timesheet.EditHoursInput) (model.Outcome, error) {
	e, err := uc.findOwn(ctx, sc, input.TaskName, input.Project, input.DateRef, input.Date)
	if err != nil {
		return model.Outcome{}, err
	}
	if err := uc.admit(ctx, input.Date, input.Hours); err != nil {
		return model.Outcome{}, err
	}

	display := datemath.FormatDisplay(input.Date)
	oldHours := model.FormatHours(e.Hours)
	newHours := model.FormatHours(input.Hours)
	prompt := fmt.Sprintf(msgEditConfirm, input.TaskName, input.Project, input.DateRef, display, oldHours, newHours)

	return confirm(prompt, func(ctx context.Context, sc model.Scope) (model.Reply, error) {
		if _, err := uc.repo.UpdateEntryHours(ctx, e.ID, input.Hours); err != nil {
			uc.l.Errorf(ctx, "uc.EditHours UpdateEntryHours: %v", err)
			return model.Reply{}, err
		}

		uc.refresh(sc, []string{e.StartDate})
		return model.NewReply(fmt.Sprintf(msgEditDone, input.TaskName, input.Project, input.DateRef, display, oldHours, newHours)), nil
	}), nil
}

// DeleteSpecific asks to remove one entry.
func (uc *implUseCase) DeleteSpecific(ctx context.Context, sc model.Scope, input timesheet.DeleteSpecificInput) (model.Outcome, error) {
	e, err := uc.findOwn(ctx, sc, input.TaskName, input.Project, input.DateRef, input.Date)
	if err != nil {
		return model.Outcome{}, err
	}

	display := datemath.FormatDisplay(input.Date)
	prompt := fmt.Sprintf(msgDeleteConfirm, input.TaskName, input.Project, input.DateRef, display)

	return confirm(prompt, func(ctx context.Context, sc model.Scope) (model.Reply, error) {
		if err := uc.repo.DeleteEntry(ctx, e.ID); err != nil {
			uc.l.Errorf(ctx, "uc.DeleteSpecific DeleteEntry: %v", err)
			return model.Reply{}, err
		}

		uc.refresh(sc, []string{e.StartDate})
		return model.NewReply(fmt.Sprintf(msgDeleteDone, input.TaskName, input.Project, input.DateRef, display)), nil
	}), nil
}

// DeleteBulk asks to remove every loaded entry of the current user on the
// given dates.
func (uc *implUseCase) DeleteBulk(ctx context.Context, sc model.Scope, input timesheet.DeleteBulkInput) (model.Outcome, error) {
	entries, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{
		UserIDs:       []int{uc.userID(sc)},
		Dates:         input.Dates,
		PositiveHours: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteBulk ListEntries: %v", err)
		return model.Outcome{}, err
	}
	if len(entries) == 0 {
		return model.Outcome{}, model.NewUserError(timesheet.ErrNoEntriesFound, fmt.Sprintf(msgBulkEmpty, input.Period))
	}

	n := len(entries)
	prompt := fmt.Sprintf(msgBulkConfirm, input.Period, n, model.Plural(n, "tarea", "tareas"))

	return confirm(prompt, func(ctx context.Context, sc model.Scope) (model.Reply, error) {
		dates := make([]string, 0, n)
		for _, e := range entries {
			if err := uc.repo.DeleteEntry(ctx, e.ID); err != nil && !errors.Is(err, repo.ErrNotFound) {
				uc.l.Errorf(ctx, "uc.DeleteBulk DeleteEntry: %v", err)
				return model.Reply{}, err
			}
			dates = append(dates, e.StartDate)
		}

		uc.refresh(sc, dates)
		return model.NewReply(fmt.Sprintf(msgBulkDone, input.Period, n,
			model.Plural(n, "tarea", "tareas"), model.Plural(n, "eliminada", "eliminadas"))), nil
	}), nil
}

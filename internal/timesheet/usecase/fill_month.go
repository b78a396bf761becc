package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/datemath"
)

// FillRestOfMonth asks to replicate this week's entries of a project onto
// every later week that starts inside the displayed month. Existing entries
// are kept untouched.
func (uc *implUseCase) FillRestOfMonth(ctx context.Context, sc model.Scope, input timesheet.FillRestOfMonthInput) (model.Outcome, error) {
	thisWeek := uc.parser.ThisWeek()

	sources, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{
		UserIDs:       []int{uc.userID(sc)},
		Project:       input.Project,
		From:          thisWeek.Start,
		To:            thisWeek.End,
		PositiveHours: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FillRestOfMonth ListEntries: %v", err)
		return model.Outcome{}, err
	}
	if len(sources) == 0 {
		return model.Outcome{}, model.NewUserError(timesheet.ErrNoEntriesFound, fmt.Sprintf(msgFillEmpty, input.Project))
	}

	year, month := uc.displayed(sc)
	mondays := remainingMondays(uc.parser.NextMonday(), year, month)
	if len(mondays) == 0 {
		return model.Outcome{}, model.NewUserError(timesheet.ErrNoWeeksLeft, msgFillNoWeeks)
	}

	n := len(sources)
	prompt := fmt.Sprintf(msgFillConfirm, n, model.Plural(n, "entrada", "entradas"), input.Project)

	return confirm(prompt, func(ctx context.Context, sc model.Scope) (model.Reply, error) {
		weekDates := datemath.DatesBetween(thisWeek)

		var created, skipped int
		var affected []string
		for _, monday := range mondays {
			for i := 0; i < 7; i++ {
				day := monday.AddDate(0, 0, i)
				if day.Year() != year || day.Month() != month {
					continue
				}
				target := datemath.FormatISO(day)

				for _, src := range sources {
					if slices.Index(weekDates, src.StartDate) != i {
						continue
					}
					ok, err := uc.fillOne(ctx, sc, src, target)
					if err != nil {
						if isHolidayConflict(err) {
							skipped++
							continue
						}
						return model.Reply{}, err
					}
					if ok {
						created++
						affected = append(affected, target)
					}
				}
			}
		}

		uc.refresh(sc, affected)

		msg := fmt.Sprintf(msgFillDone, created, model.Plural(created, "entrada", "entradas"),
			model.Plural(created, "replicada", "replicadas"), input.Project)
		msg += skippedSuffix(" ", skipped)
		return model.NewReply(msg), nil
	}), nil
}

// fillOne copies src onto target unless an entry for the same task already
// exists there. It reports whether a row was created.
func (uc *implUseCase) fillOne(ctx context.Context, sc model.Scope, src model.TaskEntry, target string) (bool, error) {
	if err := uc.admit(ctx, target, src.Hours); err != nil {
		return false, err
	}

	_, err := uc.repo.FindEntry(ctx, repo.FindEntryOptions{
		UserID:   uc.userID(sc),
		Project:  src.Project,
		TaskName: src.TaskName,
		Date:     target,
	})
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		uc.l.Errorf(ctx, "uc.fillOne FindEntry: %v", err)
		return false, err
	}

	if _, err := uc.insert(ctx, sc, newEntry{
		project:  src.Project,
		taskName: src.TaskName,
		date:     target,
		hours:    src.Hours,
		detail:   src.Detail,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.fillOne InsertEntry: %v", err)
		return false, err
	}
	return true, nil
}

// remainingMondays lists from, from+7, ... while they stay in year/month.
func remainingMondays(from time.Time, year int, month time.Month) []time.Time {
	var mondays []time.Time
	for d := from; d.Year() == year && d.Month() == month; d = d.AddDate(0, 0, 7) {
		mondays = append(mondays, d)
	}
	return mondays
}

package usecase

import (
	"context"
	"math"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/report"
	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/datemath"
)

func (uc *implUseCase) userID(sc model.Scope) int {
	if sc.UserID != 0 {
		return sc.UserID
	}
	return uc.cfg.DefaultUserID
}

// MonthSummary computes the caller's hour balance for a month.
func (uc *implUseCase) MonthSummary(ctx context.Context, sc model.Scope, year int, month time.Month) (report.MonthSummary, error) {
	if month < time.January || month > time.December {
		return report.MonthSummary{}, report.ErrInvalidMonth
	}
	r := datemath.MonthRange(year, month)

	entries, err := uc.loaded(ctx, repo.ListEntriesOptions{UserIDs: []int{uc.userID(sc)}, From: r.Start, To: r.End})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.MonthSummary: %v", err)
		return report.MonthSummary{}, err
	}
	days, err := uc.workingDays(ctx, r)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.MonthSummary: %v", err)
		return report.MonthSummary{}, err
	}

	var loaded float64
	for _, e := range entries {
		loaded += e.Hours
	}
	working := float64(days) * uc.cfg.HoursPerDay

	return report.MonthSummary{
		Year:         year,
		Month:        month,
		WorkingDays:  days,
		LoadedHours:  loaded,
		WorkingHours: working,
		PendingHours: math.Max(0, working-loaded),
	}, nil
}

// MonthDays returns one cell per date of the month with the caller's
// entries and the holiday name, if any.
func (uc *implUseCase) MonthDays(ctx context.Context, sc model.Scope, year int, month time.Month) ([]report.DayDetail, error) {
	if month < time.January || month > time.December {
		return nil, report.ErrInvalidMonth
	}
	r := datemath.MonthRange(year, month)

	entries, err := uc.loaded(ctx, repo.ListEntriesOptions{UserIDs: []int{uc.userID(sc)}, From: r.Start, To: r.End})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.MonthDays: %v", err)
		return nil, err
	}
	holidays, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{HolidaysOnly: true, From: r.Start, To: r.End})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.MonthDays.ListEntries: %v", err)
		return nil, err
	}

	byDate := make(map[string][]model.TaskEntry)
	for _, e := range entries {
		byDate[e.StartDate] = append(byDate[e.StartDate], e)
	}
	holidayName := make(map[string]string)
	for _, h := range holidays {
		if _, ok := holidayName[h.StartDate]; !ok {
			holidayName[h.StartDate] = h.TaskName
		}
	}

	dates := datemath.DatesBetween(r)
	days := make([]report.DayDetail, 0, len(dates))
	for _, d := range dates {
		day := report.DayDetail{
			Date:    d,
			Weekend: datemath.IsWeekend(d),
			Holiday: holidayName[d],
			Entries: byDate[d],
		}
		if day.Entries == nil {
			day.Entries = []model.TaskEntry{}
		}
		for _, e := range day.Entries {
			day.Hours += e.Hours
		}
		days = append(days, day)
	}
	return days, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timesheet-assistant/internal/holiday"
	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/gcalendar"
)

const dateLayout = "2006-01-02"

// Import inserts one holiday row per all-day event date in the window,
// unless the store already has a holiday on that date.
func (uc *implUseCase) Import(ctx context.Context, input holiday.ImportInput) (holiday.ImportOutput, error) {
	if !input.To.After(input.From) {
		return holiday.ImportOutput{}, holiday.ErrInvalidWindow
	}

	events, err := uc.listWithRetry(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    input.From,
		TimeMax:    input.To,
	})
	if err != nil {
		return holiday.ImportOutput{}, err
	}

	fromDate := input.From.Format(dateLayout)
	toDate := input.To.Format(dateLayout)

	var out holiday.ImportOutput
	seen := make(map[string]bool)
	for _, ev := range events {
		if !ev.AllDay {
			continue
		}
		for _, date := range eventDates(ev) {
			if date < fromDate || date >= toDate || seen[date] {
				continue
			}
			seen[date] = true

			inserted, err := uc.insertIfAbsent(ctx, date, ev.Summary)
			if err != nil {
				return out, err
			}
			if inserted {
				out.Inserted = append(out.Inserted, date)
			} else {
				out.Skipped = append(out.Skipped, date)
			}
		}
	}

	uc.l.Infof(ctx, "holiday.Import: inserted=%d skipped=%d", len(out.Inserted), len(out.Skipped))
	return out, nil
}

func (uc *implUseCase) insertIfAbsent(ctx context.Context, date, name string) (bool, error) {
	_, err := uc.repo.FindHoliday(ctx, date)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("holiday.Import: find %s: %w", date, err)
	}

	_, err = uc.repo.InsertEntry(ctx, repository.InsertEntryOptions{
		UserID:     model.HolidayUserID,
		CostCenter: uc.cfg.CostCenter,
		Project:    uc.cfg.Project,
		TaskName:   name,
		StartDate:  date,
		EndDate:    date,
		Hours:      0,
		Detail:     name,
	})
	if err != nil {
		return false, fmt.Errorf("holiday.Import: insert %s: %w", date, err)
	}
	return true, nil
}

// listWithRetry calls the calendar with exponential backoff.
func (uc *implUseCase) listWithRetry(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	backoff := uc.cfg.Backoff
	var lastErr error
	for i := 0; i < uc.cfg.MaxRetries; i++ {
		events, err := uc.events.ListEvents(ctx, req)
		if err == nil {
			return events, nil
		}
		lastErr = err
		uc.l.Warnf(ctx, "holiday.Import: list events failed (retry %d/%d): %v", i+1, uc.cfg.MaxRetries, err)
		if i < uc.cfg.MaxRetries-1 {
			if ctx.Err() != nil {
				break
			}
			uc.sleep(backoff)
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("%w: %v", holiday.ErrCalendarFailure, lastErr)
}

// eventDates expands an all-day event into its dates. EndDate is exclusive.
func eventDates(ev gcalendar.Event) []string {
	start, err := time.Parse(dateLayout, ev.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, ev.EndDate)
	if err != nil || !end.After(start) {
		return []string{ev.StartDate}
	}
	var dates []string
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

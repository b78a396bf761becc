package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/datemath"
)

// admit is the holiday gate. Every insert or overwrite with hours > 0 must
// pass it first.
func (uc *implUseCase) admit(ctx context.Context, date string, hours float64) error {
	if hours <= 0 {
		return nil
	}
	h, err := uc.repo.FindHoliday(ctx, date)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find holiday: %w", err)
	}
	return model.NewUserError(timesheet.ErrHolidayConflict,
		fmt.Sprintf(msgHoliday, datemath.FormatDisplay(date), h.TaskName))
}

// isHolidayConflict reports whether err came from the gate.
func isHolidayConflict(err error) bool {
	return errors.Is(err, timesheet.ErrHolidayConflict)
}

// userID falls back to the configured developer when the scope has none.
func (uc *implUseCase) userID(sc model.Scope) int {
	if sc.UserID != 0 {
		return sc.UserID
	}
	return uc.cfg.DefaultUserID
}

// userName resolves the display name from the roster.
func (uc *implUseCase) userName(ctx context.Context, sc model.Scope) string {
	if sc.UserName != "" {
		return sc.UserName
	}
	rows, err := uc.repo.ListAssignments(ctx, repo.ListAssignmentsOptions{UserIDs: []int{uc.userID(sc)}})
	if err != nil || len(rows) == 0 {
		return ""
	}
	return rows[0].UserName
}

type newEntry struct {
	project  string
	taskName string
	date     string
	hours    float64
	detail   string
}

// insert writes one entry for the current user. Callers run admit first.
func (uc *implUseCase) insert(ctx context.Context, sc model.Scope, e newEntry) (model.TaskEntry, error) {
	detail := e.detail
	if detail == "" {
		detail = fmt.Sprintf("%s - %s", e.taskName, e.project)
	}
	return uc.repo.InsertEntry(ctx, repo.InsertEntryOptions{
		UserID:     uc.userID(sc),
		UserName:   uc.userName(ctx, sc),
		CostCenter: uc.cfg.CostCenter,
		Project:    e.project,
		TaskName:   e.taskName,
		StartDate:  e.date,
		EndDate:    e.date,
		Hours:      e.hours,
		Detail:     detail,
	})
}

// displayed returns the month the user is looking at, or the current one.
func (uc *implUseCase) displayed(sc model.Scope) (int, time.Month) {
	if sc.View != nil {
		return sc.View.DisplayedMonth()
	}
	today := uc.parser.Today()
	return today.Year(), today.Month()
}

// refresh redraws the calendar when any date falls in the displayed month,
// or just the hours summary when one falls in the displayed year.
func (uc *implUseCase) refresh(sc model.Scope, dates []string) {
	if sc.View == nil {
		return
	}
	year, month := sc.View.DisplayedMonth()
	for _, d := range dates {
		if datemath.InMonth(d, year, month) {
			sc.View.RefreshCalendarView(year, month)
			return
		}
	}
	for _, d := range dates {
		if datemath.InYear(d, year) {
			sc.View.RefreshHoursSummary(year, month)
			return
		}
	}
}

// confirm wraps apply into a pending confirmation with the standard cancel reply.
func confirm(prompt string, apply func(ctx context.Context, sc model.Scope) (model.Reply, error)) model.Outcome {
	return model.Outcome{Confirmation: &model.Confirmation{
		Prompt:    prompt,
		OnConfirm: apply,
		OnCancel: func(ctx context.Context, sc model.Scope) model.Reply {
			return model.NewReply(msgCancelled)
		},
	}}
}

func skippedSuffix(prefix string, skipped int) string {
	if skipped == 0 {
		return ""
	}
	return fmt.Sprintf(msgSkippedHolidays, prefix, skipped,
		model.Plural(skipped, "día", "días"), model.Plural(skipped, "feriado", "feriados"))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func validHours(h float64) error {
	if h <= 0 || h > 24 {
		return model.NewUserError(timesheet.ErrInvalidHours,
			fmt.Sprintf("❌ La cantidad de horas debe ser mayor a 0 y como máximo 24 (recibí %sh). Para quitar horas usá \"eliminá\".", model.FormatHours(h)))
	}
	return nil
}

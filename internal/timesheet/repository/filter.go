package repository

import (
	"slices"
	"strings"

	"timesheet-assistant/internal/model"
)

// MatchEntry reports whether e satisfies opt. Backends that filter in Go
// share it so every store agrees on the same semantics.
func MatchEntry(e model.TaskEntry, opt ListEntriesOptions) bool {
	if len(opt.UserIDs) > 0 && !slices.Contains(opt.UserIDs, e.UserID) {
		return false
	}
	if opt.Project != "" && !strings.EqualFold(e.Project, opt.Project) {
		return false
	}
	if opt.CostCenter != "" && !strings.EqualFold(e.CostCenter, opt.CostCenter) {
		return false
	}
	if opt.TaskName != "" && !strings.EqualFold(e.TaskName, opt.TaskName) {
		return false
	}
	if opt.From != "" && e.StartDate < opt.From {
		return false
	}
	if opt.To != "" && e.StartDate > opt.To {
		return false
	}
	if len(opt.Dates) > 0 && !slices.Contains(opt.Dates, e.StartDate) {
		return false
	}
	if opt.PositiveHours && e.Hours <= 0 {
		return false
	}
	if opt.ExcludeHolidays && e.IsHoliday() {
		return false
	}
	if opt.HolidaysOnly && !e.IsHoliday() {
		return false
	}
	return true
}

// MatchAssignment reports whether a satisfies opt.
func MatchAssignment(a model.Assignment, opt ListAssignmentsOptions) bool {
	if opt.Project != "" && !strings.EqualFold(a.Project, opt.Project) {
		return false
	}
	if opt.UserName != "" && !strings.EqualFold(a.UserName, opt.UserName) {
		return false
	}
	if len(opt.UserIDs) > 0 && !slices.Contains(opt.UserIDs, a.UserID) {
		return false
	}
	if len(opt.LeaderUserIDs) > 0 && (a.LeaderUserID == nil || !slices.Contains(opt.LeaderUserIDs, *a.LeaderUserID)) {
		return false
	}
	return true
}

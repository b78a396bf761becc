package sqlite

import (
	"strings"

	"timesheet-assistant/internal/model"
	repo "timesheet-assistant/internal/timesheet/repository"
)

// buildFindQuery builds the WHERE clause + args for FindEntry.
func (r *implRepository) buildFindQuery(opt repo.FindEntryOptions) (string, []any) {
	conditions := []string{
		"user_id <> ?",
		"hours > 0",
		"start_date = ?",
		"task_key = ?",
		"project_key = ?",
	}
	args := []any{model.HolidayUserID, opt.Date, strings.ToLower(opt.TaskName), strings.ToLower(opt.Project)}

	if opt.UserID != 0 {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE clause + args for ListEntries.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildListQuery(opt repo.ListEntriesOptions) (string, []any) {
	var conditions []string
	var args []any

	if len(opt.UserIDs) > 0 {
		conditions = append(conditions, "user_id IN ("+placeholders(len(opt.UserIDs))+")")
		for _, id := range opt.UserIDs {
			args = append(args, id)
		}
	}
	if opt.Project != "" {
		conditions = append(conditions, "project_key = ?")
		args = append(args, strings.ToLower(opt.Project))
	}
	if opt.CostCenter != "" {
		conditions = append(conditions, "cost_center_key = ?")
		args = append(args, strings.ToLower(opt.CostCenter))
	}
	if opt.TaskName != "" {
		conditions = append(conditions, "task_key = ?")
		args = append(args, strings.ToLower(opt.TaskName))
	}
	if opt.From != "" {
		conditions = append(conditions, "start_date >= ?")
		args = append(args, opt.From)
	}
	if opt.To != "" {
		conditions = append(conditions, "start_date <= ?")
		args = append(args, opt.To)
	}
	if len(opt.Dates) > 0 {
		conditions = append(conditions, "start_date IN ("+placeholders(len(opt.Dates))+")")
		for _, d := range opt.Dates {
			args = append(args, d)
		}
	}
	if opt.PositiveHours {
		conditions = append(conditions, "hours > 0")
	}
	if opt.ExcludeHolidays {
		conditions = append(conditions, "user_id <> ?")
		args = append(args, model.HolidayUserID)
	}
	if opt.HolidaysOnly {
		conditions = append(conditions, "user_id = ?")
		args = append(args, model.HolidayUserID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildAssignmentQuery builds the WHERE clause + args for ListAssignments.
func (r *implRepository) buildAssignmentQuery(opt repo.ListAssignmentsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Project != "" {
		conditions = append(conditions, "project_key = ?")
		args = append(args, strings.ToLower(opt.Project))
	}
	if opt.UserName != "" {
		conditions = append(conditions, "user_name_key = ?")
		args = append(args, strings.ToLower(opt.UserName))
	}
	if len(opt.UserIDs) > 0 {
		conditions = append(conditions, "user_id IN ("+placeholders(len(opt.UserIDs))+")")
		for _, id := range opt.UserIDs {
			args = append(args, id)
		}
	}
	if len(opt.LeaderUserIDs) > 0 {
		conditions = append(conditions, "leader_user_id IN ("+placeholders(len(opt.LeaderUserIDs))+")")
		for _, id := range opt.LeaderUserIDs {
			args = append(args, id)
		}
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

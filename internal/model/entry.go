package model

// HolidayUserID marks a holiday row in the timesheet store.
const HolidayUserID = 0

// TaskEntry is one row of the timesheet store.
type TaskEntry struct {
	ID         string  `json:"id"`        // Minted UUID, the only key for update/delete
	LegacyID   int     `json:"legacy_id"` // Numeric task id, informational and not unique
	UserID     int     `json:"user_id"`
	UserName   string  `json:"user_name"`
	CostCenter string  `json:"cost_center"`
	Project    string  `json:"project"`
	TaskName   string  `json:"task_name"` // Holiday name for holiday rows
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Hours      float64 `json:"hours"`
	Detail     string  `json:"detail"`
}

// IsHoliday reports whether the entry is a holiday marker.
func (e TaskEntry) IsHoliday() bool {
	return e.UserID == HolidayUserID
}

// Assignment links a user to a project and, optionally, to a leader.
type Assignment struct {
	UserID       int    `json:"user_id"`
	UserName     string `json:"user_name"`
	Project      string `json:"project"`
	LeaderUserID *int   `json:"leader_user_id,omitempty"`
}

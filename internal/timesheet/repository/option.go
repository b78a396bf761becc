package repository

// InsertEntryOptions holds parameters for inserting a new row.
// LegacyID 0 means "next free legacy id". EndDate defaults to StartDate.
type InsertEntryOptions struct {
	LegacyID   int
	UserID     int
	UserName   string
	CostCenter string
	Project    string
	TaskName   string
	StartDate  string
	EndDate    string
	Hours      float64
	Detail     string
}

// FindEntryOptions locates one loaded (hours > 0, non-holiday) row.
// Names compare case-insensitively. UserID 0 matches any user.
type FindEntryOptions struct {
	UserID   int
	Project  string
	TaskName string
	Date     string
}

// ListEntriesOptions holds filter parameters for listing rows.
// All non-empty fields are applied as AND conditions.
type ListEntriesOptions struct {
	UserIDs    []int
	Project    string
	CostCenter string
	TaskName   string

	// Inclusive date bounds on StartDate. Either may be empty.
	From string
	To   string
	// Dates restricts StartDate to an explicit set.
	Dates []string

	PositiveHours   bool
	ExcludeHolidays bool
	HolidaysOnly    bool
}

// ListAssignmentsOptions filters the roster. Names compare case-insensitively.
type ListAssignmentsOptions struct {
	Project       string
	UserName      string
	UserIDs       []int
	LeaderUserIDs []int
}

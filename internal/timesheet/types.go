package timesheet

// --- UseCase Inputs ---
// Dates are resolved ISO dates. DateRef keeps the user's own wording for echoing.

type LoadDailyInput struct {
	Hours    float64
	TaskName string
	Project  string
	DateRef  string
	Date     string
}

type LoadBlockInput struct {
	Hours    float64
	TaskName string
	Project  string
	StartDay string
	EndDay   string
	Dates    []string
}

type EditHoursInput struct {
	TaskName string
	Project  string
	DateRef  string
	Date     string
	Hours    float64
}

type DeleteSpecificInput struct {
	TaskName string
	Project  string
	DateRef  string
	Date     string
}

type DeleteBulkInput struct {
	Period string
	Dates  []string
}

type DuplicateLastWeekInput struct {
	Project string
}

type FillRestOfMonthInput struct {
	Project string
}

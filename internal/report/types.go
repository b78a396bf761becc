package report

import (
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/pkg/datemath"
)

// Period is a week relative to today.
type Period string

const (
	PeriodThisWeek Period = "esta semana"
	PeriodLastWeek Period = "semana pasada"
	PeriodNextWeek Period = "semana que viene"
)

// Display is the wording used inside report headers.
func (p Period) Display() string {
	switch p {
	case PeriodLastWeek:
		return "la semana pasada"
	case PeriodNextWeek:
		return "la semana que viene"
	default:
		return "esta semana"
	}
}

// Target selects what a general report is about.
type Target string

const (
	TargetCostCenter Target = "centro_de_costo"
	TargetProject    Target = "proyecto"
	TargetTeam       Target = "equipo"
)

// --- UseCase Inputs ---

type LeaderHoursInput struct {
	Names   []string
	Project string
	Period  Period
}

type TeamSummaryInput struct {
	Project string
	Period  Period
}

type MissingHoursInput struct {
	Project string
	Period  Period
}

type HistoryInput struct {
	Name    string
	Project string
	Count   int
	Unit    datemath.Unit
}

type MonthlyInput struct {
	Project string
	Year    int
	Month   time.Month
}

type NoHoursInput struct {
	Project string
	Period  Period
}

type ReportInput struct {
	Target Target
	Value  string
}

// --- Calendar data ---

// MonthSummary is the current user's hour balance for one month.
type MonthSummary struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	WorkingDays  int        `json:"working_days"`
	LoadedHours  float64    `json:"loaded_hours"`
	WorkingHours float64    `json:"working_hours"`
	PendingHours float64    `json:"pending_hours"`
}

// DayDetail is one cell of the calendar grid.
type DayDetail struct {
	Date    string            `json:"date"`
	Weekend bool              `json:"weekend"`
	Holiday string            `json:"holiday,omitempty"`
	Hours   float64           `json:"hours"`
	Entries []model.TaskEntry `json:"entries"`
}

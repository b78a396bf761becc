package router

// Kind names a recognised command.
type Kind string

const (
	KindLoadDaily         Kind = "LOAD_DAILY"
	KindLoadBlock         Kind = "LOAD_BLOCK"
	KindEditHours         Kind = "EDIT_HOURS"
	KindDeleteSpecific    Kind = "DELETE_SPECIFIC"
	KindDeleteBulk        Kind = "DELETE_BULK"
	KindDuplicateLastWeek Kind = "DUPLICATE_LAST_WEEK"
	KindFillRestOfMonth   Kind = "FILL_REST_OF_MONTH"
	KindLeaderHours       Kind = "LEADER_HOURS"
	KindTeamSummary       Kind = "LEADER_TEAM_SUMMARY"
	KindMissingHours      Kind = "LEADER_MISSING_HOURS"
	KindHistory           Kind = "LEADER_HISTORY"
	KindMonthly           Kind = "LEADER_MONTHLY"
	KindNoHours           Kind = "LEADER_NO_HOURS"
	KindReport            Kind = "LEADER_REPORT"
)

// Intent is a classified message. Payload holds the matching usecase input:
// a timesheet.*Input for the developer commands, a report.*Input for the
// leader queries.
type Intent struct {
	Kind    Kind
	Payload any
}

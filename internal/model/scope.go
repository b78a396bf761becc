package model

import "time"

// Scope carries the caller identity and the calendar view of one request.
type Scope struct {
	SessionID string
	UserID    int
	UserName  string
	View      CalendarView
}

// CalendarView is the month currently shown to the user and the hooks to
// redraw it after a mutation.
type CalendarView interface {
	DisplayedMonth() (int, time.Month)
	RefreshCalendarView(year int, month time.Month)
	RefreshHoursSummary(year int, month time.Month)
}

// StaticView is a CalendarView pinned to one month that records refresh
// requests. Surfaces without a live calendar use it.
type StaticView struct {
	Year  int
	Month time.Month

	CalendarRefreshed bool
	SummaryRefreshed  bool
}

func (v *StaticView) DisplayedMonth() (int, time.Month) { return v.Year, v.Month }

func (v *StaticView) RefreshCalendarView(year int, month time.Month) {
	v.CalendarRefreshed = true
}

func (v *StaticView) RefreshHoursSummary(year int, month time.Month) {
	v.SummaryRefreshed = true
}

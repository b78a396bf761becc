package http

import (
	"fmt"
	"time"

	"timesheet-assistant/internal/chat"
	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/report"
	"timesheet-assistant/pkg/response"
)

// --- Request DTOs ---

// calendarView is the month the client is showing. Zero means the current
// month.
type calendarView struct {
	DisplayedYear  int `json:"displayed_year"  binding:"omitempty,min=1900,max=9999"`
	DisplayedMonth int `json:"displayed_month" binding:"omitempty,min=1,max=12"`
}

type messageReq struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text" binding:"required,max=2000"`
	calendarView
}

type confirmationReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Confirmed *bool  `json:"confirmed"  binding:"required"`
	calendarView
}

type classifyReq struct {
	Text string `json:"text" binding:"required,max=2000"`
	calendarView
}

type monthReq struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

func (r monthReq) validate() error {
	if r.Month < 0 || r.Month > 12 {
		return errInvalidMonth
	}
	return nil
}

// --- Response DTOs ---

type exportResp struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type refreshResp struct {
	Calendar bool `json:"calendar"`
	Summary  bool `json:"summary"`
}

// chatResp is everything the assistant said in reply to one request.
type chatResp struct {
	SessionID           string       `json:"session_id"`
	Messages            []string     `json:"messages"`
	PendingConfirmation string       `json:"pending_confirmation,omitempty"`
	Exports             []exportResp `json:"exports,omitempty"`
	Refresh             refreshResp  `json:"refresh"`
}

func (h *handler) newChatResp(sessionID string, t chat.Transcript, view *model.StaticView) chatResp {
	resp := chatResp{
		SessionID:           sessionID,
		Messages:            t.Messages,
		PendingConfirmation: t.Prompt,
		Refresh: refreshResp{
			Calendar: view.CalendarRefreshed,
			Summary:  view.SummaryRefreshed,
		},
	}
	if resp.Messages == nil {
		resp.Messages = []string{}
	}
	for _, e := range t.Exports {
		id := h.exports.Put(e)
		resp.Exports = append(resp.Exports, exportResp{
			ID:       id,
			Filename: e.Filename,
			URL:      fmt.Sprintf("%s/%s", exportsPath, id),
		})
	}
	return resp
}

type classifyResp struct {
	Intent  string `json:"intent,omitempty"`
	Matched bool   `json:"matched"`
	Payload any    `json:"payload,omitempty"`
}

type resetResp struct {
	SessionID string `json:"session_id"`
}

type monthSummaryResp struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Label        string  `json:"label"`
	WorkingDays  int     `json:"working_days"`
	LoadedHours  float64 `json:"loaded_hours"`
	WorkingHours float64 `json:"working_hours"`
	PendingHours float64 `json:"pending_hours"`
}

func newMonthSummaryResp(s report.MonthSummary, label string) monthSummaryResp {
	return monthSummaryResp{
		Year:         s.Year,
		Month:        int(s.Month),
		Label:        label,
		WorkingDays:  s.WorkingDays,
		LoadedHours:  s.LoadedHours,
		WorkingHours: s.WorkingHours,
		PendingHours: s.PendingHours,
	}
}

type entryResp struct {
	ID       string  `json:"id"`
	Project  string  `json:"project"`
	TaskName string  `json:"task_name"`
	Hours    float64 `json:"hours"`
	Detail   string  `json:"detail"`
}

type dayResp struct {
	Date    response.Date `json:"date"`
	Weekend bool          `json:"weekend"`
	Holiday string        `json:"holiday,omitempty"`
	Hours   float64       `json:"hours"`
	Entries []entryResp   `json:"entries"`
}

type monthDaysResp struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []dayResp `json:"days"`
}

func newMonthDaysResp(year int, month time.Month, days []report.DayDetail) monthDaysResp {
	resp := monthDaysResp{Year: year, Month: int(month), Days: make([]dayResp, 0, len(days))}
	for _, d := range days {
		date, _ := time.Parse(time.DateOnly, d.Date)
		day := dayResp{
			Date:    response.Date(date),
			Weekend: d.Weekend,
			Holiday: d.Holiday,
			Hours:   d.Hours,
			Entries: make([]entryResp, 0, len(d.Entries)),
		}
		for _, e := range d.Entries {
			day.Entries = append(day.Entries, entryResp{
				ID:       e.ID,
				Project:  e.Project,
				TaskName: e.TaskName,
				Hours:    e.Hours,
				Detail:   e.Detail,
			})
		}
		resp.Days = append(resp.Days, day)
	}
	return resp
}

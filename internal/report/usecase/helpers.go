package usecase

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/report"
	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/csvexport"
	"timesheet-assistant/pkg/datemath"
)

type userTotal struct {
	name  string
	hours float64
}

// displayName is the grouping key of an entry.
func displayName(e model.TaskEntry) string {
	if e.UserName != "" {
		return e.UserName
	}
	return fmt.Sprintf("Usuario %d", e.UserID)
}

// summarizeByUser sums hours per display name, in first-seen order.
func summarizeByUser(entries []model.TaskEntry) ([]userTotal, float64) {
	var totals []userTotal
	index := make(map[string]int)
	var total float64
	for _, e := range entries {
		name := displayName(e)
		i, ok := index[name]
		if !ok {
			i = len(totals)
			index[name] = i
			totals = append(totals, userTotal{name: name})
		}
		totals[i].hours += e.Hours
		total += e.Hours
	}
	return totals, total
}

// byHoursDesc orders totals by hours descending, then by name.
func byHoursDesc(totals []userTotal) []userTotal {
	sorted := slices.Clone(totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].hours != sorted[j].hours {
			return sorted[i].hours > sorted[j].hours
		}
		return sorted[i].name < sorted[j].name
	})
	return sorted
}

func userLines(totals []userTotal) []string {
	lines := make([]string, 0, len(totals))
	for _, t := range totals {
		lines = append(lines, fmt.Sprintf(msgUserLine, t.name, model.FormatHours(t.hours)))
	}
	return lines
}

func taskCountLine(n int) string {
	return fmt.Sprintf(msgTaskCount, n, model.Plural(n, "tarea", "tareas"), model.Plural(n, "registrada", "registradas"))
}

func rangeDisplay(r datemath.Range) string {
	return datemath.FormatDisplay(r.Start) + " al " + datemath.FormatDisplay(r.End)
}

func (uc *implUseCase) periodRange(p report.Period) datemath.Range {
	switch p {
	case report.PeriodLastWeek:
		return uc.parser.LastWeek()
	case report.PeriodNextWeek:
		return uc.parser.NextWeek()
	default:
		return uc.parser.ThisWeek()
	}
}

// loaded lists non-holiday rows with hours > 0 matching opt.
func (uc *implUseCase) loaded(ctx context.Context, opt repo.ListEntriesOptions) ([]model.TaskEntry, error) {
	opt.ExcludeHolidays = true
	opt.PositiveHours = true
	entries, err := uc.repo.ListEntries(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// userIDsByName maps lower-cased names to user ids, from both the roster
// and the names stamped on entries.
func (uc *implUseCase) userIDsByName(ctx context.Context) (map[string][]int, error) {
	ids := make(map[string][]int)
	add := func(name string, id int) {
		if name == "" || id == model.HolidayUserID {
			return
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if !slices.Contains(ids[key], id) {
			ids[key] = append(ids[key], id)
		}
	}

	roster, err := uc.repo.ListAssignments(ctx, repo.ListAssignmentsOptions{})
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	for _, a := range roster {
		add(a.UserName, a.UserID)
	}

	entries, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{ExcludeHolidays: true})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	for _, e := range entries {
		add(e.UserName, e.UserID)
	}
	return ids, nil
}

// workingDays counts weekdays in r that carry no holiday row.
func (uc *implUseCase) workingDays(ctx context.Context, r datemath.Range) (int, error) {
	holidays, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{HolidaysOnly: true, From: r.Start, To: r.End})
	if err != nil {
		return 0, fmt.Errorf("list holidays: %w", err)
	}
	off := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		off[h.StartDate] = true
	}

	n := 0
	for _, d := range datemath.DatesBetween(r) {
		if !datemath.IsWeekend(d) && !off[d] {
			n++
		}
	}
	return n, nil
}

func taskRows(entries []model.TaskEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.UserName, e.Project, e.TaskName, e.StartDate, model.FormatHours(e.Hours), e.Detail})
	}
	return rows
}

// offerTasks asks whether to download entries as a CSV named filename.
func offerTasks(message, filename string, entries []model.TaskEntry) model.Outcome {
	return offerExport(message, filename, csvexport.TaskHeader, taskRows(entries))
}

func offerExport(message, filename string, header []string, rows [][]string) model.Outcome {
	return model.Outcome{Confirmation: &model.Confirmation{
		Prompt: message,
		OnConfirm: func(ctx context.Context, sc model.Scope) (model.Reply, error) {
			data, err := csvexport.Write(header, rows)
			if err != nil {
				return model.Reply{}, err
			}
			return model.Reply{
				Messages: []string{msgExportDone},
				Export: &model.Export{
					Filename:    filename,
					ContentType: csvexport.ContentType,
					Data:        data,
				},
			}, nil
		},
		OnCancel: func(ctx context.Context, sc model.Scope) model.Reply {
			return model.NewReply(msgExportDeclined)
		},
	}}
}

func plainReply(message string) model.Outcome {
	return model.Outcome{Reply: model.NewReply(message)}
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/report"
	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/csvexport"
	"timesheet-assistant/pkg/datemath"
)

type monthTotal struct {
	key   string
	year  int
	month int
	hours float64
	tasks int
}

// History breaks down one collaborator's hours in a project by month, over
// a window ending today.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input report.HistoryInput) (model.Outcome, error) {
	byName, err := uc.userIDsByName(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.History: %v", err)
		return model.Outcome{}, err
	}
	ids := byName[strings.ToLower(strings.TrimSpace(input.Name))]
	if len(ids) == 0 {
		return model.Outcome{}, model.NewUserError(report.ErrCollaboratorNotFound, fmt.Sprintf(msgHistoryNotFound, input.Name))
	}

	r := uc.parser.ResolvePeriodWindow(input.Count, input.Unit)
	entries, err := uc.loaded(ctx, repo.ListEntriesOptions{
		UserIDs: ids,
		Project: input.Project,
		From:    r.Start,
		To:      r.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.History: %v", err)
		return model.Outcome{}, err
	}

	window := windowDisplay(input.Count, input.Unit)
	if len(entries) == 0 {
		return plainReply(fmt.Sprintf(msgHistoryEmpty, input.Name, input.Project, window, rangeDisplay(r))), nil
	}

	months, total := summarizeByMonth(entries)
	lines := make([]string, 0, len(months))
	for _, m := range months {
		lines = append(lines, fmt.Sprintf(msgHistoryLine,
			datemath.FormatMonthYear(m.year, timeMonth(m.month)),
			model.FormatHours(m.hours), m.tasks, model.Plural(m.tasks, "tarea", "tareas")))
	}

	var b strings.Builder
	fmt.Fprintf(&b, msgHistoryHeader, input.Name, input.Project, window, rangeDisplay(r))
	b.WriteString("\n\n" + strings.Join(lines, "\n"))
	b.WriteString("\n\n" + fmt.Sprintf(msgHistoryTotal, model.FormatHours(total), len(entries),
		model.Plural(len(entries), "tarea", "tareas")))
	b.WriteString("\n\n" + msgDownloadDetail)

	filename := csvexport.Filename("historial", input.Name, input.Project, csvexport.RangeName(r.Start, r.End))
	return offerTasks(b.String(), filename, entries), nil
}

// windowDisplay renders "últimos 3 meses" or "últimos 1 día".
func windowDisplay(count int, unit datemath.Unit) string {
	if unit == datemath.UnitMonths {
		return fmt.Sprintf("últimos %d %s", count, model.Plural(count, "mes", "meses"))
	}
	return fmt.Sprintf("últimos %d %s", count, model.Plural(count, "día", "días"))
}

// summarizeByMonth groups entries per calendar month, most recent first.
func summarizeByMonth(entries []model.TaskEntry) ([]monthTotal, float64) {
	index := make(map[string]int)
	var months []monthTotal
	var total float64
	for _, e := range entries {
		t, err := datemath.ParseISO(e.StartDate)
		if err != nil {
			continue
		}
		key := t.Format("2006-01")
		i, ok := index[key]
		if !ok {
			i = len(months)
			index[key] = i
			months = append(months, monthTotal{key: key, year: t.Year(), month: int(t.Month())})
		}
		months[i].hours += e.Hours
		months[i].tasks++
		total += e.Hours
	}
	sort.SliceStable(months, func(i, j int) bool { return months[i].key > months[j].key })
	return months, total
}

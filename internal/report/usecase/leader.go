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
)

// LeaderHours sums the hours of the named collaborators in a project for a
// week. Every requested name gets a line, with 0h when nothing matched.
func (uc *implUseCase) LeaderHours(ctx context.Context, sc model.Scope, input report.LeaderHoursInput) (model.Outcome, error) {
	r := uc.periodRange(input.Period)

	byName, err := uc.userIDsByName(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.LeaderHours: %v", err)
		return model.Outcome{}, err
	}

	var ids []int
	for _, n := range input.Names {
		ids = append(ids, byName[strings.ToLower(strings.TrimSpace(n))]...)
	}

	var entries []model.TaskEntry
	if len(ids) > 0 {
		entries, err = uc.loaded(ctx, repo.ListEntriesOptions{
			UserIDs: ids,
			Project: input.Project,
			From:    r.Start,
			To:      r.End,
		})
		if err != nil {
			uc.l.Errorf(ctx, "report.usecase.LeaderHours: %v", err)
			return model.Outcome{}, err
		}
	}

	totals, total := summarizeByUser(entries)
	lines := make([]string, 0, len(input.Names))
	for _, n := range input.Names {
		name, hours := n, 0.0
		for _, t := range totals {
			if strings.EqualFold(t.name, n) {
				name, hours = t.name, t.hours
				break
			}
		}
		lines = append(lines, fmt.Sprintf(msgUserLine, name, model.FormatHours(hours)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, msgLeaderHoursHeader, input.Project, input.Period.Display(), rangeDisplay(r))
	b.WriteString("\n" + strings.Join(lines, "\n"))
	b.WriteString("\n" + fmt.Sprintf(msgLeaderHoursTotal, model.FormatHours(total)))
	b.WriteString("\n\n" + msgDownloadDetail)

	filename := csvexport.Filename("horas", input.Project, csvexport.RangeName(r.Start, r.End))
	return offerTasks(b.String(), filename, entries), nil
}

// TeamSummary sums every collaborator's hours in a project for a week.
func (uc *implUseCase) TeamSummary(ctx context.Context, sc model.Scope, input report.TeamSummaryInput) (model.Outcome, error) {
	r := uc.periodRange(input.Period)

	entries, err := uc.loaded(ctx, repo.ListEntriesOptions{Project: input.Project, From: r.Start, To: r.End})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.TeamSummary: %v", err)
		return model.Outcome{}, err
	}
	if len(entries) == 0 {
		return plainReply(fmt.Sprintf(msgTeamEmpty, input.Project, input.Period.Display(), rangeDisplay(r))), nil
	}

	totals, total := summarizeByUser(entries)

	var b strings.Builder
	fmt.Fprintf(&b, msgTeamHeader, input.Project, input.Period.Display(), rangeDisplay(r))
	b.WriteString("\n" + strings.Join(userLines(byHoursDesc(totals)), "\n"))
	b.WriteString("\n" + fmt.Sprintf(msgTeamTotal, model.FormatHours(total)))
	b.WriteString("\n" + taskCountLine(len(entries)))
	b.WriteString("\n\n" + msgDownloadDetail)

	filename := csvexport.Filename("horas_equipo", input.Project, csvexport.RangeName(r.Start, r.End))
	return offerTasks(b.String(), filename, entries), nil
}

type deficit struct {
	name    string
	loaded  float64
	missing float64
}

// MissingHours lists collaborators with entries in the project whose week
// total is below the expected working hours.
func (uc *implUseCase) MissingHours(ctx context.Context, sc model.Scope, input report.MissingHoursInput) (model.Outcome, error) {
	r := uc.periodRange(input.Period)

	entries, err := uc.loaded(ctx, repo.ListEntriesOptions{Project: input.Project, From: r.Start, To: r.End})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.MissingHours: %v", err)
		return model.Outcome{}, err
	}
	days, err := uc.workingDays(ctx, r)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.MissingHours: %v", err)
		return model.Outcome{}, err
	}
	expected := float64(days) * uc.cfg.HoursPerDay

	totals, _ := summarizeByUser(entries)
	var missing []deficit
	var totalMissing float64
	for _, t := range totals {
		m := expected - t.hours
		if m <= 0 {
			continue
		}
		missing = append(missing, deficit{name: t.name, loaded: t.hours, missing: m})
		totalMissing += m
	}

	if len(missing) == 0 {
		return plainReply(fmt.Sprintf(msgMissingAllDone, input.Project, input.Period.Display(), rangeDisplay(r),
			days, model.FormatHours(expected))), nil
	}

	sort.SliceStable(missing, func(i, j int) bool { return missing[i].missing > missing[j].missing })

	lines := make([]string, 0, len(missing))
	for _, d := range missing {
		lines = append(lines, fmt.Sprintf(msgMissingLine, d.name, model.FormatHours(d.loaded), model.FormatHours(d.missing)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, msgMissingHeader, input.Project, input.Period.Display(), rangeDisplay(r))
	b.WriteString("\n" + fmt.Sprintf(msgMissingDays, days, model.FormatHours(expected)))
	b.WriteString("\n\n" + strings.Join(lines, "\n"))
	b.WriteString("\n\n" + fmt.Sprintf(msgMissingTotal, model.FormatHours(totalMissing)))
	b.WriteString("\n\n" + msgDownloadDetail)

	filename := csvexport.Filename("horas_faltantes", input.Project, csvexport.RangeName(r.Start, r.End))
	return offerTasks(b.String(), filename, entries), nil
}

// NoHours lists the members assigned to a project who loaded nothing in it
// during the week.
func (uc *implUseCase) NoHours(ctx context.Context, sc model.Scope, input report.NoHoursInput) (model.Outcome, error) {
	r := uc.periodRange(input.Period)

	members, err := uc.repo.ListAssignments(ctx, repo.ListAssignmentsOptions{Project: input.Project})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.NoHours.ListAssignments: %v", err)
		return model.Outcome{}, fmt.Errorf("list assignments: %w", err)
	}

	entries, err := uc.loaded(ctx, repo.ListEntriesOptions{Project: input.Project, From: r.Start, To: r.End})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.NoHours: %v", err)
		return model.Outcome{}, err
	}
	loaded := make(map[int]bool, len(entries))
	for _, e := range entries {
		loaded[e.UserID] = true
	}

	var idle []model.Assignment
	for _, m := range members {
		if !loaded[m.UserID] {
			idle = append(idle, m)
		}
	}

	if len(idle) == 0 {
		return plainReply(fmt.Sprintf(msgNoHoursAllDone, input.Project, input.Period.Display(), rangeDisplay(r))), nil
	}

	lines := make([]string, 0, len(idle))
	rows := make([][]string, 0, len(idle))
	span := r.Start + " a " + r.End
	for _, m := range idle {
		lines = append(lines, fmt.Sprintf(msgNameLine, m.UserName))
		rows = append(rows, []string{m.UserName, input.Project, span, "0"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, msgNoHoursHeader, input.Project, input.Period.Display(), rangeDisplay(r))
	b.WriteString("\n" + strings.Join(lines, "\n"))
	b.WriteString("\n\n" + msgDownloadListing)

	filename := csvexport.Filename("sin_horas", input.Project, csvexport.RangeName(r.Start, r.End))
	return offerExport(b.String(), filename, csvexport.RosterHeader, rows), nil
}

package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/report"
	repo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/csvexport"
	"timesheet-assistant/pkg/datemath"
)

func timeMonth(m int) time.Month { return time.Month(m) }

// Monthly totals the team's hours in a project for one calendar month.
// Year 0 means the displayed year.
func (uc *implUseCase) Monthly(ctx context.Context, sc model.Scope, input report.MonthlyInput) (model.Outcome, error) {
	if input.Month < time.January || input.Month > time.December {
		return model.Outcome{}, report.ErrInvalidMonth
	}
	year := input.Year
	if year == 0 {
		year = uc.displayedYear(sc)
	}

	r := datemath.MonthRange(year, input.Month)
	entries, err := uc.loaded(ctx, repo.ListEntriesOptions{Project: input.Project, From: r.Start, To: r.End})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Monthly: %v", err)
		return model.Outcome{}, err
	}

	label := datemath.FormatMonthYear(year, input.Month)
	if len(entries) == 0 {
		return plainReply(fmt.Sprintf(msgMonthlyEmpty, input.Project, label)), nil
	}

	totals, total := summarizeByUser(entries)

	var b strings.Builder
	fmt.Fprintf(&b, msgMonthlyHeader, input.Project, label)
	b.WriteString("\n" + strings.Join(userLines(byHoursDesc(totals)), "\n"))
	b.WriteString("\n" + fmt.Sprintf(msgTeamTotal, model.FormatHours(total)))
	b.WriteString("\n" + taskCountLine(len(entries)))
	b.WriteString("\n\n" + msgDownloadDetail)

	filename := csvexport.Filename("horas_mensuales", input.Project, fmt.Sprintf("%d_%02d", year, int(input.Month)))
	return offerTasks(b.String(), filename, entries), nil
}

// Report summarizes every loaded hour of a cost center, a project or a
// leader's team.
func (uc *implUseCase) Report(ctx context.Context, sc model.Scope, input report.ReportInput) (model.Outcome, error) {
	var (
		opt    repo.ListEntriesOptions
		label  string
		prefix string
	)

	switch input.Target {
	case report.TargetCostCenter:
		opt.CostCenter = input.Value
		label = fmt.Sprintf(msgReportCostCenter, input.Value)
		prefix = "reporte_cc"
	case report.TargetProject:
		opt.Project = input.Value
		label = fmt.Sprintf(msgReportProject, input.Value)
		prefix = "reporte_proyecto"
	case report.TargetTeam:
		ids, err := uc.teamMembers(ctx, input.Value)
		if err != nil {
			return model.Outcome{}, err
		}
		opt.UserIDs = ids
		label = fmt.Sprintf(msgReportTeam, input.Value)
		prefix = "reporte_equipo"
	default:
		return model.Outcome{}, fmt.Errorf("unknown report target %q", input.Target)
	}

	entries, err := uc.loaded(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Report: %v", err)
		return model.Outcome{}, err
	}
	if len(entries) == 0 {
		return plainReply(fmt.Sprintf(msgReportEmpty, label)), nil
	}

	totals, total := summarizeByUser(entries)

	var b strings.Builder
	fmt.Fprintf(&b, msgReportHeader, label)
	b.WriteString("\n" + strings.Join(userLines(byHoursDesc(totals)), "\n"))
	b.WriteString("\n" + fmt.Sprintf(msgReportTotal, model.FormatHours(total)))
	b.WriteString("\n" + taskCountLine(len(entries)))
	b.WriteString("\n\n" + msgDownloadDetail)

	return offerTasks(b.String(), csvexport.Filename(prefix, input.Value), entries), nil
}

// teamMembers resolves a leader by roster name and returns the ids of their
// direct reports plus the leader's own.
func (uc *implUseCase) teamMembers(ctx context.Context, leader string) ([]int, error) {
	leaders, err := uc.repo.ListAssignments(ctx, repo.ListAssignmentsOptions{UserName: leader})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.teamMembers.ListAssignments: %v", err)
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	var leaderIDs []int
	for _, a := range leaders {
		if !slices.Contains(leaderIDs, a.UserID) {
			leaderIDs = append(leaderIDs, a.UserID)
		}
	}
	if len(leaderIDs) == 0 {
		return nil, model.NewUserError(report.ErrLeaderNotFound, fmt.Sprintf(msgReportLeaderNotFound, leader))
	}

	team, err := uc.repo.ListAssignments(ctx, repo.ListAssignmentsOptions{LeaderUserIDs: leaderIDs})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.teamMembers.ListAssignments: %v", err)
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if len(team) == 0 {
		return nil, model.NewUserError(report.ErrNoTeam, fmt.Sprintf(msgReportNoTeam, leader))
	}

	ids := slices.Clone(leaderIDs)
	for _, a := range team {
		if !slices.Contains(ids, a.UserID) {
			ids = append(ids, a.UserID)
		}
	}
	return ids, nil
}

func (uc *implUseCase) displayedYear(sc model.Scope) int {
	if sc.View != nil {
		y, _ := sc.View.DisplayedMonth()
		return y
	}
	return uc.parser.Today().Year()
}

package router

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/report"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/pkg/datemath"
)

// Classify runs the matchers in order and returns the first hit.
func (r *IntentRouter) Classify(ctx context.Context, text string, sc model.Scope) (Intent, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Intent{}, false
	}

	year := r.parser.Today().Year()
	if sc.View != nil {
		year, _ = sc.View.DisplayedMonth()
	}

	for _, m := range r.matchers {
		if intent, ok := m(text, year); ok {
			r.l.Debugf(ctx, "%s: classified as %s", logPrefixClassify, intent.Kind)
			return intent, true
		}
	}
	r.l.Debugf(ctx, "%s: no match", logPrefixClassify)
	return Intent{}, false
}

func (r *IntentRouter) matchLoadDaily(text string, year int) (Intent, bool) {
	for _, re := range loadDailyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		hours, ok := parseHours(m[1])
		if !ok {
			continue
		}
		ref := strings.TrimSpace(m[4])
		date, ok := r.parser.ResolveDateReference(ref, year)
		if !ok {
			continue
		}
		return Intent{Kind: KindLoadDaily, Payload: timesheet.LoadDailyInput{
			Hours:    hours,
			TaskName: strings.TrimSpace(m[2]),
			Project:  strings.TrimSpace(m[3]),
			DateRef:  trimPunct(ref),
			Date:     date,
		}}, true
	}
	return Intent{}, false
}

func (r *IntentRouter) matchLoadBlock(text string, _ int) (Intent, bool) {
	for _, re := range loadBlockPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		hours, ok := parseHours(m[1])
		if !ok {
			continue
		}
		start, end := strings.ToLower(m[4]), strings.ToLower(m[5])
		dates, ok := r.parser.ResolveDayNameRange(start, end)
		if !ok {
			continue
		}
		return Intent{Kind: KindLoadBlock, Payload: timesheet.LoadBlockInput{
			Hours:    hours,
			TaskName: strings.TrimSpace(m[2]),
			Project:  strings.TrimSpace(m[3]),
			StartDay: start,
			EndDay:   end,
			Dates:    dates,
		}}, true
	}
	return Intent{}, false
}

func (r *IntentRouter) matchEditHours(text string, year int) (Intent, bool) {
	for _, re := range editPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		hours, ok := parseHours(m[4])
		if !ok {
			continue
		}
		ref := strings.TrimSpace(m[2])
		date, ok := r.parser.ResolveDateReference(ref, year)
		if !ok {
			continue
		}
		return Intent{Kind: KindEditHours, Payload: timesheet.EditHoursInput{
			TaskName: strings.TrimSpace(m[1]),
			Project:  strings.TrimSpace(m[3]),
			DateRef:  ref,
			Date:     date,
			Hours:    hours,
		}}, true
	}
	return Intent{}, false
}

func (r *IntentRouter) matchDeleteSpecific(text string, year int) (Intent, bool) {
	for _, re := range deleteSpecificPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		ref := strings.TrimSpace(m[2])
		date, ok := r.parser.ResolveDateReference(ref, year)
		if !ok {
			continue
		}
		return Intent{Kind: KindDeleteSpecific, Payload: timesheet.DeleteSpecificInput{
			TaskName: strings.TrimSpace(m[1]),
			Project:  strings.TrimSpace(m[3]),
			DateRef:  ref,
			Date:     date,
		}}, true
	}
	return Intent{}, false
}

func (r *IntentRouter) matchDeleteBulk(text string, year int) (Intent, bool) {
	for _, re := range deleteBulkPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		period := strings.ToLower(strings.TrimSpace(m[1]))

		var dates []string
		if period == "esta semana" || period == "la semana actual" {
			dates = datemath.DatesBetween(r.parser.ThisWeek())
		} else if date, ok := r.parser.ResolveDateReference(period, year); ok {
			dates = []string{date}
		}
		if len(dates) == 0 {
			continue
		}
		return Intent{Kind: KindDeleteBulk, Payload: timesheet.DeleteBulkInput{
			Period: period,
			Dates:  dates,
		}}, true
	}
	return Intent{}, false
}

func (r *IntentRouter) matchDuplicateLastWeek(text string, _ int) (Intent, bool) {
	m := duplicatePattern.FindStringSubmatch(text)
	if m == nil {
		return Intent{}, false
	}
	return Intent{Kind: KindDuplicateLastWeek, Payload: timesheet.DuplicateLastWeekInput{
		Project: strings.TrimSpace(m[1]),
	}}, true
}

func (r *IntentRouter) matchFillRestOfMonth(text string, _ int) (Intent, bool) {
	m := fillPattern.FindStringSubmatch(text)
	if m == nil {
		return Intent{}, false
	}
	return Intent{Kind: KindFillRestOfMonth, Payload: timesheet.FillRestOfMonthInput{
		Project: strings.TrimSpace(m[1]),
	}}, true
}

func (r *IntentRouter) matchLeaderHours(text string, _ int) (Intent, bool) {
	i, m := matchPeriod(leaderHoursPatterns, text)
	if m == nil {
		return Intent{}, false
	}
	names := splitNames(m[1])
	project := strings.TrimSpace(m[2])
	if len(names) == 0 || project == "" {
		return Intent{}, false
	}
	return Intent{Kind: KindLeaderHours, Payload: report.LeaderHoursInput{
		Names:   names,
		Project: project,
		Period:  periods[i],
	}}, true
}

func (r *IntentRouter) matchTeamSummary(text string, _ int) (Intent, bool) {
	i, m := matchPeriod(teamSummaryPatterns, text)
	if m == nil {
		return Intent{}, false
	}
	return Intent{Kind: KindTeamSummary, Payload: report.TeamSummaryInput{
		Project: strings.TrimSpace(m[1]),
		Period:  periods[i],
	}}, true
}

func (r *IntentRouter) matchMissingHours(text string, _ int) (Intent, bool) {
	i, m := matchPeriod(missingHoursPatterns, text)
	if m == nil {
		return Intent{}, false
	}
	return Intent{Kind: KindMissingHours, Payload: report.MissingHoursInput{
		Project: strings.TrimSpace(m[1]),
		Period:  periods[i],
	}}, true
}

func (r *IntentRouter) matchHistory(text string, _ int) (Intent, bool) {
	for _, re := range historyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[3])
		if err != nil || count <= 0 {
			continue
		}
		name, project := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if name == "" || project == "" {
			continue
		}
		unit := datemath.UnitDays
		if strings.HasPrefix(strings.ToLower(m[4]), "mes") {
			unit = datemath.UnitMonths
		}
		return Intent{Kind: KindHistory, Payload: report.HistoryInput{
			Name:    name,
			Project: project,
			Count:   count,
			Unit:    unit,
		}}, true
	}
	return Intent{}, false
}

func (r *IntentRouter) matchMonthly(text string, year int) (Intent, bool) {
	m := monthlyPattern.FindStringSubmatch(text)
	if m == nil {
		return Intent{}, false
	}
	month, ok := datemath.ParseMonthName(m[1])
	if !ok {
		return Intent{}, false
	}
	if m[2] != "" {
		if y, err := strconv.Atoi(m[2]); err == nil && y > 1900 {
			year = y
		}
	}
	project := strings.TrimSpace(m[3])
	if project == "" {
		return Intent{}, false
	}
	return Intent{Kind: KindMonthly, Payload: report.MonthlyInput{
		Project: project,
		Year:    year,
		Month:   month,
	}}, true
}

func (r *IntentRouter) matchNoHours(text string, _ int) (Intent, bool) {
	i, m := matchPeriod(noHoursPatterns, text)
	if m == nil {
		return Intent{}, false
	}
	return Intent{Kind: KindNoHours, Payload: report.NoHoursInput{
		Project: strings.TrimSpace(m[1]),
		Period:  periods[i],
	}}, true
}

func (r *IntentRouter) matchReport(text string, _ int) (Intent, bool) {
	targets := []struct {
		re     *regexp.Regexp
		target report.Target
	}{
		{reportCostCenterPattern, report.TargetCostCenter},
		{reportProjectPattern, report.TargetProject},
		{reportTeamPattern, report.TargetTeam},
	}
	for _, t := range targets {
		if m := t.re.FindStringSubmatch(text); m != nil {
			return Intent{Kind: KindReport, Payload: report.ReportInput{
				Target: t.target,
				Value:  strings.TrimSpace(m[1]),
			}}, true
		}
	}
	return Intent{}, false
}

// periods lines up with the this/last/next week pattern triples.
var periods = []report.Period{report.PeriodThisWeek, report.PeriodLastWeek, report.PeriodNextWeek}

func matchPeriod(patterns []*regexp.Regexp, text string) (int, []string) {
	for i, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return i, m
		}
	}
	return -1, nil
}

func splitNames(raw string) []string {
	var names []string
	for _, n := range nameSplitRe.Split(strings.TrimSpace(raw), -1) {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// parseHours accepts "8", "2.5" and "2,5".
func parseHours(s string) (float64, bool) {
	h, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return h, true
}

func trimPunct(s string) string {
	return strings.TrimRight(s, ".!?")
}

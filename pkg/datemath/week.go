package datemath

import "time"

// DaysInMonth returns the number of days of month m in year.
func DaysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// mondayOf returns the Monday of the week containing t. Sunday belongs to the
// week that started six days earlier.
func mondayOf(t time.Time) time.Time {
	day := int(t.Weekday())
	offset := 1 - day
	if day == 0 {
		offset = -6
	}
	return time.Date(t.Year(), t.Month(), t.Day()+offset, 0, 0, 0, 0, t.Location())
}

// WeekRange returns the Monday-to-Sunday range containing ref.
func WeekRange(ref time.Time) Range {
	monday := mondayOf(ref)
	return Range{Start: FormatISO(monday), End: FormatISO(monday.AddDate(0, 0, 6))}
}

// ThisWeek is the week containing today.
func (p *Parser) ThisWeek() Range {
	return WeekRange(p.Today())
}

// LastWeek is the week before ThisWeek.
func (p *Parser) LastWeek() Range {
	return WeekRange(mondayOf(p.Today()).AddDate(0, 0, -7))
}

// NextWeek is the week after ThisWeek.
func (p *Parser) NextWeek() Range {
	return WeekRange(mondayOf(p.Today()).AddDate(0, 0, 7))
}

// NextMonday returns the Monday after the current week.
func (p *Parser) NextMonday() time.Time {
	return mondayOf(p.Today()).AddDate(0, 0, 7)
}

// ResolveDayNameRange expands a weekday span such as "lunes".."viernes" into
// dates of the current week. Days are numbered domingo=0..sábado=6 and
// placed at monday+(n-1). When start > end the span wraps: start..sábado,
// then lunes..end.
func (p *Parser) ResolveDayNameRange(startName, endName string) ([]string, bool) {
	start, ok := ParseDayName(startName)
	if !ok {
		return nil, false
	}
	end, ok := ParseDayName(endName)
	if !ok {
		return nil, false
	}

	monday := mondayOf(p.Today())
	var dates []string
	add := func(n int) {
		dates = append(dates, FormatISO(monday.AddDate(0, 0, n-1)))
	}

	if start > end {
		for n := int(start); n <= int(time.Saturday); n++ {
			add(n)
		}
		for n := int(time.Monday); n <= int(end); n++ {
			add(n)
		}
		return dates, true
	}

	for n := int(start); n <= int(end); n++ {
		add(n)
	}
	return dates, true
}

// ResolvePeriodWindow returns the range ending today that covers the last
// count months (snapped to the 1st) or the last count days.
func (p *Parser) ResolvePeriodWindow(count int, unit Unit) Range {
	today := p.Today()
	var start time.Time
	switch unit {
	case UnitMonths:
		// Day 1 keeps the month arithmetic from overflowing.
		start = time.Date(today.Year(), today.Month()-time.Month(count), 1, 0, 0, 0, 0, p.location)
	default:
		start = today.AddDate(0, 0, -count)
	}
	return Range{Start: FormatISO(start), End: FormatISO(today)}
}

// DatesBetween lists every ISO date in r, inclusive.
func DatesBetween(r Range) []string {
	start, err := ParseISO(r.Start)
	if err != nil {
		return nil
	}
	end, err := ParseISO(r.End)
	if err != nil {
		return nil
	}
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatISO(d))
	}
	return dates
}

// MonthRange returns the first and last day of a month.
func MonthRange(year int, m time.Month) Range {
	first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: FormatISO(first), End: FormatISO(first.AddDate(0, 1, -1))}
}

// IsWeekend reports whether the ISO date falls on Saturday or Sunday.
func IsWeekend(iso string) bool {
	t, err := ParseISO(iso)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// InMonth reports whether the ISO date belongs to year/month.
func InMonth(iso string, year int, m time.Month) bool {
	t, err := ParseISO(iso)
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == m
}

// InYear reports whether the ISO date belongs to year.
func InYear(iso string, year int) bool {
	t, err := ParseISO(iso)
	if err != nil {
		return false
	}
	return t.Year() == year
}

package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	absoluteFullRe = regexp.MustCompile(`(?i)(?:el\s+)?(\d{1,2})\s+de\s+(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre)`)
	absoluteAbbrRe = regexp.MustCompile(`(?i)(?:el\s+)?(\d{1,2})\s+de\s+(ene|feb|mar|abr|may|jun|jul|ago|sep|oct|nov|dic)`)
)

// Parser resolves Spanish date expressions against a clock in a fixed timezone.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Argentina/Buenos_Aires"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// WithClock returns a copy of p that reads "now" from clock.
func (p *Parser) WithClock(clock func() time.Time) *Parser {
	cp := *p
	cp.now = clock
	return &cp
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns midnight of the current day in the parser's timezone.
func (p *Parser) Today() time.Time {
	return p.startOfDay(p.now())
}

// ResolveRelative handles hoy, ayer, anteayer, mañana and friends.
func (p *Parser) ResolveRelative(text string) (time.Time, bool) {
	today := p.Today()
	switch normalize(text) {
	case "hoy", "hoy mismo":
		return today, true
	case "ayer":
		return today.AddDate(0, 0, -1), true
	case "antes de ayer", "anteayer":
		return today.AddDate(0, 0, -2), true
	case "mañana":
		return today.AddDate(0, 0, 1), true
	case "pasado mañana":
		return today.AddDate(0, 0, 2), true
	}
	return time.Time{}, false
}

// ResolveAbsolute handles "[el] 13 de noviembre" and "13 de nov". The year is
// always displayedYear. Days outside the month fail.
func (p *Parser) ResolveAbsolute(text string, displayedYear int) (time.Time, bool) {
	lower := normalize(text)
	for _, re := range []*regexp.Regexp{absoluteFullRe, absoluteAbbrRe} {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		day, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		month, ok := monthsByName[m[2]]
		if !ok {
			month, ok = monthsByAbbr[m[2]]
		}
		if !ok {
			return time.Time{}, false
		}
		if day < 1 || day > DaysInMonth(displayedYear, month) {
			return time.Time{}, false
		}
		return time.Date(displayedYear, month, day, 0, 0, 0, 0, p.location), true
	}
	return time.Time{}, false
}

// ResolveWeekday maps "martes" or "el martes" to that day of the current
// Monday-to-Sunday week.
func (p *Parser) ResolveWeekday(text string) (time.Time, bool) {
	name := strings.TrimPrefix(normalize(text), "el ")
	day, ok := ParseDayName(name)
	if !ok {
		return time.Time{}, false
	}
	monday := mondayOf(p.Today())
	offset := int(day) - 1
	if day == time.Sunday {
		offset = 6
	}
	return monday.AddDate(0, 0, offset), true
}

// ResolveDateReference tries relative, absolute and weekday forms in that
// order and returns the first hit as an ISO date.
func (p *Parser) ResolveDateReference(text string, displayedYear int) (string, bool) {
	if t, ok := p.ResolveRelative(text); ok {
		return FormatISO(t), true
	}
	if t, ok := p.ResolveAbsolute(text, displayedYear); ok {
		return FormatISO(t), true
	}
	if t, ok := p.ResolveWeekday(text); ok {
		return FormatISO(t), true
	}
	return "", false
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

func normalize(text string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(text)), ".!")
}

// FormatISO formats t as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseISO parses a YYYY-MM-DD date at UTC midnight.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

package datemath

import (
	"fmt"
	"strings"
	"time"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var monthsByName = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August, "septiembre": time.September,
	"setiembre": time.September, "octubre": time.October,
	"noviembre": time.November, "diciembre": time.December,
}

var monthsByAbbr = map[string]time.Month{
	"ene": time.January, "feb": time.February, "mar": time.March,
	"abr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "ago": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dic": time.December,
}

var daysByName = map[string]time.Weekday{
	"lunes": time.Monday, "lun": time.Monday,
	"martes": time.Tuesday, "mar": time.Tuesday,
	"miércoles": time.Wednesday, "miercoles": time.Wednesday, "mié": time.Wednesday, "mie": time.Wednesday,
	"jueves": time.Thursday, "jue": time.Thursday,
	"viernes": time.Friday, "vie": time.Friday,
	"sábado": time.Saturday, "sabado": time.Saturday, "sáb": time.Saturday, "sab": time.Saturday,
	"domingo": time.Sunday, "dom": time.Sunday,
}

// MonthName returns the capitalized Spanish name of m ("Noviembre").
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// ParseMonthName accepts full Spanish month names, including "setiembre".
func ParseMonthName(name string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ParseDayName accepts Spanish weekday names, with or without accents, and
// their short forms.
func ParseDayName(name string) (time.Weekday, bool) {
	d, ok := daysByName[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// FormatDisplay renders an ISO date as "13 de Noviembre". Invalid input is
// returned unchanged.
func FormatDisplay(iso string) string {
	t, err := ParseISO(iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d de %s", t.Day(), MonthName(t.Month()))
}

// FormatMonthYear renders "Noviembre 2025".
func FormatMonthYear(year int, m time.Month) string {
	return fmt.Sprintf("%s %d", MonthName(m), year)
}

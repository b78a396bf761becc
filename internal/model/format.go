package model

import "strconv"

// FormatHours renders hours without trailing zeros: 8, 2.5, 0.75.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// Plural picks the singular form only for exactly one item.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

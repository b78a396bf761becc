package router

import "regexp"

const logPrefixClassify = "internal.router.Classify"

const (
	hoursRe  = `(\d+(?:[.,]\d+)?)`
	hUnitRe  = `\s*(?:h|horas?)\b`
	loadRe   = `(?i)carg[áa]\s+` + hoursRe + hUnitRe
	showRe   = `(?i)m(?:ue|o)strame\s+`
	whoRe    = `(?i)¿?qui[ée]n\s+no\s+carg[óo]\s+`
	weekEnd  = `\??\.?$`
	thisWeek = `\s+esta\s+semana`
	lastWeek = `\s+(?:la\s+)?semana\s+pasada`
	nextWeek = `\s+(?:la\s+)?semana\s+que\s+viene`
)

var (
	loadDailyPatterns = []*regexp.Regexp{
		regexp.MustCompile(loadRe + `\s+de\s+(.+?)\s+(?:al|en)\s+proyecto\s+(.+?)\s+(.+)$`),
	}

	loadBlockPatterns = []*regexp.Regexp{
		regexp.MustCompile(loadRe + `\s+de\s+(.+?)\s+(?:al|en)\s+proyecto\s+(.+?)\s+de\s+(\p{L}+)\s+a\s+(\p{L}+)`),
	}

	// "de" is tried before "del" so "del 13 de noviembre" falls through to
	// the second pattern once the date fails to resolve.
	editPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:cambi|edit)[áa]\s+las\s+horas\s+de\s+la\s+tarea\s+(.+?)\s+de\s+(.+?)\s+en\s+proyecto\s+(.+?)\s+a\s+` + hoursRe + hUnitRe),
		regexp.MustCompile(`(?i)(?:cambi|edit)[áa]\s+las\s+horas\s+de\s+la\s+tarea\s+(.+?)\s+del\s+(.+?)\s+en\s+proyecto\s+(.+?)\s+a\s+` + hoursRe + hUnitRe),
	}

	deleteSpecificPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:elimin|borr)[áa]\s+las\s+horas\s+de\s+la\s+tarea\s+(.+?)\s+del\s+(.+?)\s+en\s+proyecto\s+(.+?)\.?$`),
		regexp.MustCompile(`(?i)(?:elimin|borr)[áa]\s+las\s+horas\s+de\s+la\s+tarea\s+(.+?)\s+de\s+(.+?)\s+en\s+proyecto\s+(.+?)\.?$`),
	}

	deleteBulkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:elimin|borr)[áa]\s+todas\s+las\s+horas\s+de\s+todas\s+las\s+tareas\s+de\s+(.+?)\.?$`),
		regexp.MustCompile(`(?i)(?:elimin|borr)[áa]\s+todas\s+las\s+horas\s+de\s+(.+?)\.?$`),
	}

	duplicatePattern = regexp.MustCompile(`(?i)cop[ií][áa]\s+(?:mis|las)\s+horas\s+de\s+la\s+semana\s+pasada\s+en\s+proyecto\s+(.+?)\.?$`)

	fillPattern = regexp.MustCompile(`(?i)complet[áa]\s+el\s+mes(?:\s+restante)?\s+con\s+las\s+horas\s+del\s+proyecto\s+(.+?)\s+de\s+esta\s+semana\.?$`)

	leaderHoursPatterns = []*regexp.Regexp{
		regexp.MustCompile(showRe + `las\s+horas\s+de\s+(.+?)\s+en\s+proyecto\s+(.+?)` + thisWeek + `\.?$`),
		regexp.MustCompile(showRe + `las\s+horas\s+de\s+(.+?)\s+en\s+proyecto\s+(.+?)` + lastWeek + `\.?$`),
		regexp.MustCompile(showRe + `las\s+horas\s+de\s+(.+?)\s+en\s+proyecto\s+(.+?)` + nextWeek + `\.?$`),
	}

	teamSummaryPatterns = []*regexp.Regexp{
		regexp.MustCompile(showRe + `todas\s+las\s+horas\s+cargadas\s+en\s+proyecto\s+(.+?)\s+de` + thisWeek + `\.?$`),
		regexp.MustCompile(showRe + `todas\s+las\s+horas\s+cargadas\s+en\s+proyecto\s+(.+?)\s+de` + lastWeek + `\.?$`),
		regexp.MustCompile(showRe + `todas\s+las\s+horas\s+cargadas\s+en\s+proyecto\s+(.+?)\s+de` + nextWeek + `\.?$`),
	}

	missingHoursPatterns = []*regexp.Regexp{
		regexp.MustCompile(whoRe + `todas\s+las\s+horas\s+en\s+proyecto\s+(.+?)` + thisWeek + weekEnd),
		regexp.MustCompile(whoRe + `todas\s+las\s+horas\s+en\s+proyecto\s+(.+?)` + lastWeek + weekEnd),
		regexp.MustCompile(whoRe + `todas\s+las\s+horas\s+en\s+proyecto\s+(.+?)` + nextWeek + weekEnd),
	}

	historyPatterns = []*regexp.Regexp{
		regexp.MustCompile(showRe + `lo\s+que\s+carg[óo]\s+(.+?)\s+en\s+(?:el\s+)?proyecto\s+(.+?)\s+en\s+los\s+[úu]ltimos\s+(\d+)\s+(mes(?:es)?|d[ií]as?)\.?$`),
	}

	monthlyPattern = regexp.MustCompile(showRe + `total\s+de\s+horas\s+de\s+(\p{L}+)(?:\s+de\s+(\d{4}))?\s+en\s+proyecto\s+(.+?)\.?$`)

	noHoursPatterns = []*regexp.Regexp{
		regexp.MustCompile(whoRe + `nada\s+en\s+proyecto\s+(.+?)` + thisWeek + weekEnd),
		regexp.MustCompile(whoRe + `nada\s+en\s+proyecto\s+(.+?)` + lastWeek + weekEnd),
		regexp.MustCompile(whoRe + `nada\s+en\s+proyecto\s+(.+?)` + nextWeek + weekEnd),
	}

	reportCostCenterPattern = regexp.MustCompile(`(?i)gener[áa]me\s+un\s+reporte\s+del\s+centro\s+de\s+costo\s+(.+?)\.?$`)
	reportProjectPattern    = regexp.MustCompile(`(?i)gener[áa]me\s+un\s+reporte\s+del\s+proyecto\s+(.+?)\.?$`)
	reportTeamPattern       = regexp.MustCompile(`(?i)gener[áa]me\s+un\s+reporte\s+del\s+equipo\s+de\s+(.+?)\.?$`)

	nameSplitRe = regexp.MustCompile(`(?i)\s*,\s*|\s+y\s+`)
)

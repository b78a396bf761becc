// Package csvexport shapes tabular report data into downloadable CSV files.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"
)

// ContentType is sent with every export.
const ContentType = "text/csv; charset=utf-8"

var (
	// TaskHeader is the per-task detail layout.
	TaskHeader = []string{"Usuario", "Proyecto", "Tarea", "Fecha", "Horas", "Detalle"}
	// RosterHeader is the layout for members without hours.
	RosterHeader = []string{"Usuario", "Proyecto", "Rango", "HorasCargadas"}
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Write renders header and rows as RFC 4180 CSV with "\n" line endings.
func Write(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = false

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csvexport: write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csvexport: write rows: %w", err)
	}

	// WriteAll terminates the last record; the download format does not.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Slug replaces every whitespace run with "_".
func Slug(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "_")
}

// RangeName renders "<start>_a_<end>".
func RangeName(start, end string) string {
	return start + "_a_" + end
}

// Filename joins prefix and slugged parts with "_" and adds ".csv".
func Filename(prefix string, parts ...string) string {
	all := make([]string, 0, len(parts)+1)
	all = append(all, prefix)
	for _, p := range parts {
		all = append(all, Slug(p))
	}
	return strings.Join(all, "_") + ".csv"
}

package datemath

// ISOLayout is the storage format for every calendar date.
const ISOLayout = "2006-01-02"

// Range is an inclusive span of ISO dates. Start <= End.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether the ISO date d falls inside r.
func (r Range) Contains(d string) bool {
	return d >= r.Start && d <= r.End
}

// Unit is the granularity of a look-back window.
type Unit string

const (
	UnitMonths Unit = "months"
	UnitDays   Unit = "days"
)

package holiday

import "time"

// ImportInput bounds the import window. To is exclusive.
type ImportInput struct {
	From time.Time
	To   time.Time
}

// ImportOutput counts the holiday dates seen in the window.
type ImportOutput struct {
	Inserted []string
	Skipped  []string
}

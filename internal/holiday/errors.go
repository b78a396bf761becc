package holiday

import "errors"

var (
	ErrInvalidWindow   = errors.New("import window is empty")
	ErrCalendarFailure = errors.New("failed to list holiday calendar")
)

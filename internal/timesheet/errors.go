package timesheet

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoEntriesFound  = errors.New("no entries found")
	ErrHolidayConflict = errors.New("date is a holiday")
	ErrNoWeeksLeft     = errors.New("no weeks left in month")
	ErrInvalidHours    = errors.New("invalid hours")
)

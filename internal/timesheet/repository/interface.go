package repository

import (
	"context"

	"timesheet-assistant/internal/model"
)

// Repository is the composed interface for the timesheet data store.
type Repository interface {
	EntryRepository
	AssignmentRepository
}

// EntryRepository defines all data access methods for timesheet rows,
// holiday rows included.
type EntryRepository interface {
	InsertEntry(ctx context.Context, opt InsertEntryOptions) (model.TaskEntry, error)
	FindEntry(ctx context.Context, opt FindEntryOptions) (model.TaskEntry, error)
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.TaskEntry, error)
	UpdateEntryHours(ctx context.Context, id string, hours float64) (model.TaskEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	FindHoliday(ctx context.Context, date string) (model.TaskEntry, error)
	SeedEntries(ctx context.Context, entries []model.TaskEntry) error
}

// AssignmentRepository reads the static project roster.
type AssignmentRepository interface {
	ListAssignments(ctx context.Context, opt ListAssignmentsOptions) ([]model.Assignment, error)
	SeedAssignments(ctx context.Context, assignments []model.Assignment) error
}

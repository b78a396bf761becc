package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"timesheet-assistant/internal/model"
	repo "timesheet-assistant/internal/timesheet/repository"
)

// InsertEntry appends a row and returns it with its minted ids.
func (r *implRepository) InsertEntry(ctx context.Context, opt repo.InsertEntryOptions) (model.TaskEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	legacyID := opt.LegacyID
	if legacyID == 0 {
		legacyID = r.maxLegacyID + 1
	}
	endDate := opt.EndDate
	if endDate == "" {
		endDate = opt.StartDate
	}

	e := model.TaskEntry{
		ID:         uuid.NewString(),
		LegacyID:   legacyID,
		UserID:     opt.UserID,
		UserName:   opt.UserName,
		CostCenter: opt.CostCenter,
		Project:    opt.Project,
		TaskName:   opt.TaskName,
		StartDate:  opt.StartDate,
		EndDate:    endDate,
		Hours:      opt.Hours,
		Detail:     opt.Detail,
	}
	r.append(e)
	return e, nil
}

// FindEntry returns the first loaded row for the task, project and date.
func (r *implRepository) FindEntry(ctx context.Context, opt repo.FindEntryOptions) (model.TaskEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.IsHoliday() || e.Hours <= 0 {
			continue
		}
		if opt.UserID != 0 && e.UserID != opt.UserID {
			continue
		}
		if e.StartDate == opt.Date &&
			strings.EqualFold(e.TaskName, opt.TaskName) &&
			strings.EqualFold(e.Project, opt.Project) {
			return e, nil
		}
	}
	return model.TaskEntry{}, repo.ErrNotFound
}

// ListEntries returns matching rows ordered by date, then insertion order.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.TaskEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.TaskEntry
	for _, e := range r.entries {
		if repo.MatchEntry(e, opt) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b model.TaskEntry) int {
		return strings.Compare(a.StartDate, b.StartDate)
	})
	return out, nil
}

// UpdateEntryHours overwrites the hours of the row with the given id.
func (r *implRepository) UpdateEntryHours(ctx context.Context, id string, hours float64) (model.TaskEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.TaskEntry{}, repo.ErrNotFound
	}
	r.entries[i].Hours = hours
	return r.entries[i], nil
}

// DeleteEntry removes the row with the given id.
func (r *implRepository) DeleteEntry(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repo.ErrNotFound
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	return nil
}

// FindHoliday returns the holiday row for date, if any.
func (r *implRepository) FindHoliday(ctx context.Context, date string) (model.TaskEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.IsHoliday() && e.StartDate == date {
			return e, nil
		}
	}
	return model.TaskEntry{}, repo.ErrNotFound
}

// SeedEntries loads rows as given, keeping their legacy ids.
func (r *implRepository) SeedEntries(ctx context.Context, entries []model.TaskEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.EndDate == "" {
			e.EndDate = e.StartDate
		}
		r.append(e)
	}
	r.l.Debugf(ctx, "timesheet/repository/memory.SeedEntries: loaded %d rows", len(entries))
	return nil
}

func (r *implRepository) append(e model.TaskEntry) {
	r.entries = append(r.entries, e)
	if e.LegacyID > r.maxLegacyID {
		r.maxLegacyID = e.LegacyID
	}
}

func (r *implRepository) indexOf(id string) int {
	return slices.IndexFunc(r.entries, func(e model.TaskEntry) bool { return e.ID == id })
}

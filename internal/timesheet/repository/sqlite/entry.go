package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"timesheet-assistant/internal/model"
	repo "timesheet-assistant/internal/timesheet/repository"
)

const entryColumns = `id, legacy_id, user_id, user_name, cost_center, project, task_name, start_date, end_date, hours, detail`

// InsertEntry inserts a row and returns it with its minted ids.
func (r *implRepository) InsertEntry(ctx context.Context, opt repo.InsertEntryOptions) (model.TaskEntry, error) {
	legacyID := opt.LegacyID
	if legacyID == 0 {
		const q = `SELECT COALESCE(MAX(legacy_id), 0) + 1 FROM task_entries`
		if err := r.db.QueryRowContext(ctx, q).Scan(&legacyID); err != nil {
			r.l.Errorf(ctx, "%s next legacy id: %v", r.dsn("InsertEntry"), err)
			return model.TaskEntry{}, repo.ErrFailedToInsert
		}
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
	if err := r.insert(ctx, e); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertEntry"), err)
		return model.TaskEntry{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// FindEntry returns the first loaded row for the task, project and date.
func (r *implRepository) FindEntry(ctx context.Context, opt repo.FindEntryOptions) (model.TaskEntry, error) {
	mods, args := r.buildFindQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM task_entries WHERE %s ORDER BY seq LIMIT 1", entryColumns, mods)

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.TaskEntry{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindEntry"), err)
		return model.TaskEntry{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListEntries returns matching rows ordered by date, then insertion order.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.TaskEntry, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM task_entries WHERE %s ORDER BY start_date, seq", entryColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.TaskEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEntries"), err)
			return nil, repo.ErrFailedToList
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	return entries, nil
}

// UpdateEntryHours overwrites the hours of the row with the given id.
func (r *implRepository) UpdateEntryHours(ctx context.Context, id string, hours float64) (model.TaskEntry, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE task_entries SET hours = ? WHERE id = ?`, hours, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEntryHours"), err)
		return model.TaskEntry{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.TaskEntry{}, repo.ErrNotFound
	}

	query := fmt.Sprintf("SELECT %s FROM task_entries WHERE id = ?", entryColumns)
	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("UpdateEntryHours"), err)
		return model.TaskEntry{}, repo.ErrFailedToGet
	}
	return e, nil
}

// DeleteEntry removes the row with the given id.
func (r *implRepository) DeleteEntry(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM task_entries WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEntry"), err)
		return repo.ErrFailedToDelete
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// FindHoliday returns the holiday row for date, if any.
func (r *implRepository) FindHoliday(ctx context.Context, date string) (model.TaskEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM task_entries WHERE user_id = ? AND start_date = ? ORDER BY seq LIMIT 1", entryColumns)
	e, err := scanEntry(r.db.QueryRowContext(ctx, query, model.HolidayUserID, date))
	if errors.Is(err, sql.ErrNoRows) {
		return model.TaskEntry{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindHoliday"), err)
		return model.TaskEntry{}, repo.ErrFailedToGet
	}
	return e, nil
}

// SeedEntries loads rows as given, keeping their legacy ids.
func (r *implRepository) SeedEntries(ctx context.Context, entries []model.TaskEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s begin: %w", r.dsn("SeedEntries"), err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.EndDate == "" {
			e.EndDate = e.StartDate
		}
		if err := insertWith(ctx, tx, e); err != nil {
			return fmt.Errorf("%s: %w", r.dsn("SeedEntries"), err)
		}
	}
	return tx.Commit()
}

func (r *implRepository) insert(ctx context.Context, e model.TaskEntry) error {
	return insertWith(ctx, r.db, e)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertWith(ctx context.Context, ex execer, e model.TaskEntry) error {
	const query = `
		INSERT INTO task_entries (
			id, legacy_id, user_id, user_name, cost_center, cost_center_key,
			project, project_key, task_name, task_key, start_date, end_date, hours, detail
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := ex.ExecContext(ctx, query,
		e.ID, e.LegacyID, e.UserID, e.UserName,
		e.CostCenter, strings.ToLower(e.CostCenter),
		e.Project, strings.ToLower(e.Project),
		e.TaskName, strings.ToLower(e.TaskName),
		e.StartDate, e.EndDate, e.Hours, e.Detail,
	)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (model.TaskEntry, error) {
	var e model.TaskEntry
	err := s.Scan(&e.ID, &e.LegacyID, &e.UserID, &e.UserName, &e.CostCenter, &e.Project,
		&e.TaskName, &e.StartDate, &e.EndDate, &e.Hours, &e.Detail)
	return e, err
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"timesheet-assistant/internal/model"
	repo "timesheet-assistant/internal/timesheet/repository"
)

// ListAssignments returns roster rows in seed order.
func (r *implRepository) ListAssignments(ctx context.Context, opt repo.ListAssignmentsOptions) ([]model.Assignment, error) {
	mods, args := r.buildAssignmentQuery(opt)
	query := fmt.Sprintf("SELECT user_id, user_name, project, leader_user_id FROM assignments WHERE %s ORDER BY seq", mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAssignments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Assignment
	for rows.Next() {
		var a model.Assignment
		var leader sql.NullInt64
		if err := rows.Scan(&a.UserID, &a.UserName, &a.Project, &leader); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAssignments"), err)
			return nil, repo.ErrFailedToList
		}
		if leader.Valid {
			id := int(leader.Int64)
			a.LeaderUserID = &id
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *implRepository) SeedAssignments(ctx context.Context, assignments []model.Assignment) error {
	const query = `
		INSERT INTO assignments (user_id, user_name, user_name_key, project, project_key, leader_user_id)
		VALUES (?, ?, ?, ?, ?, ?)`

	for _, a := range assignments {
		var leader sql.NullInt64
		if a.LeaderUserID != nil {
			leader = sql.NullInt64{Int64: int64(*a.LeaderUserID), Valid: true}
		}
		if _, err := r.db.ExecContext(ctx, query,
			a.UserID, a.UserName, strings.ToLower(a.UserName),
			a.Project, strings.ToLower(a.Project), leader,
		); err != nil {
			return fmt.Errorf("%s: %w", r.dsn("SeedAssignments"), err)
		}
	}
	return nil
}

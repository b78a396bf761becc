package memory

import (
	"context"

	"timesheet-assistant/internal/model"
	repo "timesheet-assistant/internal/timesheet/repository"
)

// ListAssignments returns roster rows in seed order.
func (r *implRepository) ListAssignments(ctx context.Context, opt repo.ListAssignmentsOptions) ([]model.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Assignment
	for _, a := range r.assignments {
		if repo.MatchAssignment(a, opt) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *implRepository) SeedAssignments(ctx context.Context, assignments []model.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assignments = append(r.assignments, assignments...)
	return nil
}

package memory

import (
	"sync"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/log"
)

type implRepository struct {
	mu          sync.RWMutex
	entries     []model.TaskEntry
	assignments []model.Assignment
	maxLegacyID int
	l           log.Logger
}

// New creates an empty in-process Repository. Contents live as long as the
// process does.
func New(l log.Logger) repository.Repository {
	return &implRepository{l: l}
}

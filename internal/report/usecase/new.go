package usecase

import (
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/log"
)

// Config holds the working-time assumptions used by the reports.
type Config struct {
	DefaultUserID int
	HoursPerDay   float64
}

// implUseCase is the private implementation of report.UseCase.
type implUseCase struct {
	repo   repository.Repository
	parser *datemath.Parser
	cfg    Config
	l      log.Logger
}

// New creates a new report UseCase implementation.
func New(repo repository.Repository, parser *datemath.Parser, cfg Config, l log.Logger) *implUseCase {
	if cfg.DefaultUserID == 0 {
		cfg.DefaultUserID = 1
	}
	if cfg.HoursPerDay <= 0 {
		cfg.HoursPerDay = 8
	}
	return &implUseCase{
		repo:   repo,
		parser: parser,
		cfg:    cfg,
		l:      l,
	}
}

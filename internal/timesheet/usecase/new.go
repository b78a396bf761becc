package usecase

import (
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/log"
)

// Config holds the defaults stamped on new entries.
type Config struct {
	DefaultUserID int
	CostCenter    string
}

// implUseCase is the private implementation of timesheet.UseCase.
type implUseCase struct {
	repo   repository.Repository
	parser *datemath.Parser
	cfg    Config
	l      log.Logger
}

// New creates a new timesheet UseCase implementation.
func New(repo repository.Repository, parser *datemath.Parser, cfg Config, l log.Logger) *implUseCase {
	if cfg.DefaultUserID == 0 {
		cfg.DefaultUserID = 1
	}
	if cfg.CostCenter == "" {
		cfg.CostCenter = "IT"
	}
	return &implUseCase{
		repo:   repo,
		parser: parser,
		cfg:    cfg,
		l:      l,
	}
}

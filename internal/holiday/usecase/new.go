package usecase

import (
	"time"

	"timesheet-assistant/internal/holiday"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/log"
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = 2 * time.Second
)

// Config selects the source calendar and the labels stamped on holiday rows.
type Config struct {
	CalendarID string
	Project    string
	CostCenter string
	MaxRetries int
	Backoff    time.Duration
}

type implUseCase struct {
	events holiday.EventLister
	repo   repository.EntryRepository
	cfg    Config
	l      log.Logger
	sleep  func(time.Duration)
}

// New creates the holiday importer.
func New(events holiday.EventLister, repo repository.EntryRepository, cfg Config, l log.Logger) holiday.UseCase {
	if cfg.Project == "" {
		cfg.Project = "Feriado"
	}
	if cfg.CostCenter == "" {
		cfg.CostCenter = "IT"
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	return &implUseCase{
		events: events,
		repo:   repo,
		cfg:    cfg,
		l:      l,
		sleep:  time.Sleep,
	}
}

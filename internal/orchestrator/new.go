package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"timesheet-assistant/internal/report"
	"timesheet-assistant/internal/router"
	"timesheet-assistant/internal/timesheet"
	pkgLog "timesheet-assistant/pkg/log"
)

// Orchestrator drives a conversation: classify, execute, confirm, reply.
// Commands from every session run one at a time.
type Orchestrator struct {
	router    router.Router
	timesheet timesheet.UseCase
	report    report.UseCase
	sessions  *lru.Cache[string, *session]
	cfg       Config
	l         pkgLog.Logger

	mu    sync.Mutex
	sleep func(ctx context.Context, d time.Duration)
}

// New creates an Orchestrator.
func New(r router.Router, ts timesheet.UseCase, rp report.UseCase, cfg Config, l pkgLog.Logger) (*Orchestrator, error) {
	if cfg.SessionCacheSize <= 0 {
		cfg.SessionCacheSize = defaultSessionCacheSize
	}
	sessions, err := lru.New[string, *session](cfg.SessionCacheSize)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: session cache: %w", err)
	}
	return &Orchestrator{
		router:    r,
		timesheet: ts,
		report:    rp,
		sessions:  sessions,
		cfg:       cfg,
		l:         l,
		sleep:     sleepCtx,
	}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

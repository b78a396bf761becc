package router

import (
	"context"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/log"
)

// Router turns a chat message into an Intent.
type Router interface {
	Classify(ctx context.Context, text string, sc model.Scope) (Intent, bool)
}

// IntentRouter classifies messages with ordered regular-expression matchers.
type IntentRouter struct {
	parser   *datemath.Parser
	matchers []matcher
	l        log.Logger
}

var _ Router = (*IntentRouter)(nil)

// matcher inspects text and reports the intent it recognises. year is the
// displayed calendar year, used for absolute dates without a year.
type matcher func(text string, year int) (Intent, bool)

// New creates an IntentRouter.
func New(parser *datemath.Parser, l log.Logger) *IntentRouter {
	r := &IntentRouter{parser: parser, l: l}
	r.matchers = []matcher{
		r.matchLoadDaily,
		r.matchLoadBlock,
		r.matchEditHours,
		r.matchDeleteSpecific,
		r.matchDeleteBulk,
		r.matchDuplicateLastWeek,
		r.matchFillRestOfMonth,
		r.matchLeaderHours,
		r.matchTeamSummary,
		r.matchMissingHours,
		r.matchHistory,
		r.matchMonthly,
		r.matchNoHours,
		r.matchReport,
	}
	return r
}

package middleware

import (
	"timesheet-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *RateLimiter
}

func New(l log.Logger, limiter *RateLimiter) Middleware {
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}

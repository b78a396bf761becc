package orchestrator

import (
	"time"

	"timesheet-assistant/internal/model"
)

// Config tunes the conversational pacing and the session bound.
type Config struct {
	// ThinkingDelay runs between receiving a message and classifying it.
	ThinkingDelay time.Duration
	// ReplyDelay runs between applying a confirmed command and its reply.
	ReplyDelay       time.Duration
	SessionCacheSize int
}

// session is the per-conversation state. At most one confirmation is
// pending at a time.
type session struct {
	pending *model.Confirmation
}

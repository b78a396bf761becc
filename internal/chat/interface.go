package chat

import (
	"context"

	"timesheet-assistant/internal/model"
)

// Conversation is what a delivery surface needs from the orchestrator.
type Conversation interface {
	HandleMessage(ctx context.Context, sc model.Scope, ch model.Channel, text string) error
	Resolve(ctx context.Context, sc model.Scope, ch model.Channel, confirmed bool) error
	Pending(sessionID string) bool
	Reset(sessionID string) bool
}

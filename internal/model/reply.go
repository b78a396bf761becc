package model

import "context"

// Reply is what the assistant says back: ordered messages and an optional file.
type Reply struct {
	Messages []string
	Export   *Export
}

// Export is a downloadable CSV payload.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Confirmation is a pending yes/no continuation. Exactly one of OnConfirm or
// OnCancel runs, once.
type Confirmation struct {
	Prompt    string
	OnConfirm func(ctx context.Context, sc Scope) (Reply, error)
	OnCancel  func(ctx context.Context, sc Scope) Reply
}

// Outcome is the result of executing an intent: either an immediate reply or
// a confirmation to ask for.
type Outcome struct {
	Reply        Reply
	Confirmation *Confirmation
}

// NewReply builds a single-message reply.
func NewReply(messages ...string) Reply {
	return Reply{Messages: messages}
}

// Channel is the conversation surface the orchestrator talks to.
type Channel interface {
	Emit(ctx context.Context, text string) error
	Confirm(ctx context.Context, prompt string) error
	SendFile(ctx context.Context, export Export) error
	SignalWorking(ctx context.Context) error
}

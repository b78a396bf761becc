package orchestrator

import "errors"

var (
	ErrNoPendingConfirmation = errors.New("no pending confirmation")
	ErrUnknownIntent         = errors.New("unknown intent")
	ErrInvalidPayload        = errors.New("invalid intent payload")
)

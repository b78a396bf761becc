package chat

import "timesheet-assistant/internal/model"

// Transcript is everything the assistant said during one request.
type Transcript struct {
	Messages []string
	// Prompt is set when the request ended waiting for a yes/no answer.
	Prompt  string
	Exports []model.Export
	Working bool
}

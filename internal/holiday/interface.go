package holiday

import (
	"context"

	"timesheet-assistant/pkg/gcalendar"
)

// UseCase imports holidays from an external calendar into the timesheet store.
type UseCase interface {
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
}

// EventLister is the part of the calendar client the importer needs.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

package http

import (
	"errors"
	"net/http"

	"timesheet-assistant/internal/orchestrator"
	"timesheet-assistant/internal/report"
	pkgErrors "timesheet-assistant/pkg/errors"
)

var (
	errSessionRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "session_id is required")
	errInvalidMonth    = pkgErrors.NewHTTPError(http.StatusBadRequest, "month must be between 1 and 12")
	errExportNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "export not found or expired")
	errSessionNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	errNothingPending  = pkgErrors.NewHTTPError(http.StatusConflict, "no pending confirmation")
)

// mapError translates orchestrator and usecase errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, orchestrator.ErrNoPendingConfirmation):
		return errNothingPending
	case errors.Is(err, report.ErrInvalidMonth):
		return errInvalidMonth
	default:
		return pkgErrors.ErrInternalServerError
	}
}

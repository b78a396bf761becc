package report

import "errors"

var (
	ErrCollaboratorNotFound = errors.New("collaborator not found")
	ErrLeaderNotFound       = errors.New("leader not found")
	ErrNoTeam               = errors.New("leader has no team")
	ErrInvalidMonth         = errors.New("invalid month")
)

package services

import "errors"

// Sentinel errors crossing the service boundary. Handlers map these onto
// HTTP statuses; backend trouble additionally wraps tabular.ErrUnavailable.
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrProgressNotFound   = errors.New("progress record not found")
	ErrEntryNotFound      = errors.New("grimoire entry not found")
	ErrAlreadyAtMaxDegree = errors.New("already at highest degree")
	ErrInvalidStatus      = errors.New("invalid module status")
	ErrUnknownYear        = errors.New("year is outside the curriculum")
)

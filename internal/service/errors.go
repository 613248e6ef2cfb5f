package service

import "errors"

var (
	// Report errors
	ErrReportNotFound      = errors.New("report not found")
	ErrInvalidReportStatus = errors.New("invalid report status")

	// Restriction errors
	ErrUserRestricted         = errors.New("user is restricted from this action")
	ErrInvalidRestrictionType = errors.New("invalid restriction type")
	ErrRestrictionNotFound    = errors.New("restriction not found")
)

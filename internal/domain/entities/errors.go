package entities

import "errors"

// Domain errors
var (
	// Lookup errors
	ErrUserNotFound         = errors.New("user not found")
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrDecisionNotFound     = errors.New("decision not found")
	ErrActionItemNotFound   = errors.New("action item not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// Validation errors
	ErrInvalidUsername      = errors.New("invalid username")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrInvalidMeetingStatus = errors.New("invalid meeting status")
)

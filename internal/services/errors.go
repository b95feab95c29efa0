package services

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("user already exists")
	ErrForbidden         = errors.New("insufficient role")
	ErrInvalidRole       = errors.New("invalid role value")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingDonorInfo  = errors.New("donor name and email required")
	ErrStatusConflict    = errors.New("request status changed concurrently")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrMissingFields     = errors.New("missing required fields")
)

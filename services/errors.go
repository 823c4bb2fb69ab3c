package services

import "errors"

// Common service-level errors
var (
	ErrInhabitantNotFound = errors.New("inhabitant not found")
	ErrInvalidID          = errors.New("invalid inhabitant id")
)

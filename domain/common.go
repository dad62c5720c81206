package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageSuccessPing          = "pong, ecotrack is running"

	// Error kinds. Specific errors wrap one of these so callers can branch
	// with errors.Is without knowing every individual failure.
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrStorageParse    = errors.New("stored data could not be parsed")
	ErrExternalService = errors.New("external service failed")
	ErrUnauthorized    = errors.New("unauthorized")

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)

package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// Content errors
	ErrPostNotFound    = errors.New("post not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrDuplicateSlug   = errors.New("slug already in use")
	ErrBlockNotFound   = errors.New("block not found")

	// Auth errors
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingServerConfig = errors.New("server credentials are not configured")
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("expired token")

	// Validation errors
	ErrValidation   = errors.New("validation failed")
	ErrInvalidInput = errors.New("invalid input")
)

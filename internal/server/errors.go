// Package server provides the HTTP REST API for the readiness check.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrSessionNotFound indicates the session ID is unknown or expired
type ErrSessionNotFound struct {
	ID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotVerified indicates the session has not passed the email gate yet
type ErrNotVerified struct{}

func (e *ErrNotVerified) Error() string {
	return "email not verified for this session"
}

// ErrMailUnavailable indicates no mail transport is configured
type ErrMailUnavailable struct{}

func (e *ErrMailUnavailable) Error() string {
	return "mail delivery is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotVerified:
		return http.StatusForbidden
	case *ErrMailUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

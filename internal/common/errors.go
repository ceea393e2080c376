// Package common defines shared constants and sentinel errors used across
// gateway, store and service layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Gateway-level errors.
	ErrTransport  = errors.New("transport error")
	ErrServer     = errors.New("server error")
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")

	// Edit session errors.
	ErrSessionOpen   = errors.New("edit session already open")
	ErrSessionClosed = errors.New("edit session is closed")

	// Form submission errors.
	ErrInvalidSelection = errors.New("invalid department or position selection")
)

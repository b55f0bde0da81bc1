// Package common defines shared sentinel errors used across the engine
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrorNoSession = errors.New("no active session")

	// Medium-level errors.
	ErrorMediumClosed = errors.New("medium closed")

	// Validation errors.
	ErrorInvalidRole   = errors.New("invalid role")
	ErrorInvalidStatus = errors.New("invalid status")
	ErrorEmptyEmail    = errors.New("empty email")
)

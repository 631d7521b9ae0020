// Package apperr defines the failure kinds the rules engines return.
// Handlers match them with errors.Is to pick a transport status; anything
// that is not one of these sentinels is treated as a storage fault.
package apperr

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

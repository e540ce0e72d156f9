package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ErrWordNotFound is the terminal lookup outcome: no source knows the word
// and no external reference exists for it.
var ErrWordNotFound = fmt.Errorf("word %w", ErrNotFound)

// InputRejectedError reports why raw user input was not accepted as a word.
type InputRejectedError struct {
	Reason RejectReason
}

func (e *InputRejectedError) Error() string {
	return fmt.Sprintf("input rejected: %s", e.Reason)
}

func (e *InputRejectedError) Unwrap() error { return ErrValidation }

// NewInputRejectedError creates an InputRejectedError for reason.
func NewInputRejectedError(reason RejectReason) *InputRejectedError {
	return &InputRejectedError{Reason: reason}
}

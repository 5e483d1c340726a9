package models

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("models: user not found")
	ErrItemNotFound       = errors.New("models: item not found")
	ErrClaimNotFound      = errors.New("models: claim not found")
	ErrCategoryNotFound   = errors.New("models: category not found")
	ErrPersonNotFound     = errors.New("models: person not found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicatePhone     = errors.New("models: duplicate phone number")
)

// Claim workflow errors. A claim leaves "pending" exactly once; any later
// verification attempt surfaces ErrClaimAlreadyDecided instead of silently
// re-applying side effects.
var (
	ErrInvalidDecision     = errors.New("models: invalid claim decision")
	ErrClaimAlreadyDecided = errors.New("models: claim already decided")
	ErrItemAlreadyReturned = errors.New("models: item already returned")
)

// ValidationError collects field-level messages from a validator so the
// handler can return them to the client in a single response.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

package models

import (
	"errors"
	"fmt"
)

// Aggregate-level errors returned by [Config] mutation operations when a
// collection cap is exceeded or an index is out of range.
var (
	// ErrTooManyVAS indicates an attempt to hold more than six Apple VAS
	// entries in one configuration.
	ErrTooManyVAS = errors.New("at most 6 Apple VAS configurations allowed")
	// ErrTooManySmartTap indicates an attempt to hold more than six Google
	// Smart Tap entries in one configuration.
	ErrTooManySmartTap = errors.New("at most 6 Google Smart Tap configurations allowed")
	// ErrTooManyDESFireApps indicates an attempt to hold more than nine
	// DESFire application entries in one configuration.
	ErrTooManyDESFireApps = errors.New("at most 9 DESFire applications allowed")
	// ErrIndexOutOfRange indicates a Remove/Replace operation addressed an
	// entry index that does not exist.
	ErrIndexOutOfRange = errors.New("entry index out of range")
)

// ValidationError reports a single field that failed validation during model
// construction or normalization. Callers assembling models from untrusted
// input (CLI flags, wizard answers, form fields, parsed config lines) match
// on it with errors.As and surface Field next to the offending input.
type ValidationError struct {
	// Field is the snake_case field name as documented in the parameter
	// reference (e.g. "merchant_id", "key_slot").
	Field string

	// Msg describes the violated constraint.
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func fieldErrorf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

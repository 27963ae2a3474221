// Package models contains the typed data model for VTAP100 reader
// configurations: the seven section models, their field validation rules, the
// per-section config.txt line emission, and the aggregate [Config] that owns
// them.
//
// Every section type validates and normalizes through Validate (or a New*
// constructor that calls it); an invalid value is a field-attributable
// *ValidationError, never a partially-valid instance and never a silent
// coercion.
package models

import (
	"strconv"
	"strings"
)

// normalizeHex checks that v is exactly length hexadecimal characters and
// returns it uppercased. Field names the attribute for error reporting.
func normalizeHex(field, v string, length int) (string, error) {
	if len(v) != length {
		return "", fieldErrorf(field, "must be %d hex characters", length)
	}
	if _, err := strconv.ParseUint(v, 16, 64); err != nil {
		return "", fieldErrorf(field, "must be valid hex")
	}
	return strings.ToUpper(v), nil
}

// intInRange fails with a field-attributable error when v lies outside the
// inclusive range [lo, hi].
func intInRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fieldErrorf(field, "must be between %d and %d", lo, hi)
	}
	return nil
}

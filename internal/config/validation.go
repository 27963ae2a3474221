package config

import "errors"

// Validation errors returned by [Settings.validate] when the merged
// settings are unusable.
var (
	// ErrEmptyOutput indicates that no output path survived the merge;
	// with the built-in defaults in place this only happens when a source
	// explicitly blanks it.
	ErrEmptyOutput = errors.New("output path must not be empty")
)

// validate checks that the final merged [Settings] satisfies the tool's
// invariants before any command uses it.
func (s *Settings) validate() error {
	if s.Output == "" {
		return ErrEmptyOutput
	}

	return nil
}

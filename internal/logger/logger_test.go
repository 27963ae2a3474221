package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test", "debug")
	require.NotNil(t, l)
}

// TestNewLogger_LevelParsing verifies level names and the info fallback for
// unknown or empty levels.
func TestNewLogger_LevelParsing(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, NewLogger("r", "debug").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, NewLogger("r", "warn").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLogger("r", "").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLogger("r", "loud").GetLevel())
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", "debug")
	// redirect console output to buffer for inspection
	l.Logger = l.Output(zerolog.ConsoleWriter{Out: &buf, NoColor: true})

	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), "test-role")
	assert.Contains(t, buf.String(), "hello")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role", "info") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_NotNil verifies that Nop returns a non-nil *Logger.
func TestNop_NotNil(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_NotNil verifies that GetChildLogger returns a non-nil *Logger.
func TestGetChildLogger_NotNil(t *testing.T) {
	parent := NewLogger("parent", "debug")
	child := parent.GetChildLogger()
	require.NotNil(t, child)
}

// TestGetChildLogger_IsIndependent verifies that the child logger is a
// distinct instance from the parent.
func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := NewLogger("parent", "debug")
	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", "debug")
	parent.Logger = parent.Output(zerolog.ConsoleWriter{Out: &buf, NoColor: true})

	child := parent.GetChildLogger()
	child.Logger = child.Output(zerolog.ConsoleWriter{Out: &buf, NoColor: true})
	child.Info().Msg("child message")

	assert.Contains(t, buf.String(), "inherited-role")
}

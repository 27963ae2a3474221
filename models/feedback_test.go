package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── LEDSequence ───────────────────────────────────────────────────────────────

// TestNewLEDSequence_Validation verifies color normalization and timing
// ranges.
func TestNewLEDSequence_Validation(t *testing.T) {
	seq, err := NewLEDSequence("00ff00", 200, 100, 2)
	require.NoError(t, err)
	assert.Equal(t, "00FF00", seq.Color)

	_, err = NewLEDSequence("00FF0", 200, 100, 2)
	assert.Error(t, err, "five-char color")

	_, err = NewLEDSequence("00FF00", 70000, 100, 2)
	assert.Error(t, err, "on_ms over 65535")

	_, err = NewLEDSequence("00FF00", 200, 100, 0)
	assert.Error(t, err, "zero repeats")
}

// TestLEDSequence_ConfigValue verifies the compound encoding.
func TestLEDSequence_ConfigValue(t *testing.T) {
	seq, err := NewLEDSequence("FF0000", 100, 50, 3)
	require.NoError(t, err)
	assert.Equal(t, "FF0000,100,50,3", seq.ConfigValue())
}

// ── BeepSequence ──────────────────────────────────────────────────────────────

// TestNewBeepSequence_FrequencyBoundaries verifies the optional 100-20000 Hz
// range.
func TestNewBeepSequence_FrequencyBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		frequency *int
		wantErr   bool
	}{
		{name: "nil frequency", frequency: nil},
		{name: "lower bound", frequency: intp(100)},
		{name: "upper bound", frequency: intp(20000)},
		{name: "99 fails", frequency: intp(99), wantErr: true},
		{name: "20001 fails", frequency: intp(20001), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBeepSequence(100, 100, 1, tt.frequency)
			if tt.wantErr {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "frequency", vErr.Field)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestBeepSequence_ConfigValue verifies that the frequency field only
// appears when set.
func TestBeepSequence_ConfigValue(t *testing.T) {
	plain, err := NewBeepSequence(50, 50, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "50,50,3", plain.ConfigValue())

	withFreq, err := NewBeepSequence(50, 50, 3, intp(4000))
	require.NoError(t, err)
	assert.Equal(t, "50,50,3,4000", withFreq.ConfigValue())
}

// ── LED section ───────────────────────────────────────────────────────────────

// TestLED_Validate verifies mode codes and default color normalization.
func TestLED_Validate(t *testing.T) {
	mode := LEDCustom
	led := &LED{Mode: &mode, DefaultRGB: "ff8800"}
	require.NoError(t, led.Validate())
	assert.Equal(t, "FF8800", led.DefaultRGB)

	bad := LEDMode(4)
	led.Mode = &bad
	assert.Error(t, led.Validate())
}

// TestLED_ConfigLines verifies that only configured fields render.
func TestLED_ConfigLines(t *testing.T) {
	pass, err := NewLEDSequence("00FF00", 200, 100, 2)
	require.NoError(t, err)
	mode := LEDCustom
	led := LED{Mode: &mode, Pass: &pass}

	assert.Equal(t, []string{
		"LEDMode=3",
		"PassLED=00FF00,200,100,2",
	}, led.ConfigLines())
}

func intp(v int) *int { return &v }

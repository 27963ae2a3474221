package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDefaultPasses_EmptyMeansAll verifies that nil and empty lists
// expand to all six passes.
func TestNewDefaultPasses_EmptyMeansAll(t *testing.T) {
	dp, err := NewVASDefaultPasses(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, dp.Enabled)

	dp, err = NewSTDefaultPasses([]int{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, dp.Enabled)
}

// TestNewDefaultPasses_RangeCheck verifies the 1-6 pass number range.
func TestNewDefaultPasses_RangeCheck(t *testing.T) {
	_, err := NewVASDefaultPasses([]int{1, 7})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "enabled_passes", vErr.Field)

	_, err = NewSTDefaultPasses([]int{0})
	assert.Error(t, err)
}

// TestDefaultPasses_ConfigLine verifies both key prefixes.
func TestDefaultPasses_ConfigLine(t *testing.T) {
	vas, err := NewVASDefaultPasses([]int{1, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, "VASDefaultPassesEnabled=1,3,5", vas.ConfigLine())

	st, err := NewSTDefaultPasses([]int{2})
	require.NoError(t, err)
	assert.Equal(t, "STDefaultPassesEnabled=2", st.ConfigLine())
}

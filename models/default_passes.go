package models

import (
	"strconv"
	"strings"
)

// DefaultPasses restricts which pass slots (1-6) the reader checks at
// startup. The same setting exists for Apple VAS and Google Smart Tap; only
// the config key prefix differs.
type DefaultPasses struct {
	// Prefix is the config key prefix, "VAS" or "ST".
	Prefix string

	// Enabled lists the enabled pass numbers (1-6).
	Enabled []int
}

// NewVASDefaultPasses builds the VAS variant. A nil or empty enabled list
// means all six passes.
func NewVASDefaultPasses(enabled []int) (DefaultPasses, error) {
	return newDefaultPasses("VAS", enabled)
}

// NewSTDefaultPasses builds the Smart Tap variant. A nil or empty enabled
// list means all six passes.
func NewSTDefaultPasses(enabled []int) (DefaultPasses, error) {
	return newDefaultPasses("ST", enabled)
}

func newDefaultPasses(prefix string, enabled []int) (DefaultPasses, error) {
	if len(enabled) == 0 {
		enabled = []int{1, 2, 3, 4, 5, 6}
	}
	for _, p := range enabled {
		if p < 1 || p > 6 {
			return DefaultPasses{}, fieldErrorf("enabled_passes", "pass number %d must be between 1 and 6", p)
		}
	}
	return DefaultPasses{Prefix: prefix, Enabled: enabled}, nil
}

// ConfigLine renders the setting as a single config.txt line, e.g.
// "VASDefaultPassesEnabled=1,3,5".
func (d DefaultPasses) ConfigLine() string {
	parts := make([]string, len(d.Enabled))
	for i, p := range d.Enabled {
		parts[i] = strconv.Itoa(p)
	}
	return d.Prefix + "DefaultPassesEnabled=" + strings.Join(parts, ",")
}

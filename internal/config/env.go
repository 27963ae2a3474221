package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces all of the tool's environment variables.
const envPrefix = "VTAPCFG_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via the `env` tags defined on
// [Settings], each prefixed with VTAPCFG_.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *Settings) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}

package config

// Settings is the tool-level configuration container for vtapcfg. It holds
// the ambient defaults commands fall back to when no flag is given, and is
// populated by merging values from environment variables and an optional
// JSON file.
//
// Struct tags:
//   - env  — environment variable name, looked up with the VTAPCFG_ prefix.
//   - json — field name in the optional JSON settings file.
type Settings struct {
	// Output is the default path generated configs are written to.
	// Env: VTAPCFG_OUTPUT
	Output string `env:"OUTPUT" json:"output"`

	// Comment is the default comment line embedded in generated configs.
	// Env: VTAPCFG_COMMENT
	Comment string `env:"COMMENT" json:"comment"`

	// LogLevel is the zerolog level name for all commands ("debug",
	// "info", "warn", ...).
	// Env: VTAPCFG_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// DisableClipboard turns off the editor's clipboard integration,
	// for headless hosts without a display server.
	// Env: VTAPCFG_NO_CLIPBOARD
	DisableClipboard bool `env:"NO_CLIPBOARD" json:"no_clipboard"`

	// JSONFilePath is the optional path to a JSON settings file. When
	// non-empty, the file is parsed and merged behind the values already
	// loaded from environment variables.
	// Env: VTAPCFG_CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// GetSettings loads and merges the tool settings from all available sources
// in the following priority order (first non-zero value wins):
//  1. Environment variables
//  2. JSON file (path resolved from source 1)
//  3. Built-in defaults
//
// Returns fully populated *Settings or an error if any source fails to load.
func GetSettings() (*Settings, error) {
	return newSettingsBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

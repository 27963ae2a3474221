package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON loads a [Settings] fragment from the JSON file at jsonFilePath.
// The file uses the json tags declared on [Settings]; absent fields stay at
// their zero value and lose to earlier sources during the merge.
func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var cfg Settings
	if err := json.NewDecoder(jsonFile).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}

	// The path the fragment came from must not re-trigger JSON loading.
	cfg.JSONFilePath = ""

	return &cfg, nil
}

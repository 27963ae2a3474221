package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Built-in fallbacks applied after all explicit sources.
const (
	DefaultOutput   = "config.txt"
	DefaultComment  = "Generated by VTAP100 CLI"
	DefaultLogLevel = "info"
)

type settingsBuilder struct {
	configs []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		configs: make([]*Settings, 0, 3),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, cfg := range b.configs {
		if err := mergo.Merge(settings, cfg); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return settings, settings.validate()
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *settingsBuilder) withJSON() *settingsBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.configs = append(b.configs, &Settings{
		Output:   DefaultOutput,
		Comment:  DefaultComment,
		LogLevel: DefaultLogLevel,
	})
	return b
}

package main

import (
	"os"

	"github.com/vtaptools/vtapcfg/internal/cli"
	"github.com/vtaptools/vtapcfg/internal/config"
	"github.com/vtaptools/vtapcfg/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if buildVersion == "" {
		buildVersion = "dev"
	}
	version := buildVersion
	if buildCommit != "" {
		version += " (" + buildCommit + ")"
	}
	if buildDate != "" {
		version += " built " + buildDate
	}

	settings, err := config.GetSettings()
	if err != nil {
		logger.NewLogger("vtapcfg", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("vtapcfg", settings.LogLevel)

	rootCmd := cli.NewRootCommand(settings, log, version)
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

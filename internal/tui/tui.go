package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vtaptools/vtapcfg/internal/config"
	"github.com/vtaptools/vtapcfg/internal/configfile"
	"github.com/vtaptools/vtapcfg/internal/logger"
	"github.com/vtaptools/vtapcfg/models"
)

// Run starts the interactive editor. inputPath may be empty to start from a
// blank configuration; outputPath is where w writes the result.
func Run(inputPath, outputPath string, settings *config.Settings, log *logger.Logger) error {
	cfg := &models.Config{}

	if inputPath != "" {
		raw, err := os.ReadFile(inputPath)
		switch {
		case os.IsNotExist(err):
			log.Warn().Str("path", inputPath).Msg("input file does not exist, starting blank")
		case err != nil:
			return fmt.Errorf("read %s: %w", inputPath, err)
		default:
			cfg, err = configfile.Parse(string(raw))
			if err != nil {
				return fmt.Errorf("parse %s: %w", inputPath, err)
			}
			log.Info().Str("path", inputPath).Msg("configuration loaded")
		}
	}

	model := newAppModel(cfg, settings.Comment, outputPath, settings.DisableClipboard)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}

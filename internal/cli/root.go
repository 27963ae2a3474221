package cli

import (
	"github.com/spf13/cobra"

	"github.com/vtaptools/vtapcfg/internal/config"
	"github.com/vtaptools/vtapcfg/internal/logger"
)

// NewRootCommand assembles the vtapcfg command tree.
func NewRootCommand(settings *config.Settings, log *logger.Logger, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vtapcfg",
		Short: "Generate and edit VTAP100 NFC reader configuration files",
		Long: `vtapcfg builds, validates and edits config.txt files for the VTAP100
NFC pass reader. Configurations cover Apple VAS and Google Smart Tap
merchants, keyboard wedge output, NFC tag reading, MIFARE DESFire
applications and LED/beeper feedback.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newGenerateCommand(settings, log),
		newWizardCommand(settings, log, version),
		newValidateCommand(log),
		newDocsCommand(),
		newEditorCommand(settings, log),
	)

	return rootCmd
}

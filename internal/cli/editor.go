package cli

import (
	"github.com/spf13/cobra"

	"github.com/vtaptools/vtapcfg/internal/config"
	"github.com/vtaptools/vtapcfg/internal/logger"
	"github.com/vtaptools/vtapcfg/internal/tui"
)

func newEditorCommand(settings *config.Settings, log *logger.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "editor [config-file]",
		Short: "Edit a configuration in the interactive terminal editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			// When editing an existing file, writes go back to it unless
			// the user redirects them.
			out := output
			if out == "" {
				out = input
			}
			if out == "" {
				out = settings.Output
			}

			// The editor owns the terminal, so its log goes to a file
			// instead of stderr.
			editorLog := logger.NewEditorLogger("editor", settings.LogLevel)

			return tui.Run(input, out, settings, editorLog)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (defaults to the input file)")
	return cmd
}

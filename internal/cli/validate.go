package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vtaptools/vtapcfg/internal/configfile"
	"github.com/vtaptools/vtapcfg/internal/logger"
)

// lintLines runs the line-shape checks that precede full parsing: the header
// must come first, and every non-comment line needs a Key=Value shape.
func lintLines(content string) []string {
	var problems []string

	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != configfile.Header {
		problems = append(problems, fmt.Sprintf("line 1: missing %s header", configfile.Header))
	}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "!") {
			continue
		}
		if !strings.Contains(trimmed, "=") {
			problems = append(problems, fmt.Sprintf("line %d: not a Key=Value line: %s", i+1, trimmed))
		}
	}
	return problems
}

func newValidateCommand(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate an existing config.txt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			raw, err := os.ReadFile(path)
			if err != nil {
				printError(fmt.Sprintf("read %s: %v", path, err))
				return err
			}
			content := string(raw)
			log.Debug().Str("path", path).Int("bytes", len(raw)).Msg("validating config file")

			problems := lintLines(content)
			if len(problems) == 0 {
				if _, err := configfile.Parse(content); err != nil {
					problems = append(problems, err.Error())
				}
			}

			if len(problems) > 0 {
				for _, p := range problems {
					printError(p)
				}
				return fmt.Errorf("%s: %d problem(s) found", path, len(problems))
			}

			printSuccess(path + " is a valid VTAP100 configuration")
			printPreview(path, strings.TrimRight(content, "\n"))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vtaptools/vtapcfg/internal/config"
	"github.com/vtaptools/vtapcfg/internal/configfile"
	"github.com/vtaptools/vtapcfg/internal/logger"
	"github.com/vtaptools/vtapcfg/models"
)

// deriveKBSource maps the configured pass types onto a KBSource mask: mobile
// passes and card/tag UIDs always report, Smart Tap UIDs only when a Smart
// Tap collector is present.
func deriveKBSource(hasSmartTap bool) string {
	b := models.NewKBSourceBuilder().MobilePass().CardEmulation().CardTagUID()
	if hasSmartTap {
		b.STUID()
	}
	return b.Build()
}

func newGenerateCommand(settings *config.Settings, log *logger.Logger) *cobra.Command {
	var (
		appleVAS    string
		googleST    string
		keySlot     int
		keyVersion  int
		keyboard    bool
		output      string
		comment     string
		useTemplate bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a config.txt from command line flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appleVAS == "" && googleST == "" {
				printError("at least one of --apple-vas or --google-st is required")
				return fmt.Errorf("no merchant configured")
			}
			if keySlot < 1 || keySlot > 6 {
				printError(fmt.Sprintf("key slot %d out of range, must be 1-6", keySlot))
				return fmt.Errorf("invalid key slot %d", keySlot)
			}

			cfg := &models.Config{}

			if appleVAS != "" {
				vas, err := models.NewAppleVAS(appleVAS, keySlot, "")
				if err != nil {
					printError(err.Error())
					return err
				}
				cfg.VAS = append(cfg.VAS, vas)
				log.Debug().Str("merchant_id", appleVAS).Int("key_slot", keySlot).
					Msg("added Apple VAS merchant")
			}
			if googleST != "" {
				st, err := models.NewGoogleSmartTap(googleST, keySlot, keyVersion)
				if err != nil {
					printError(err.Error())
					return err
				}
				cfg.SmartTap = append(cfg.SmartTap, st)
				log.Debug().Str("collector_id", googleST).Int("key_slot", keySlot).
					Msg("added Google Smart Tap collector")
			}

			if keyboard {
				kb := models.DefaultKeyboard()
				kb.LogMode = true
				kb.Source = deriveKBSource(googleST != "")
				cfg.Keyboard = &kb
			}

			if err := cfg.Validate(); err != nil {
				printError(err.Error())
				return err
			}

			text := configfile.Generate(cfg, comment)
			if useTemplate {
				text = configfile.GenerateTemplate(cfg, comment)
			}

			printSection("Configuration Summary")
			if appleVAS != "" {
				printKV("Apple VAS", appleVAS)
			}
			if googleST != "" {
				printKV("Google Smart Tap", googleST)
			}
			printKV("Key slot", fmt.Sprintf("%d", keySlot))
			printKV("Keyboard output", fmt.Sprintf("%t", keyboard))
			fmt.Println()

			printPreview("Generated configuration", text)

			if err := configfile.WriteText(output, text); err != nil {
				printError(fmt.Sprintf("write %s: %v", output, err))
				return err
			}

			log.Info().Str("path", output).Msg("configuration written")
			printSuccess("Configuration written to " + output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&appleVAS, "apple-vas", "a", "", "Apple VAS merchant ID (pass.com.example)")
	cmd.Flags().StringVarP(&googleST, "google-st", "g", "", "Google Smart Tap collector ID")
	cmd.Flags().IntVarP(&keySlot, "key-slot", "k", 1, "key slot for the merchant key (1-6)")
	cmd.Flags().IntVar(&keyVersion, "key-version", 1, "Smart Tap key version")
	cmd.Flags().BoolVar(&keyboard, "keyboard", true, "enable keyboard wedge output")
	cmd.Flags().StringVarP(&output, "output", "o", settings.Output, "output file path")
	cmd.Flags().StringVarP(&comment, "comment", "c", settings.Comment, "comment placed below the header")
	cmd.Flags().BoolVar(&useTemplate, "template", false, "emit a pass-upload template instead of plain config")

	return cmd
}

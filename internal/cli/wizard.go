package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vtaptools/vtapcfg/internal/config"
	"github.com/vtaptools/vtapcfg/internal/configfile"
	"github.com/vtaptools/vtapcfg/internal/logger"
	"github.com/vtaptools/vtapcfg/models"
)

const wizardComment = "Generated by VTAP100 Wizard"

// prompter reads interactive answers line by line. Every answer falls back
// to its default on empty input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) ask(label, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// askRequired re-asks until a non-empty answer arrives.
func (p *prompter) askRequired(label string) string {
	for {
		if v := p.ask(label, ""); v != "" {
			return v
		}
		fmt.Fprintln(p.out, dimStyle.Render("  a value is required"))
	}
}

func (p *prompter) askInt(label string, def, min, max int) int {
	for {
		raw := p.ask(label, strconv.Itoa(def))
		n, err := strconv.Atoi(raw)
		if err != nil || n < min || n > max {
			fmt.Fprintf(p.out, "%s\n", dimStyle.Render(
				fmt.Sprintf("  enter a number between %d and %d", min, max)))
			continue
		}
		return n
	}
}

// askChoice re-asks until the answer is one of the allowed single-character
// codes. Matching is case insensitive; the canonical code is returned.
func (p *prompter) askChoice(label string, choices []string, def string) string {
	hint := label + " (" + strings.Join(choices, "/") + ")"
	for {
		raw := strings.ToUpper(p.ask(hint, def))
		for _, c := range choices {
			if raw == strings.ToUpper(c) {
				return c
			}
		}
		fmt.Fprintf(p.out, "%s\n", dimStyle.Render(
			"  choose one of "+strings.Join(choices, ", ")))
	}
}

func (p *prompter) confirm(label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		raw := strings.ToLower(p.ask(label+" ["+hint+"]", ""))
		switch raw {
		case "":
			return def
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(p.out, dimStyle.Render("  answer y or n"))
	}
}

func newWizardCommand(settings *config.Settings, log *logger.Logger, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Build a config.txt interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			return runWizard(p, settings, log, version)
		},
	}
}

func runWizard(p *prompter, settings *config.Settings, log *logger.Logger, version string) error {
	printHeader(version)
	cfg := &models.Config{}

	wizardVASPhase(p, cfg)
	wizardSmartTapPhase(p, cfg)
	wizardNFCPhase(p, cfg)
	wizardDESFirePhase(p, cfg)
	wizardKeyboardPhase(p, cfg)
	wizardFeedbackPhase(p, cfg)

	if err := cfg.Validate(); err != nil {
		printError(err.Error())
		return err
	}

	text := configfile.Generate(cfg, wizardComment)

	printSection("Preview")
	printPreview("config.txt", text)

	output := p.ask("Output file", settings.Output)
	if !p.confirm("Save configuration to "+output+"?", true) {
		fmt.Fprintln(p.out, dimStyle.Render("Not saved."))
		return nil
	}
	if err := configfile.WriteText(output, text); err != nil {
		printError(fmt.Sprintf("write %s: %v", output, err))
		return err
	}
	log.Info().Str("path", output).Msg("wizard configuration written")
	printSuccess("Configuration written to " + output)
	return nil
}

func wizardVASPhase(p *prompter, cfg *models.Config) {
	printSection("Apple VAS")
	for len(cfg.VAS) < models.MaxVASEntries {
		label := "Configure Apple VAS?"
		if len(cfg.VAS) > 0 {
			label = "Add another Apple VAS merchant?"
		}
		if !p.confirm(label, false) {
			return
		}
		for {
			merchantID := p.askRequired("Merchant ID (pass.com.example)")
			keySlot := p.askInt("Key slot", 1, 1, 6)
			vas, err := models.NewAppleVAS(merchantID, keySlot, "")
			if err != nil {
				printError(err.Error())
				continue
			}
			if err := cfg.AddVAS(vas); err != nil {
				printError(err.Error())
				return
			}
			break
		}
	}
}

func wizardSmartTapPhase(p *prompter, cfg *models.Config) {
	printSection("Google Smart Tap")
	for len(cfg.SmartTap) < models.MaxSmartTapEntries {
		label := "Configure Google Smart Tap?"
		if len(cfg.SmartTap) > 0 {
			label = "Add another Smart Tap collector?"
		}
		if !p.confirm(label, false) {
			return
		}
		for {
			collectorID := p.askRequired("Collector ID")
			keySlot := p.askInt("Key slot", 1, 1, 6)
			keyVersion := p.askInt("Key version", 1, 0, 255)
			st, err := models.NewGoogleSmartTap(collectorID, keySlot, keyVersion)
			if err != nil {
				printError(err.Error())
				continue
			}
			if err := cfg.AddSmartTap(st); err != nil {
				printError(err.Error())
				return
			}
			break
		}
	}
}

func wizardNFCPhase(p *prompter, cfg *models.Config) {
	printSection("NFC Tag Reading")
	if !p.confirm("Configure NFC tag reading?", false) {
		return
	}

	basicModes := []string{"0", "U", "N", "B"}
	type4Modes := []string{"0", "U", "N", "B", "D"}

	nfc := &models.NFCTag{
		Type2: models.TagMode(p.askChoice("Type 2 tags (NTAG, Ultralight)", basicModes, "0")),
		Type4: models.TagMode(p.askChoice("Type 4 tags (DESFire, ISO 14443-4)", type4Modes, "0")),
		Type5: models.TagMode(p.askChoice("Type 5 tags (ICODE, ISO 15693)", basicModes, "0")),
	}
	if nfc.Type4 != models.TagModeDisabled {
		nfc.IgnoreRandomUID = p.confirm("Ignore random UIDs on Type 4 tags?", false)
	}
	cfg.NFC = nfc
}

func wizardDESFirePhase(p *prompter, cfg *models.Config) {
	if cfg.NFC == nil || cfg.NFC.Type4 != models.TagModeDESFire {
		return
	}

	printSection("DESFire Applications")
	df := models.DESFire{Separator: models.DefaultDESFireSeparator}
	for len(df.Apps) < models.MaxDESFireApps {
		appID := p.ask("Application ID (6 hex characters, empty to finish)", "")
		if appID == "" {
			break
		}
		app, err := models.NewDESFireApp(appID)
		if err != nil {
			printError(err.Error())
			continue
		}
		if fileID := p.askInt("File ID (0 for none)", 0, 0, 255); fileID > 0 {
			app.FileID = &fileID
		}
		if keySlot := p.askInt("Key slot (0 for none)", 0, 0, 9); keySlot > 0 {
			app.KeySlot = &keySlot
		}
		crypto := p.askChoice("Crypto mode: 0=none, 1=3DES, 3=AES", []string{"0", "1", "3"}, "0")
		if crypto != "0" {
			mode, _ := models.ParseCryptoMode(int(crypto[0] - '0'))
			app.Crypto = &mode
		}
		if err := df.AddApp(app); err != nil {
			printError(err.Error())
			break
		}
	}
	if len(df.Apps) > 0 {
		cfg.DESFire = &df
	}
}

// wizardKBSource proposes a keyboard source mask covering every data source
// the session configured. Card/tag UID output stays on so the reader still
// types something when a plain tag is presented.
func wizardKBSource(cfg *models.Config) string {
	b := models.NewKBSourceBuilder().CardEmulation().CardTagUID()
	if len(cfg.VAS) > 0 || len(cfg.SmartTap) == 0 {
		b.MobilePass()
	}
	if len(cfg.SmartTap) > 0 {
		b.STUID()
	}
	return b.Build()
}

func wizardKeyboardPhase(p *prompter, cfg *models.Config) {
	printSection("Keyboard Output")
	if !p.confirm("Enable keyboard output?", true) {
		return
	}

	kb := models.DefaultKeyboard()
	kb.LogMode = true
	kb.Source = p.ask("Keyboard source mask", wizardKBSource(cfg))

	if p.confirm("Configure advanced keyboard options?", false) {
		kb.Prefix = p.ask("Prefix (typed before the data)", kb.Prefix)
		kb.Postfix = p.ask("Postfix (typed after the data)", kb.Postfix)
		kb.DelayMS = p.askInt("Keystroke delay (ms)", kb.DelayMS, 5, 255)
	}
	cfg.Keyboard = &kb
}

func wizardFeedbackPhase(p *prompter, cfg *models.Config) {
	printSection("LED and Beeper Feedback")
	if !p.confirm("Configure LED and beeper feedback?", false) {
		return
	}

	mode := models.LEDMode(p.askInt("LED mode (0=off, 1=on, 2=status, 3=custom)", 3, 0, 3))
	led := &models.LED{Mode: &mode}

	for {
		passColor := p.ask("Pass LED color (RGB hex)", "00FF00")
		seq, err := models.NewLEDSequence(passColor, 100, 100, 2)
		if err != nil {
			printError(err.Error())
			continue
		}
		led.Pass = &seq
		break
	}
	for {
		errorColor := p.ask("Error LED color (RGB hex)", "FF0000")
		seq, err := models.NewLEDSequence(errorColor, 100, 100, 3)
		if err != nil {
			printError(err.Error())
			continue
		}
		led.PassError = &seq
		break
	}

	beep := &models.Beep{}
	if p.confirm("Beep on pass read?", true) {
		beep.Pass = &models.BeepSequence{OnMS: 100, OffMS: 100, Repeats: 2}
	}
	if p.confirm("Beep on read error?", true) {
		beep.PassError = &models.BeepSequence{OnMS: 200, OffMS: 100, Repeats: 3}
	}

	cfg.Feedback = &models.Feedback{LED: led, Beep: beep}
}

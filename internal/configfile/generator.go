// Package configfile is the bidirectional codec for the VTAP100 config.txt
// format: [Generate] serializes a [models.Config] into the line-oriented
// Key=Value text the reader consumes, [Parse] recovers a config from that
// text. The two are round-trip safe for every field the default-omission
// policy emits.
package configfile

import (
	"os"
	"strings"

	"github.com/vtaptools/vtapcfg/models"
)

// Header is the mandatory first line of every config.txt.
const Header = "!VTAPconfig"

// Section comment lines emitted ahead of each block.
const (
	commentVAS      = "; Apple VAS Configuration"
	commentSmartTap = "; Google Smart Tap Configuration"
	commentKeyboard = "; Keyboard Emulation"
	commentNFC      = "; NFC Tag Settings"
	commentDESFire  = "; MIFARE DESFire Settings"
	commentFeedback = "; LED/Beep Settings"
)

// Generate renders cfg as config.txt content: header, optional comment, the
// VAS and Smart Tap blocks (entries numbered 1..N by list position), then
// the static sections in fixed order. Sections that are absent or would emit
// no lines are omitted entirely. Lines are \n-joined without a trailing
// newline.
func Generate(cfg *models.Config, comment string) string {
	lines := make([]string, 0, 32)
	lines = append(lines, Header)

	if comment != "" {
		lines = append(lines, "; "+comment)
	}

	if len(cfg.VAS) > 0 {
		lines = append(lines, commentVAS)
		for i, v := range cfg.VAS {
			lines = append(lines, v.ConfigLines(i+1)...)
		}
	}
	if cfg.VASDefaultPasses != nil {
		lines = append(lines, cfg.VASDefaultPasses.ConfigLine())
	}

	if len(cfg.SmartTap) > 0 {
		lines = append(lines, commentSmartTap)
		for i, st := range cfg.SmartTap {
			lines = append(lines, st.ConfigLines(i+1)...)
		}
	}
	if cfg.SmartTapDefaultPasses != nil {
		lines = append(lines, cfg.SmartTapDefaultPasses.ConfigLine())
	}

	lines = append(lines, staticLines(cfg)...)

	return strings.Join(lines, "\n")
}

// staticLines renders the keyboard, NFC, DESFire and feedback blocks, each
// preceded by its section comment and dropped wholesale when line-less.
func staticLines(cfg *models.Config) []string {
	var lines []string

	if cfg.Keyboard != nil {
		// The keyboard section always emits at least KBLogMode.
		lines = append(lines, commentKeyboard)
		lines = append(lines, cfg.Keyboard.ConfigLines()...)
	}
	if cfg.NFC != nil {
		if nfcLines := cfg.NFC.ConfigLines(); len(nfcLines) > 0 {
			lines = append(lines, commentNFC)
			lines = append(lines, nfcLines...)
		}
	}
	if cfg.DESFire != nil {
		if dfLines := cfg.DESFire.ConfigLines(); len(dfLines) > 0 {
			lines = append(lines, commentDESFire)
			lines = append(lines, dfLines...)
		}
	}
	if cfg.Feedback != nil {
		if fbLines := cfg.Feedback.ConfigLines(); len(fbLines) > 0 {
			lines = append(lines, commentFeedback)
			lines = append(lines, fbLines...)
		}
	}
	return lines
}

// WriteFile generates cfg and writes it to path as a whole-file write.
func WriteFile(path string, cfg *models.Config, comment string) error {
	return WriteText(path, Generate(cfg, comment))
}

// WriteText writes already rendered config text to path.
func WriteText(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

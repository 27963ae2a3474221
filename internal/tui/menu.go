package tui

import (
	"fmt"

	"github.com/vtaptools/vtapcfg/models"
)

const (
	menuVAS = iota
	menuSmartTap
	menuKeyboard
	menuNFC
	menuDESFire
	menuFeedback
	menuPreview
)

type menuModel struct {
	idx    int
	status string
}

var menuItems = []string{
	"Apple VAS merchants",
	"Google Smart Tap collectors",
	"Keyboard output",
	"NFC tag reading",
	"DESFire applications",
	"LED & beeper feedback",
	"Preview & write",
}

func menuItemState(cfg *models.Config, idx int) string {
	switch idx {
	case menuVAS:
		return fmt.Sprintf("%d configured", len(cfg.VAS))
	case menuSmartTap:
		return fmt.Sprintf("%d configured", len(cfg.SmartTap))
	case menuKeyboard:
		if cfg.Keyboard == nil {
			return "off"
		}
		return "on, source " + cfg.Keyboard.Source
	case menuNFC:
		if cfg.NFC == nil {
			return "off"
		}
		return fmt.Sprintf("T2=%s T4=%s T5=%s",
			modeOrDash(cfg.NFC.Type2), modeOrDash(cfg.NFC.Type4), modeOrDash(cfg.NFC.Type5))
	case menuDESFire:
		if cfg.DESFire == nil {
			return "0 apps"
		}
		return fmt.Sprintf("%d apps", len(cfg.DESFire.Apps))
	case menuFeedback:
		if cfg.Feedback == nil {
			return "off"
		}
		return "configured"
	}
	return ""
}

func modeOrDash(m models.TagMode) string {
	if m == "" {
		return "-"
	}
	return string(m)
}

func (m menuModel) view(cfg *models.Config, outputPath string, dirty bool) string {
	title := "VTAP100 Configuration Editor"
	if dirty {
		title += "  " + dirtyStyle.Render("[modified]")
	}

	out := ""
	for i, item := range menuItems {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		state := menuItemState(cfg, i)
		if state != "" {
			out += fmt.Sprintf("%s%-28s %s\n", cursor, item, helpStyle.Render(state))
		} else {
			out += fmt.Sprintf("%s%s\n", cursor, item)
		}
	}

	if m.status != "" {
		out += "\n" + m.status
	}

	hotKeys := "enter: open │ p: preview │ ↑/↓: navigate │ w: write " + outputPath + " │ q: quit"
	return renderPage(title, out, hotKeys)
}

package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vtaptools/vtapcfg/models"
)

type stListModel struct {
	idx    int
	status string
}

func (m stListModel) view(cfg *models.Config) string {
	out := ""
	if len(cfg.SmartTap) == 0 {
		out = "No collectors configured"
	}
	for i, st := range cfg.SmartTap {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += fmt.Sprintf("%sST%d  %s  %s\n",
			cursor, i+1, fitText(st.CollectorID, 34),
			helpStyle.Render(fmt.Sprintf("slot %d v%d", st.KeySlot, st.KeyVersion)))
	}
	if m.status != "" {
		out += "\n" + m.status
	}
	return renderPage("Google Smart Tap Collectors", out,
		"n: new │ enter: edit │ d: delete │ esc: back")
}

type stFormModel struct {
	inputs   []textinput.Model
	focus    int
	editing  bool
	index    int
	snapshot []string
}

func newSTFormModel(entry *models.GoogleSmartTap, index int) stFormModel {
	m := stFormModel{inputs: newFormInputs(3), index: index}
	m.inputs[1].SetValue("1")
	m.inputs[2].SetValue("1")
	if entry != nil {
		m.editing = true
		m.inputs[0].SetValue(entry.CollectorID)
		m.inputs[1].SetValue(strconv.Itoa(entry.KeySlot))
		m.inputs[2].SetValue(strconv.Itoa(entry.KeyVersion))
	}
	m.snapshot = inputValues(m.inputs)
	return m
}

func (m stFormModel) dirty() bool {
	return !valuesEqual(inputValues(m.inputs), m.snapshot)
}

func (m stFormModel) toEntry() (models.GoogleSmartTap, error) {
	keySlot, err := intField("key slot", m.inputs[1].Value(), 1)
	if err != nil {
		return models.GoogleSmartTap{}, err
	}
	keyVersion, err := intField("key version", m.inputs[2].Value(), 1)
	if err != nil {
		return models.GoogleSmartTap{}, err
	}
	return models.NewGoogleSmartTap(m.inputs[0].Value(), keySlot, keyVersion)
}

func (m stFormModel) View() string {
	title := "New Smart Tap Collector"
	if m.editing {
		title = fmt.Sprintf("Edit Smart Tap Collector #%d", m.index+1)
	}

	out := "Collector ID: [" + m.inputs[0].View() + "]\n"
	out += "Key slot:     [" + m.inputs[1].View() + "]\n"
	out += "Key version:  [" + m.inputs[2].View() + "]\n"
	return renderPage(title, out,
		"enter: save │ tab: next field │ esc: back")
}

func focusNextSTForm(m stFormModel) stFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevSTForm(m stFormModel) stFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vtaptools/vtapcfg/models"
)

type vasListModel struct {
	idx    int
	status string
}

func (m vasListModel) view(cfg *models.Config) string {
	out := ""
	if len(cfg.VAS) == 0 {
		out = "No merchants configured"
	}
	for i, v := range cfg.VAS {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += fmt.Sprintf("%sVAS%d  %s  %s\n",
			cursor, i+1, fitText(v.MerchantID, 34), helpStyle.Render("slot "+strconv.Itoa(v.KeySlot)))
	}
	if m.status != "" {
		out += "\n" + m.status
	}
	return renderPage("Apple VAS Merchants", out,
		"n: new │ enter: edit │ d: delete │ esc: back")
}

type vasFormModel struct {
	inputs   []textinput.Model
	focus    int
	editing  bool
	index    int
	snapshot []string
}

func newVASFormModel(entry *models.AppleVAS, index int) vasFormModel {
	m := vasFormModel{inputs: newFormInputs(3), index: index}
	m.inputs[1].SetValue("1")
	if entry != nil {
		m.editing = true
		m.inputs[0].SetValue(entry.MerchantID)
		m.inputs[1].SetValue(strconv.Itoa(entry.KeySlot))
		m.inputs[2].SetValue(entry.MerchantURL)
	}
	m.snapshot = inputValues(m.inputs)
	return m
}

func (m vasFormModel) dirty() bool {
	return !valuesEqual(inputValues(m.inputs), m.snapshot)
}

func (m vasFormModel) toEntry() (models.AppleVAS, error) {
	keySlot, err := intField("key slot", m.inputs[1].Value(), 1)
	if err != nil {
		return models.AppleVAS{}, err
	}
	return models.NewAppleVAS(m.inputs[0].Value(), keySlot, m.inputs[2].Value())
}

func (m vasFormModel) View() string {
	title := "New Apple VAS Merchant"
	if m.editing {
		title = fmt.Sprintf("Edit Apple VAS Merchant #%d", m.index+1)
	}

	out := "Merchant ID:  [" + m.inputs[0].View() + "]\n"
	out += "Key slot:     [" + m.inputs[1].View() + "]\n"
	out += "Merchant URL: [" + m.inputs[2].View() + "]\n"
	return renderPage(title, out,
		"enter: save │ tab: next field │ esc: back")
}

func focusNextVASForm(m vasFormModel) vasFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevVASForm(m vasFormModel) vasFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

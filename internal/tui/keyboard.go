package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vtaptools/vtapcfg/models"
)

type kbFormModel struct {
	inputs   []textinput.Model
	focus    int
	enabled  bool
	snapshot []string
}

const (
	kbFieldLogMode = iota
	kbFieldEnable
	kbFieldSource
	kbFieldPrefix
	kbFieldPostfix
	kbFieldDelayMS
	kbFieldPassMode
	kbFieldPassSection
	kbFieldPassSeparator
	kbFieldPassStart
	kbFieldPassLength
	kbFieldCount
)

func newKBFormModel(kb *models.Keyboard) kbFormModel {
	m := kbFormModel{inputs: newFormInputs(kbFieldCount)}

	src := models.DefaultKeyboard()
	if kb != nil {
		m.enabled = true
		src = *kb
	}
	m.inputs[kbFieldLogMode].SetValue(formatBool(src.LogMode))
	m.inputs[kbFieldEnable].SetValue(formatBool(src.Enable))
	m.inputs[kbFieldSource].SetValue(src.Source)
	m.inputs[kbFieldPrefix].SetValue(src.Prefix)
	m.inputs[kbFieldPostfix].SetValue(src.Postfix)
	m.inputs[kbFieldDelayMS].SetValue(strconv.Itoa(src.DelayMS))
	m.inputs[kbFieldPassMode].SetValue(formatBool(src.PassMode))
	m.inputs[kbFieldPassSection].SetValue(strconv.Itoa(src.PassSection))
	m.inputs[kbFieldPassSeparator].SetValue(src.PassSeparator)
	m.inputs[kbFieldPassStart].SetValue(strconv.Itoa(src.PassStart))
	m.inputs[kbFieldPassLength].SetValue(strconv.Itoa(src.PassLength))

	m.snapshot = inputValues(m.inputs)
	return m
}

func (m kbFormModel) dirty() bool {
	return !valuesEqual(inputValues(m.inputs), m.snapshot)
}

func (m kbFormModel) toSection() (*models.Keyboard, error) {
	kb := models.DefaultKeyboard()

	var err error
	if kb.LogMode, err = boolField("log mode", m.inputs[kbFieldLogMode].Value(), false); err != nil {
		return nil, err
	}
	if kb.Enable, err = boolField("enable", m.inputs[kbFieldEnable].Value(), true); err != nil {
		return nil, err
	}
	if v := m.inputs[kbFieldSource].Value(); v != "" {
		kb.Source = v
	}
	kb.Prefix = m.inputs[kbFieldPrefix].Value()
	if v := m.inputs[kbFieldPostfix].Value(); v != "" {
		kb.Postfix = v
	}
	if kb.DelayMS, err = intField("delay", m.inputs[kbFieldDelayMS].Value(), models.DefaultKBDelayMS); err != nil {
		return nil, err
	}
	if kb.PassMode, err = boolField("pass mode", m.inputs[kbFieldPassMode].Value(), false); err != nil {
		return nil, err
	}
	if kb.PassSection, err = intField("pass section", m.inputs[kbFieldPassSection].Value(), 0); err != nil {
		return nil, err
	}
	if v := m.inputs[kbFieldPassSeparator].Value(); v != "" {
		kb.PassSeparator = v
	}
	if kb.PassStart, err = intField("pass start", m.inputs[kbFieldPassStart].Value(), 0); err != nil {
		return nil, err
	}
	if kb.PassLength, err = intField("pass length", m.inputs[kbFieldPassLength].Value(), 0); err != nil {
		return nil, err
	}

	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return &kb, nil
}

func (m kbFormModel) View() string {
	out := "Log mode (0/1):      [" + m.inputs[kbFieldLogMode].View() + "]\n"
	out += "USB enable (0/1):    [" + m.inputs[kbFieldEnable].View() + "]\n"
	out += "Source mask (hex):   [" + m.inputs[kbFieldSource].View() + "]\n"
	out += "Prefix:              [" + m.inputs[kbFieldPrefix].View() + "]\n"
	out += "Postfix:             [" + m.inputs[kbFieldPostfix].View() + "]\n"
	out += "Delay ms (5-255):    [" + m.inputs[kbFieldDelayMS].View() + "]\n"
	out += "Pass mode (0/1):     [" + m.inputs[kbFieldPassMode].View() + "]\n"
	out += "Pass section:        [" + m.inputs[kbFieldPassSection].View() + "]\n"
	out += "Pass separator:      [" + m.inputs[kbFieldPassSeparator].View() + "]\n"
	out += "Pass start:          [" + m.inputs[kbFieldPassStart].View() + "]\n"
	out += "Pass length:         [" + m.inputs[kbFieldPassLength].View() + "]\n"
	return renderPage("Keyboard Output", out,
		"enter: save │ tab: next field │ ctrl+d: remove section │ esc: back")
}

func focusNextKBForm(m kbFormModel) kbFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevKBForm(m kbFormModel) kbFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

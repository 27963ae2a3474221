package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vtaptools/vtapcfg/models"
)

type nfcFormModel struct {
	inputs   []textinput.Model
	focus    int
	snapshot []string
}

const (
	nfcFieldType2 = iota
	nfcFieldType4
	nfcFieldType5
	nfcFieldIgnoreRandom
	nfcFieldReportError
	nfcFieldByteOrder
	nfcFieldCount
)

func newNFCFormModel(nfc *models.NFCTag) nfcFormModel {
	m := nfcFormModel{inputs: newFormInputs(nfcFieldCount)}
	if nfc != nil {
		m.inputs[nfcFieldType2].SetValue(string(nfc.Type2))
		m.inputs[nfcFieldType4].SetValue(string(nfc.Type4))
		m.inputs[nfcFieldType5].SetValue(string(nfc.Type5))
		m.inputs[nfcFieldIgnoreRandom].SetValue(formatBool(nfc.IgnoreRandomUID))
		m.inputs[nfcFieldReportError].SetValue(formatBool(nfc.ReportReadError))
		m.inputs[nfcFieldByteOrder].SetValue(formatBool(nfc.ByteOrderReversed))
	}
	m.snapshot = inputValues(m.inputs)
	return m
}

func (m nfcFormModel) dirty() bool {
	return !valuesEqual(inputValues(m.inputs), m.snapshot)
}

func (m nfcFormModel) toSection() (*models.NFCTag, error) {
	nfc := &models.NFCTag{}

	for _, f := range []struct {
		field int
		dst   *models.TagMode
	}{
		{nfcFieldType2, &nfc.Type2},
		{nfcFieldType4, &nfc.Type4},
		{nfcFieldType5, &nfc.Type5},
	} {
		raw := strings.ToUpper(strings.TrimSpace(m.inputs[f.field].Value()))
		if raw == "" {
			continue
		}
		mode, err := models.ParseTagMode(raw)
		if err != nil {
			return nil, err
		}
		*f.dst = mode
	}

	var err error
	if nfc.IgnoreRandomUID, err = boolField("ignore random UID", m.inputs[nfcFieldIgnoreRandom].Value(), false); err != nil {
		return nil, err
	}
	if nfc.ReportReadError, err = boolField("report read error", m.inputs[nfcFieldReportError].Value(), false); err != nil {
		return nil, err
	}
	if nfc.ByteOrderReversed, err = boolField("byte order reversed", m.inputs[nfcFieldByteOrder].Value(), false); err != nil {
		return nil, err
	}

	if err := nfc.Validate(); err != nil {
		return nil, err
	}
	return nfc, nil
}

func (m nfcFormModel) View() string {
	out := "Type 2 mode (0/U/N/B):   [" + m.inputs[nfcFieldType2].View() + "]\n"
	out += "Type 4 mode (0/U/N/B/D): [" + m.inputs[nfcFieldType4].View() + "]\n"
	out += "Type 5 mode (0/U/N/B):   [" + m.inputs[nfcFieldType5].View() + "]\n"
	out += "Ignore random UID (0/1): [" + m.inputs[nfcFieldIgnoreRandom].View() + "]\n"
	out += "Report read error (0/1): [" + m.inputs[nfcFieldReportError].View() + "]\n"
	out += "Reverse byte order (0/1):[" + m.inputs[nfcFieldByteOrder].View() + "]\n"
	return renderPage("NFC Tag Reading", out,
		"enter: save │ tab: next field │ ctrl+d: remove section │ esc: back")
}

func focusNextNFCForm(m nfcFormModel) nfcFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevNFCForm(m nfcFormModel) nfcFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

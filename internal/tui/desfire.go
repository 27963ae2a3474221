package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vtaptools/vtapcfg/models"
)

type dfListModel struct {
	idx    int
	status string
}

func (m dfListModel) view(cfg *models.Config) string {
	out := ""
	if cfg.DESFire == nil || len(cfg.DESFire.Apps) == 0 {
		out = "No applications configured"
	} else {
		for i, app := range cfg.DESFire.Apps {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			detail := "file " + formatOptInt(app.FileID)
			if app.FileID == nil {
				detail = "no file"
			}
			out += fmt.Sprintf("%sDESFire%d  %s  %s\n",
				cursor, i+1, app.AppID, helpStyle.Render(detail))
		}
	}
	if m.status != "" {
		out += "\n" + m.status
	}
	return renderPage("DESFire Applications", out,
		"n: new │ enter: edit │ d: delete │ esc: back")
}

type dfFormModel struct {
	inputs   []textinput.Model
	focus    int
	editing  bool
	index    int
	snapshot []string
}

const (
	dfFieldAppID = iota
	dfFieldFileID
	dfFieldKeyNum
	dfFieldKeySlot
	dfFieldCrypto
	dfFieldFormat
	dfFieldReadLength
	dfFieldReadOffset
	dfFieldCount
)

func newDFFormModel(entry *models.DESFireApp, index int) dfFormModel {
	m := dfFormModel{inputs: newFormInputs(dfFieldCount), index: index}
	m.inputs[dfFieldReadLength].SetValue(strconv.Itoa(models.DefaultDESFireReadLength))
	m.inputs[dfFieldReadOffset].SetValue("0")
	if entry != nil {
		m.editing = true
		m.inputs[dfFieldAppID].SetValue(entry.AppID)
		m.inputs[dfFieldFileID].SetValue(formatOptInt(entry.FileID))
		m.inputs[dfFieldKeyNum].SetValue(formatOptInt(entry.KeyNum))
		m.inputs[dfFieldKeySlot].SetValue(formatOptInt(entry.KeySlot))
		if entry.Crypto != nil {
			m.inputs[dfFieldCrypto].SetValue(strconv.Itoa(int(*entry.Crypto)))
		}
		if entry.Format != nil {
			m.inputs[dfFieldFormat].SetValue(strconv.Itoa(int(*entry.Format)))
		}
		m.inputs[dfFieldReadLength].SetValue(strconv.Itoa(entry.ReadLength))
		m.inputs[dfFieldReadOffset].SetValue(strconv.Itoa(entry.ReadOffset))
	}
	m.snapshot = inputValues(m.inputs)
	return m
}

func (m dfFormModel) dirty() bool {
	return !valuesEqual(inputValues(m.inputs), m.snapshot)
}

func (m dfFormModel) toEntry() (models.DESFireApp, error) {
	app := models.DESFireApp{AppID: m.inputs[dfFieldAppID].Value()}

	var err error
	if app.FileID, err = optIntField("file ID", m.inputs[dfFieldFileID].Value()); err != nil {
		return models.DESFireApp{}, err
	}
	if app.KeyNum, err = optIntField("key number", m.inputs[dfFieldKeyNum].Value()); err != nil {
		return models.DESFireApp{}, err
	}
	if app.KeySlot, err = optIntField("key slot", m.inputs[dfFieldKeySlot].Value()); err != nil {
		return models.DESFireApp{}, err
	}

	if crypto, err := optIntField("crypto mode", m.inputs[dfFieldCrypto].Value()); err != nil {
		return models.DESFireApp{}, err
	} else if crypto != nil {
		mode, err := models.ParseCryptoMode(*crypto)
		if err != nil {
			return models.DESFireApp{}, err
		}
		app.Crypto = &mode
	}
	if format, err := optIntField("data format", m.inputs[dfFieldFormat].Value()); err != nil {
		return models.DESFireApp{}, err
	} else if format != nil {
		f, err := models.ParseDataFormat(*format)
		if err != nil {
			return models.DESFireApp{}, err
		}
		app.Format = &f
	}

	if app.ReadLength, err = intField("read length", m.inputs[dfFieldReadLength].Value(), models.DefaultDESFireReadLength); err != nil {
		return models.DESFireApp{}, err
	}
	if app.ReadOffset, err = intField("read offset", m.inputs[dfFieldReadOffset].Value(), 0); err != nil {
		return models.DESFireApp{}, err
	}

	if err := app.Validate(); err != nil {
		return models.DESFireApp{}, err
	}
	return app, nil
}

func (m dfFormModel) View() string {
	title := "New DESFire Application"
	if m.editing {
		title = fmt.Sprintf("Edit DESFire Application #%d", m.index+1)
	}

	out := "App ID (6 hex):    [" + m.inputs[dfFieldAppID].View() + "]\n"
	out += "File ID:           [" + m.inputs[dfFieldFileID].View() + "]\n"
	out += "Key number:        [" + m.inputs[dfFieldKeyNum].View() + "]\n"
	out += "Key slot (1-9):    [" + m.inputs[dfFieldKeySlot].View() + "]\n"
	out += "Crypto (0/1/3):    [" + m.inputs[dfFieldCrypto].View() + "]\n"
	out += "Format (0/1/2):    [" + m.inputs[dfFieldFormat].View() + "]\n"
	out += "Read length:       [" + m.inputs[dfFieldReadLength].View() + "]\n"
	out += "Read offset:       [" + m.inputs[dfFieldReadOffset].View() + "]\n"
	return renderPage(title, out,
		"enter: save │ tab: next field │ esc: back")
}

func focusNextDFForm(m dfFormModel) dfFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevDFForm(m dfFormModel) dfFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

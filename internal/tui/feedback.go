package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vtaptools/vtapcfg/models"
)

type feedbackFormModel struct {
	inputs   []textinput.Model
	focus    int
	snapshot []string
}

const (
	fbFieldLEDMode = iota
	fbFieldLEDSelect
	fbFieldDefaultRGB
	fbFieldPassLED
	fbFieldErrorLED
	fbFieldPassBeep
	fbFieldErrorBeep
	fbFieldTagBeep
	fbFieldStartBeep
	fbFieldCount
)

func newFeedbackFormModel(fb *models.Feedback) feedbackFormModel {
	m := feedbackFormModel{inputs: newFormInputs(fbFieldCount)}
	if fb != nil && fb.LED != nil {
		led := fb.LED
		if led.Mode != nil {
			m.inputs[fbFieldLEDMode].SetValue(strconv.Itoa(int(*led.Mode)))
		}
		if led.Select != nil {
			m.inputs[fbFieldLEDSelect].SetValue(strconv.Itoa(int(*led.Select)))
		}
		m.inputs[fbFieldDefaultRGB].SetValue(led.DefaultRGB)
		if led.Pass != nil {
			m.inputs[fbFieldPassLED].SetValue(led.Pass.ConfigValue())
		}
		if led.PassError != nil {
			m.inputs[fbFieldErrorLED].SetValue(led.PassError.ConfigValue())
		}
	}
	if fb != nil && fb.Beep != nil {
		beep := fb.Beep
		if beep.Pass != nil {
			m.inputs[fbFieldPassBeep].SetValue(beep.Pass.ConfigValue())
		}
		if beep.PassError != nil {
			m.inputs[fbFieldErrorBeep].SetValue(beep.PassError.ConfigValue())
		}
		if beep.Tag != nil {
			m.inputs[fbFieldTagBeep].SetValue(beep.Tag.ConfigValue())
		}
		if beep.Start != nil {
			m.inputs[fbFieldStartBeep].SetValue(beep.Start.ConfigValue())
		}
	}
	m.snapshot = inputValues(m.inputs)
	return m
}

func (m feedbackFormModel) dirty() bool {
	return !valuesEqual(inputValues(m.inputs), m.snapshot)
}

// parseLEDSeqField parses the compound "color,on,off,repeats" form value.
func parseLEDSeqField(label, raw string) (*models.LEDSequence, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%s: expected color,on,off,repeats", label)
	}
	nums, err := seqInts(label, parts[1:])
	if err != nil {
		return nil, err
	}
	seq, err := models.NewLEDSequence(parts[0], nums[0], nums[1], nums[2])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return &seq, nil
}

// parseBeepSeqField parses the compound "on,off,repeats[,frequency]" form
// value.
func parseBeepSeqField(label, raw string) (*models.BeepSequence, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("%s: expected on,off,repeats[,frequency]", label)
	}
	nums, err := seqInts(label, parts)
	if err != nil {
		return nil, err
	}
	var freq *int
	if len(nums) == 4 {
		freq = &nums[3]
	}
	seq, err := models.NewBeepSequence(nums[0], nums[1], nums[2], freq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return &seq, nil
}

func seqInts(label string, parts []string) ([]int, error) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", label, p)
		}
		nums[i] = n
	}
	return nums, nil
}

func (m feedbackFormModel) toSection() (*models.Feedback, error) {
	empty := true
	for _, v := range inputValues(m.inputs) {
		if strings.TrimSpace(v) != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil, nil
	}

	led := &models.LED{DefaultRGB: strings.TrimSpace(m.inputs[fbFieldDefaultRGB].Value())}

	if mode, err := optIntField("LED mode", m.inputs[fbFieldLEDMode].Value()); err != nil {
		return nil, err
	} else if mode != nil {
		parsed, err := models.ParseLEDMode(*mode)
		if err != nil {
			return nil, err
		}
		led.Mode = &parsed
	}
	if sel, err := optIntField("LED select", m.inputs[fbFieldLEDSelect].Value()); err != nil {
		return nil, err
	} else if sel != nil {
		parsed, err := models.ParseLEDSelect(*sel)
		if err != nil {
			return nil, err
		}
		led.Select = &parsed
	}

	var err error
	if led.Pass, err = parseLEDSeqField("pass LED", m.inputs[fbFieldPassLED].Value()); err != nil {
		return nil, err
	}
	if led.PassError, err = parseLEDSeqField("error LED", m.inputs[fbFieldErrorLED].Value()); err != nil {
		return nil, err
	}

	beep := &models.Beep{}
	if beep.Pass, err = parseBeepSeqField("pass beep", m.inputs[fbFieldPassBeep].Value()); err != nil {
		return nil, err
	}
	if beep.PassError, err = parseBeepSeqField("error beep", m.inputs[fbFieldErrorBeep].Value()); err != nil {
		return nil, err
	}
	if beep.Tag, err = parseBeepSeqField("tag beep", m.inputs[fbFieldTagBeep].Value()); err != nil {
		return nil, err
	}
	if beep.Start, err = parseBeepSeqField("start beep", m.inputs[fbFieldStartBeep].Value()); err != nil {
		return nil, err
	}

	fb := &models.Feedback{LED: led, Beep: beep}
	if err := fb.Validate(); err != nil {
		return nil, err
	}
	return fb, nil
}

func (m feedbackFormModel) View() string {
	out := "LED mode (0-3):          [" + m.inputs[fbFieldLEDMode].View() + "]\n"
	out += "LED select (0-3):        [" + m.inputs[fbFieldLEDSelect].View() + "]\n"
	out += "Default RGB (hex):       [" + m.inputs[fbFieldDefaultRGB].View() + "]\n"
	out += "Pass LED (c,on,off,rep): [" + m.inputs[fbFieldPassLED].View() + "]\n"
	out += "Error LED (c,on,off,rep):[" + m.inputs[fbFieldErrorLED].View() + "]\n"
	out += "Pass beep (on,off,rep):  [" + m.inputs[fbFieldPassBeep].View() + "]\n"
	out += "Error beep (on,off,rep): [" + m.inputs[fbFieldErrorBeep].View() + "]\n"
	out += "Tag beep (on,off,rep):   [" + m.inputs[fbFieldTagBeep].View() + "]\n"
	out += "Start beep (on,off,rep): [" + m.inputs[fbFieldStartBeep].View() + "]\n"
	return renderPage("LED & Beeper Feedback", out,
		"enter: save │ tab: next field │ ctrl+d: remove section │ esc: back")
}

func focusNextFBForm(m feedbackFormModel) feedbackFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevFBForm(m feedbackFormModel) feedbackFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

func newFormInputs(n int) []textinput.Model {
	inputs := make([]textinput.Model, n)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Focus()
	return inputs
}

func inputValues(inputs []textinput.Model) []string {
	values := make([]string, len(inputs))
	for i := range inputs {
		values[i] = inputs[i].Value()
	}
	return values
}

func valuesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// intField parses a numeric form field, treating empty as the default.
func intField(label, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", label, raw)
	}
	return n, nil
}

// optIntField parses an optional numeric form field; empty means unset.
func optIntField(label, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %q is not a number", label, raw)
	}
	return &n, nil
}

// boolField parses a 0/1 form field, the same encoding config.txt uses.
func boolField(label, raw string, def bool) (bool, error) {
	switch strings.TrimSpace(raw) {
	case "":
		return def, nil
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("%s: enter 0 or 1", label)
}

func formatOptInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

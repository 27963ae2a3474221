package models

import "fmt"

// LEDMode is the LED operating mode.
type LEDMode int

const (
	LEDOff    LEDMode = 0
	LEDOn     LEDMode = 1
	LEDStatus LEDMode = 2
	// LEDCustom enables the named custom sequences.
	LEDCustom LEDMode = 3
)

// ParseLEDMode maps a numeric code onto the closed LEDMode set.
func ParseLEDMode(v int) (LEDMode, error) {
	if v < 0 || v > 3 {
		return 0, fmt.Errorf("unknown LED mode %d", v)
	}
	return LEDMode(v), nil
}

// LEDSelect identifies the physical LED being driven.
type LEDSelect int

const (
	// LEDSelectExternal is the external RGB LED (common cathode).
	LEDSelectExternal LEDSelect = 0
	// LEDSelectOnboardCompact is the on-board LED of the compact case.
	LEDSelectOnboardCompact LEDSelect = 1
	// LEDSelectOnboardSquare is the on-board LED of the square case.
	LEDSelectOnboardSquare LEDSelect = 2
	// LEDSelectSerial drives serial LEDs.
	LEDSelectSerial LEDSelect = 3
)

// ParseLEDSelect maps a numeric code onto the closed LEDSelect set.
func ParseLEDSelect(v int) (LEDSelect, error) {
	if v < 0 || v > 3 {
		return 0, fmt.Errorf("unknown LED select %d", v)
	}
	return LEDSelect(v), nil
}

// LEDSequence is one named LED feedback sequence: color plus timing.
type LEDSequence struct {
	// Color is the RGB color, 6 hex characters, uppercased on
	// normalization.
	Color string

	// OnMS is the on time in milliseconds (0-65535).
	OnMS int

	// OffMS is the off time in milliseconds (0-65535).
	OffMS int

	// Repeats is the repeat count (1-255).
	Repeats int
}

// NewLEDSequence validates and returns an LED sequence.
func NewLEDSequence(color string, onMS, offMS, repeats int) (LEDSequence, error) {
	s := LEDSequence{Color: color, OnMS: onMS, OffMS: offMS, Repeats: repeats}
	if err := s.Validate(); err != nil {
		return LEDSequence{}, err
	}
	return s, nil
}

// DefaultLEDSequence returns a sequence with the documented timing defaults
// (100ms on, 100ms off, one repeat) for the given color. The color is still
// validated.
func DefaultLEDSequence(color string) (LEDSequence, error) {
	return NewLEDSequence(color, 100, 100, 1)
}

// Validate checks all field constraints and uppercases Color.
func (s *LEDSequence) Validate() error {
	color, err := normalizeHex("color", s.Color, 6)
	if err != nil {
		return err
	}
	s.Color = color

	if err := intInRange("on_ms", s.OnMS, 0, 65535); err != nil {
		return err
	}
	if err := intInRange("off_ms", s.OffMS, 0, 65535); err != nil {
		return err
	}
	return intInRange("repeats", s.Repeats, 1, 255)
}

// ConfigValue renders the compound value "color,on,off,repeats".
func (s LEDSequence) ConfigValue() string {
	return fmt.Sprintf("%s,%d,%d,%d", s.Color, s.OnMS, s.OffMS, s.Repeats)
}

// BeepSequence is one named buzzer feedback sequence.
type BeepSequence struct {
	// OnMS is the on time in milliseconds (0-65535).
	OnMS int

	// OffMS is the off time in milliseconds (0-65535).
	OffMS int

	// Repeats is the repeat count (1-255).
	Repeats int

	// Frequency is the optional tone frequency in Hz (100-20000).
	// Nil leaves the firmware default (3136 Hz).
	Frequency *int
}

// NewBeepSequence validates and returns a beep sequence. frequency may be
// nil.
func NewBeepSequence(onMS, offMS, repeats int, frequency *int) (BeepSequence, error) {
	s := BeepSequence{OnMS: onMS, OffMS: offMS, Repeats: repeats, Frequency: frequency}
	if err := s.Validate(); err != nil {
		return BeepSequence{}, err
	}
	return s, nil
}

// DefaultBeepSequence returns a sequence with the documented timing defaults
// (100ms on, 100ms off, one repeat, firmware frequency).
func DefaultBeepSequence() BeepSequence {
	return BeepSequence{OnMS: 100, OffMS: 100, Repeats: 1}
}

// Validate checks all field constraints.
func (s *BeepSequence) Validate() error {
	if err := intInRange("on_ms", s.OnMS, 0, 65535); err != nil {
		return err
	}
	if err := intInRange("off_ms", s.OffMS, 0, 65535); err != nil {
		return err
	}
	if err := intInRange("repeats", s.Repeats, 1, 255); err != nil {
		return err
	}
	if s.Frequency != nil {
		return intInRange("frequency", *s.Frequency, 100, 20000)
	}
	return nil
}

// ConfigValue renders the compound value "on,off,repeats[,frequency]"; the
// frequency field is present only when set.
func (s BeepSequence) ConfigValue() string {
	base := fmt.Sprintf("%d,%d,%d", s.OnMS, s.OffMS, s.Repeats)
	if s.Frequency != nil {
		return fmt.Sprintf("%s,%d", base, *s.Frequency)
	}
	return base
}

// LED holds the LED feedback settings and up to four named sequences.
type LED struct {
	// Mode is the LED operating mode. Nil when unconfigured.
	Mode *LEDMode

	// Select identifies the physical LED. Nil when unconfigured.
	Select *LEDSelect

	// DefaultRGB is the idle color, 6 hex characters. Empty when unset.
	DefaultRGB string

	// Pass runs on a successful pass read.
	Pass *LEDSequence
	// Tag runs on a tag read.
	Tag *LEDSequence
	// PassError runs on a pass read error.
	PassError *LEDSequence
	// Start runs at startup.
	Start *LEDSequence
}

// Validate checks the mode codes, normalizes DefaultRGB, and validates every
// configured sequence.
func (l *LED) Validate() error {
	if l.Mode != nil {
		if _, err := ParseLEDMode(int(*l.Mode)); err != nil {
			return fieldErrorf("mode", "%v", err)
		}
	}
	if l.Select != nil {
		if _, err := ParseLEDSelect(int(*l.Select)); err != nil {
			return fieldErrorf("select", "%v", err)
		}
	}
	if l.DefaultRGB != "" {
		rgb, err := normalizeHex("default_rgb", l.DefaultRGB, 6)
		if err != nil {
			return err
		}
		l.DefaultRGB = rgb
	}
	for _, seq := range []*LEDSequence{l.Pass, l.Tag, l.PassError, l.Start} {
		if seq == nil {
			continue
		}
		if err := seq.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ConfigLines renders the LED settings; every field only appears when set.
func (l LED) ConfigLines() []string {
	var lines []string

	if l.Mode != nil {
		lines = append(lines, fmt.Sprintf("LEDMode=%d", int(*l.Mode)))
	}
	if l.Select != nil {
		lines = append(lines, fmt.Sprintf("LEDSelect=%d", int(*l.Select)))
	}
	if l.DefaultRGB != "" {
		lines = append(lines, "LEDDefaultRGB="+l.DefaultRGB)
	}
	if l.Pass != nil {
		lines = append(lines, "PassLED="+l.Pass.ConfigValue())
	}
	if l.Tag != nil {
		lines = append(lines, "TagLED="+l.Tag.ConfigValue())
	}
	if l.PassError != nil {
		lines = append(lines, "PassErrorLED="+l.PassError.ConfigValue())
	}
	if l.Start != nil {
		lines = append(lines, "StartLED="+l.Start.ConfigValue())
	}
	return lines
}

// Beep holds up to four named buzzer sequences.
type Beep struct {
	// Pass runs on a successful pass read.
	Pass *BeepSequence
	// Tag runs on a tag read.
	Tag *BeepSequence
	// PassError runs on a pass read error.
	PassError *BeepSequence
	// Start runs at startup.
	Start *BeepSequence
}

// Validate validates every configured sequence.
func (b *Beep) Validate() error {
	for _, seq := range []*BeepSequence{b.Pass, b.Tag, b.PassError, b.Start} {
		if seq == nil {
			continue
		}
		if err := seq.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ConfigLines renders the beep settings; every slot only appears when set.
func (b Beep) ConfigLines() []string {
	var lines []string

	if b.Pass != nil {
		lines = append(lines, "PassBeep="+b.Pass.ConfigValue())
	}
	if b.Tag != nil {
		lines = append(lines, "TagBeep="+b.Tag.ConfigValue())
	}
	if b.PassError != nil {
		lines = append(lines, "PassErrorBeep="+b.PassError.ConfigValue())
	}
	if b.Start != nil {
		lines = append(lines, "StartBeep="+b.Start.ConfigValue())
	}
	return lines
}

// Feedback combines the two independent feedback singletons.
type Feedback struct {
	LED  *LED
	Beep *Beep
}

// Validate validates both configured halves.
func (f *Feedback) Validate() error {
	if f.LED != nil {
		if err := f.LED.Validate(); err != nil {
			return err
		}
	}
	if f.Beep != nil {
		return f.Beep.Validate()
	}
	return nil
}

// ConfigLines renders LED lines followed by beep lines.
func (f Feedback) ConfigLines() []string {
	var lines []string

	if f.LED != nil {
		lines = append(lines, f.LED.ConfigLines()...)
	}
	if f.Beep != nil {
		lines = append(lines, f.Beep.ConfigLines()...)
	}
	return lines
}

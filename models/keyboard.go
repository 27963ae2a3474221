package models

import "fmt"

// Keyboard default values. A field whose value equals its default is
// suppressed from the generated output, except KBLogMode which the reader
// expects on every config.
const (
	DefaultKBSource        = "A5"
	DefaultKBPostfix       = "%0A"
	DefaultKBDelayMS       = 5
	DefaultKBPassSeparator = "|"
)

// Keyboard configures keyboard emulation: the reader sends pass data as
// keystrokes to the host computer.
//
// Reference:
//   - https://help.vtapnfc.com/en/Content/VTAP-Commands/Config-txt-KB-settings.htm
type Keyboard struct {
	// LogMode enables keyboard emulation (KBLogMode).
	LogMode bool

	// Enable controls the USB keyboard device function (KBEnable).
	// Disable for Android integrations that don't need HID.
	Enable bool

	// Source selects which data sources trigger keyboard output
	// (KBSource), a hex bitmask string. See [KBSourceBuilder].
	Source string

	// Prefix is an optional string typed before the data (KBPrefix).
	// Empty when unset.
	Prefix string

	// Postfix is typed after the data (KBPostfix). Default is a newline.
	Postfix string

	// DelayMS is the delay between keystrokes in milliseconds
	// (KBDelayMS), 5-255.
	DelayMS int

	// PassMode enables pass payload extraction (KBPassMode).
	PassMode bool

	// PassSection selects which section to extract (KBPassSection).
	PassSection int

	// PassSeparator is the single separator character between sections
	// (KBPassSeparator).
	PassSeparator string

	// PassStart is the start position for extraction (KBPassStart).
	PassStart int

	// PassLength bounds the extraction; 0 extracts everything
	// (KBPassLength).
	PassLength int
}

// DefaultKeyboard returns a Keyboard with all documented defaults.
func DefaultKeyboard() Keyboard {
	return Keyboard{
		Enable:        true,
		Source:        DefaultKBSource,
		Postfix:       DefaultKBPostfix,
		DelayMS:       DefaultKBDelayMS,
		PassSeparator: DefaultKBPassSeparator,
	}
}

// Validate checks all field constraints.
func (k *Keyboard) Validate() error {
	if err := intInRange("delay_ms", k.DelayMS, 5, 255); err != nil {
		return err
	}
	if k.PassSection < 0 {
		return fieldErrorf("pass_section", "must not be negative")
	}
	if len(k.PassSeparator) != 1 {
		return fieldErrorf("pass_separator", "must be a single character")
	}
	if k.PassStart < 0 {
		return fieldErrorf("pass_start", "must not be negative")
	}
	if k.PassLength < 0 {
		return fieldErrorf("pass_length", "must not be negative")
	}
	return nil
}

// ConfigLines renders the keyboard settings. KBLogMode is always emitted;
// everything else is omitted at its default. The pass-extraction block only
// appears when PassMode is on.
func (k Keyboard) ConfigLines() []string {
	lines := []string{fmt.Sprintf("KBLogMode=%s", boolFlag(k.LogMode))}

	if !k.Enable {
		lines = append(lines, "KBEnable=0")
	}
	// KBSource rides along whenever emulation is on, so the reader's
	// active source mask is always explicit in that case.
	if k.Source != DefaultKBSource || k.LogMode {
		lines = append(lines, "KBSource="+k.Source)
	}
	if k.Prefix != "" {
		lines = append(lines, "KBPrefix="+k.Prefix)
	}
	if k.Postfix != DefaultKBPostfix {
		lines = append(lines, "KBPostfix="+k.Postfix)
	}
	if k.DelayMS != DefaultKBDelayMS {
		lines = append(lines, fmt.Sprintf("KBDelayMS=%d", k.DelayMS))
	}

	if k.PassMode {
		lines = append(lines, "KBPassMode=1")
		if k.PassSection != 0 {
			lines = append(lines, fmt.Sprintf("KBPassSection=%d", k.PassSection))
		}
		if k.PassSeparator != DefaultKBPassSeparator {
			lines = append(lines, "KBPassSeparator="+k.PassSeparator)
		}
		if k.PassStart != 0 {
			lines = append(lines, fmt.Sprintf("KBPassStart=%d", k.PassStart))
		}
		if k.PassLength != 0 {
			lines = append(lines, fmt.Sprintf("KBPassLength=%d", k.PassLength))
		}
	}
	return lines
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// KBSource bit masks per the official VTAP documentation.
const (
	KBSourceMobilePass       = 0x80 // Apple VAS / Google Smart Tap
	KBSourceSTUID            = 0x40
	KBSourceCardEmulation    = 0x20
	KBSourceScanners         = 0x04
	KBSourceCommandInterface = 0x02
	KBSourceCardTagUID       = 0x01
)

// KBSourceBuilder assembles KBSource hex bitmask values, e.g.
//
//	NewKBSourceBuilder().MobilePass().CardTagUID().Build() // "81"
type KBSourceBuilder struct {
	value int
}

// NewKBSourceBuilder returns an empty builder with value 0.
func NewKBSourceBuilder() *KBSourceBuilder {
	return &KBSourceBuilder{}
}

// MobilePass enables mobile pass data (Apple VAS / Google Smart Tap).
func (b *KBSourceBuilder) MobilePass() *KBSourceBuilder {
	b.value |= KBSourceMobilePass
	return b
}

// STUID enables STUID data.
func (b *KBSourceBuilder) STUID() *KBSourceBuilder {
	b.value |= KBSourceSTUID
	return b
}

// CardEmulation enables card emulation write mode.
func (b *KBSourceBuilder) CardEmulation() *KBSourceBuilder {
	b.value |= KBSourceCardEmulation
	return b
}

// Scanners enables scanner input.
func (b *KBSourceBuilder) Scanners() *KBSourceBuilder {
	b.value |= KBSourceScanners
	return b
}

// CommandInterface enables command interface messages.
func (b *KBSourceBuilder) CommandInterface() *KBSourceBuilder {
	b.value |= KBSourceCommandInterface
	return b
}

// CardTagUID enables card/tag UID data.
func (b *KBSourceBuilder) CardTagUID() *KBSourceBuilder {
	b.value |= KBSourceCardTagUID
	return b
}

// Build returns the uppercase two-digit hex string, e.g. "A5".
func (b *KBSourceBuilder) Build() string {
	return fmt.Sprintf("%02X", b.value)
}

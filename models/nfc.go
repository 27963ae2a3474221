package models

import (
	"fmt"
	"strconv"
)

// TagMode selects how the reader handles one NFC tag type.
type TagMode string

const (
	// TagModeDisabled turns the tag type off.
	TagModeDisabled TagMode = "0"
	// TagModeUID reads only the UID.
	TagModeUID TagMode = "U"
	// TagModeNDEF reads NDEF records.
	TagModeNDEF TagMode = "N"
	// TagModeBlock reads raw block data.
	TagModeBlock TagMode = "B"
	// TagModeDESFire reads DESFire secure data (Type 4 only).
	TagModeDESFire TagMode = "D"
)

// ParseTagMode maps a single-character mode code onto the closed TagMode set.
func ParseTagMode(s string) (TagMode, error) {
	switch TagMode(s) {
	case TagModeDisabled, TagModeUID, TagModeNDEF, TagModeBlock, TagModeDESFire:
		return TagMode(s), nil
	}
	return "", fmt.Errorf("unknown tag mode %q", s)
}

// TagKeyType is the MIFARE key type used for block authentication.
type TagKeyType string

const (
	TagKeyTypeA TagKeyType = "A"
	TagKeyTypeB TagKeyType = "B"
	// TagKeyTypeC is the compatibility key type.
	TagKeyTypeC TagKeyType = "C"
)

// ParseTagKeyType maps a key type code onto the closed TagKeyType set.
func ParseTagKeyType(s string) (TagKeyType, error) {
	switch TagKeyType(s) {
	case TagKeyTypeA, TagKeyTypeB, TagKeyTypeC:
		return TagKeyType(s), nil
	}
	return "", fmt.Errorf("unknown tag key type %q", s)
}

// TagReadFormat is the output format for block data.
type TagReadFormat string

const (
	TagReadFormatASCII   TagReadFormat = "a"
	TagReadFormatDecimal TagReadFormat = "d"
	TagReadFormatHex     TagReadFormat = "h"
)

// ParseTagReadFormat maps a format code onto the closed TagReadFormat set.
func ParseTagReadFormat(s string) (TagReadFormat, error) {
	switch TagReadFormat(s) {
	case TagReadFormatASCII, TagReadFormatDecimal, TagReadFormatHex:
		return TagReadFormat(s), nil
	}
	return "", fmt.Errorf("unknown tag read format %q", s)
}

// TagRead configures block reading, used when a tag type is in
// [TagModeBlock]. Unset optional fields are nil pointers or empty strings.
type TagRead struct {
	// BlockNum is the block number to read (TagReadBlockNum, 0-255).
	BlockNum *int

	// KeySlot is the authentication key slot (TagReadKeySlot, 1-9).
	KeySlot *int

	// KeyType is the MIFARE key type (TagReadKeyType). Empty when unset.
	KeyType TagKeyType

	// Offset is the start byte within the block (TagReadOffset, 0-15).
	Offset int

	// Length is the number of bytes to read (TagReadLength, 1-16).
	Length *int

	// Format is the output format (TagReadFormat). Empty when unset.
	Format TagReadFormat

	// MinDigits is the minimum digits for UID output (TagReadMinDigits):
	// "1".."20" or the literal "A" for auto. Empty when unset.
	MinDigits string
}

// Validate checks all field constraints.
func (t *TagRead) Validate() error {
	if t.BlockNum != nil {
		if err := intInRange("block_num", *t.BlockNum, 0, 255); err != nil {
			return err
		}
	}
	if t.KeySlot != nil {
		if err := intInRange("key_slot", *t.KeySlot, 1, 9); err != nil {
			return err
		}
	}
	if t.KeyType != "" {
		if _, err := ParseTagKeyType(string(t.KeyType)); err != nil {
			return fieldErrorf("key_type", "%v", err)
		}
	}
	if err := intInRange("offset", t.Offset, 0, 15); err != nil {
		return err
	}
	if t.Length != nil {
		if err := intInRange("length", *t.Length, 1, 16); err != nil {
			return err
		}
	}
	if t.Format != "" {
		if _, err := ParseTagReadFormat(string(t.Format)); err != nil {
			return fieldErrorf("format", "%v", err)
		}
	}
	if t.MinDigits != "" && t.MinDigits != "A" {
		n, err := strconv.Atoi(t.MinDigits)
		if err != nil {
			return fieldErrorf("min_digits", "must be 1-20 or 'A' for auto")
		}
		if err := intInRange("min_digits", n, 1, 20); err != nil {
			return err
		}
	}
	return nil
}

// ConfigLines renders the block-read settings; Offset is omitted at 0, all
// other fields only appear when set.
func (t TagRead) ConfigLines() []string {
	var lines []string

	if t.BlockNum != nil {
		lines = append(lines, fmt.Sprintf("TagReadBlockNum=%d", *t.BlockNum))
	}
	if t.KeySlot != nil {
		lines = append(lines, fmt.Sprintf("TagReadKeySlot=%d", *t.KeySlot))
	}
	if t.KeyType != "" {
		lines = append(lines, "TagReadKeyType="+string(t.KeyType))
	}
	if t.Offset != 0 {
		lines = append(lines, fmt.Sprintf("TagReadOffset=%d", t.Offset))
	}
	if t.Length != nil {
		lines = append(lines, fmt.Sprintf("TagReadLength=%d", *t.Length))
	}
	if t.Format != "" {
		lines = append(lines, "TagReadFormat="+string(t.Format))
	}
	if t.MinDigits != "" {
		lines = append(lines, "TagReadMinDigits="+t.MinDigits)
	}
	return lines
}

// NFCTag configures NFC tag reading across the three supported tag types.
//
// Reference:
//   - https://help.vtapnfc.com/en/Content/VTAP-Commands/Config-txt-tag-settings.htm
type NFCTag struct {
	// Type2 is the mode for NFC Type 2 tags (NTAG, MIFARE Ultralight).
	// Empty when unconfigured.
	Type2 TagMode

	// Type4 is the mode for NFC Type 4 tags (DESFire, ISO 14443-4).
	// The only slot that accepts [TagModeDESFire]. Empty when unconfigured.
	Type4 TagMode

	// Type5 is the mode for NFC Type 5 tags (ICODE, ISO 15693).
	// Empty when unconfigured.
	Type5 TagMode

	// ReportReadError emits an error payload on read failures
	// (NFCReportReadError).
	ReportReadError bool

	// IgnoreRandomUID filters out random Type 4 UIDs (IgnoreRandomUID).
	IgnoreRandomUID bool

	// ByteOrderReversed reverses the byte order in output (TagByteOrder).
	ByteOrderReversed bool

	// TagRead holds the block-read sub-config for [TagModeBlock].
	TagRead *TagRead
}

// Validate checks the mode slots against their closed sets and validates the
// nested block-read config.
func (n *NFCTag) Validate() error {
	for _, slot := range []struct {
		field string
		mode  TagMode
	}{
		{"type2", n.Type2},
		{"type4", n.Type4},
		{"type5", n.Type5},
	} {
		if slot.mode == "" {
			continue
		}
		if _, err := ParseTagMode(string(slot.mode)); err != nil {
			return fieldErrorf(slot.field, "%v", err)
		}
		if slot.mode == TagModeDESFire && slot.field != "type4" {
			return fieldErrorf(slot.field, "DESFire mode is only valid for type4")
		}
	}
	if n.TagRead != nil {
		return n.TagRead.Validate()
	}
	return nil
}

// ConfigLines renders the NFC tag settings; boolean flags are emitted only
// when on, mode slots only when configured.
func (n NFCTag) ConfigLines() []string {
	var lines []string

	if n.Type2 != "" {
		lines = append(lines, "NFCType2="+string(n.Type2))
	}
	if n.Type4 != "" {
		lines = append(lines, "NFCType4="+string(n.Type4))
	}
	if n.Type5 != "" {
		lines = append(lines, "NFCType5="+string(n.Type5))
	}
	if n.ReportReadError {
		lines = append(lines, "NFCReportReadError=1")
	}
	if n.IgnoreRandomUID {
		lines = append(lines, "IgnoreRandomUID=1")
	}
	if n.ByteOrderReversed {
		lines = append(lines, "TagByteOrder=1")
	}
	if n.TagRead != nil {
		lines = append(lines, n.TagRead.ConfigLines()...)
	}
	return lines
}

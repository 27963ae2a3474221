package models

import (
	"fmt"
	"strings"
)

// AppleVAS configures a single Apple Wallet VAS pass type on the reader.
//
// Reference:
//   - https://help.vtapnfc.com/en/Content/VTAP-Commands/Config-txt-VAS_settings.htm
type AppleVAS struct {
	// MerchantID is the Apple Pass Type ID (e.g. "pass.com.company.name").
	// Must start with the "pass." prefix.
	MerchantID string

	// KeySlot is the private key slot (1-6) holding the decryption key.
	// Required for the reader to work.
	KeySlot int

	// MerchantURL is an optional URL to invoke when presenting a pass.
	// Empty when unset. Currently unsupported by iOS for VAS-only
	// transactions.
	MerchantURL string
}

// NewAppleVAS validates and returns a VAS entry. merchantURL may be empty.
func NewAppleVAS(merchantID string, keySlot int, merchantURL string) (AppleVAS, error) {
	v := AppleVAS{MerchantID: merchantID, KeySlot: keySlot, MerchantURL: merchantURL}
	if err := v.Validate(); err != nil {
		return AppleVAS{}, err
	}
	return v, nil
}

// Validate checks all field constraints.
func (v *AppleVAS) Validate() error {
	if v.MerchantID == "" {
		return fieldErrorf("merchant_id", "must not be empty")
	}
	if !strings.HasPrefix(v.MerchantID, "pass.") {
		return fieldErrorf("merchant_id", "must start with 'pass.' prefix")
	}
	return intInRange("key_slot", v.KeySlot, 1, 6)
}

// ConfigLines renders the entry's config.txt lines using the given 1-based
// slot number for the key names.
func (v AppleVAS) ConfigLines(slot int) []string {
	lines := []string{fmt.Sprintf("VAS%dMerchantID=%s", slot, v.MerchantID)}

	// KeySlot is required for the reader to work, emitted even at default.
	lines = append(lines, fmt.Sprintf("VAS%dKeySlot=%d", slot, v.KeySlot))

	if v.MerchantURL != "" {
		lines = append(lines, fmt.Sprintf("VAS%dMerchantURL=%s", slot, v.MerchantURL))
	}
	return lines
}

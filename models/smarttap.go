package models

import "fmt"

// GoogleSmartTap configures a single Google Wallet Smart Tap pass type.
//
// Reference:
//   - https://help.vtapnfc.com/en/Content/VTAP-Commands/Config-txt-ST-settings.htm
type GoogleSmartTap struct {
	// CollectorID is the numeric Collector ID issued by Google.
	CollectorID string

	// KeySlot is the private key slot (1-6) holding the decryption key,
	// or 0 when not yet assigned.
	KeySlot int

	// KeyVersion must match the key version in the Google dashboard.
	// 0 means no specific version.
	KeyVersion int
}

// NewGoogleSmartTap validates and returns a Smart Tap entry.
func NewGoogleSmartTap(collectorID string, keySlot, keyVersion int) (GoogleSmartTap, error) {
	st := GoogleSmartTap{CollectorID: collectorID, KeySlot: keySlot, KeyVersion: keyVersion}
	if err := st.Validate(); err != nil {
		return GoogleSmartTap{}, err
	}
	return st, nil
}

// Validate checks all field constraints.
func (st *GoogleSmartTap) Validate() error {
	if st.CollectorID == "" {
		return fieldErrorf("collector_id", "must not be empty")
	}
	if err := intInRange("key_slot", st.KeySlot, 0, 6); err != nil {
		return err
	}
	if st.KeyVersion < 0 {
		return fieldErrorf("key_version", "must not be negative")
	}
	return nil
}

// ConfigLines renders the entry's config.txt lines using the given 1-based
// slot number for the key names. KeySlot and KeyVersion are omitted at their
// zero defaults.
func (st GoogleSmartTap) ConfigLines(slot int) []string {
	lines := []string{fmt.Sprintf("ST%dCollectorID=%s", slot, st.CollectorID)}

	if st.KeySlot > 0 {
		lines = append(lines, fmt.Sprintf("ST%dKeySlot=%d", slot, st.KeySlot))
	}
	if st.KeyVersion > 0 {
		lines = append(lines, fmt.Sprintf("ST%dKeyVersion=%d", slot, st.KeyVersion))
	}
	return lines
}

package models

import "fmt"

// CryptoMode is the DESFire cryptographic mode. The value 2 is unused by the
// device firmware.
type CryptoMode int

const (
	CryptoNone CryptoMode = 0
	Crypto3DES CryptoMode = 1
	CryptoAES  CryptoMode = 3
)

// ParseCryptoMode maps a numeric code onto the closed CryptoMode set.
func ParseCryptoMode(v int) (CryptoMode, error) {
	switch CryptoMode(v) {
	case CryptoNone, Crypto3DES, CryptoAES:
		return CryptoMode(v), nil
	}
	return 0, fmt.Errorf("unknown crypto mode %d", v)
}

// DataFormat is the DESFire data output format.
type DataFormat int

const (
	FormatRaw     DataFormat = 0
	FormatKeyIDV1 DataFormat = 1
	FormatKeyIDV2 DataFormat = 2
)

// ParseDataFormat maps a numeric code onto the closed DataFormat set.
func ParseDataFormat(v int) (DataFormat, error) {
	switch DataFormat(v) {
	case FormatRaw, FormatKeyIDV1, FormatKeyIDV2:
		return DataFormat(v), nil
	}
	return 0, fmt.Errorf("unknown data format %d", v)
}

// DESFire defaults; both read fields are omitted from output at these values.
const (
	DefaultDESFireReadLength = 3
	DefaultDESFireSeparator  = ","
)

// DESFireApp configures reading one MIFARE DESFire application.
type DESFireApp struct {
	// AppID is the application ID, 6 hex characters, uppercased on
	// normalization.
	AppID string

	// FileID is the file to read (1-255). Nil when unset.
	FileID *int

	// KeyNum is the key number for authentication. Nil when unset.
	KeyNum *int

	// KeySlot is the key slot for authentication (1-9). Nil when unset.
	KeySlot *int

	// Crypto is the cryptographic mode. Nil when unset.
	Crypto *CryptoMode

	// Format is the data output format. Nil when unset.
	Format *DataFormat

	// ReadLength is the number of bytes to read (1-255, default 3).
	ReadLength int

	// ReadOffset is the offset into the file (0-255, default 0).
	ReadOffset int

	// Diversification enables key diversification. Nil when unset.
	Diversification *bool

	// PrivacyKeyNum is the privacy key number. Nil when unset.
	PrivacyKeyNum *int

	// PrivacyKeySlot is the privacy key slot. Nil when unset.
	PrivacyKeySlot *int

	// SysIDKeySlot is the system ID key slot. Nil when unset.
	SysIDKeySlot *int

	// SysIDLength is the system ID length (0-16). Nil when unset.
	SysIDLength *int
}

// NewDESFireApp validates the app ID and returns an app entry with default
// read settings.
func NewDESFireApp(appID string) (DESFireApp, error) {
	app := DESFireApp{AppID: appID, ReadLength: DefaultDESFireReadLength}
	if err := app.Validate(); err != nil {
		return DESFireApp{}, err
	}
	return app, nil
}

// Validate checks all field constraints and uppercases AppID.
func (a *DESFireApp) Validate() error {
	appID, err := normalizeHex("app_id", a.AppID, 6)
	if err != nil {
		return err
	}
	a.AppID = appID

	if a.FileID != nil {
		if err := intInRange("file_id", *a.FileID, 1, 255); err != nil {
			return err
		}
	}
	if a.KeySlot != nil {
		if err := intInRange("key_slot", *a.KeySlot, 1, 9); err != nil {
			return err
		}
	}
	if a.Crypto != nil {
		if _, err := ParseCryptoMode(int(*a.Crypto)); err != nil {
			return fieldErrorf("crypto", "%v", err)
		}
	}
	if a.Format != nil {
		if _, err := ParseDataFormat(int(*a.Format)); err != nil {
			return fieldErrorf("format", "%v", err)
		}
	}
	if err := intInRange("read_length", a.ReadLength, 1, 255); err != nil {
		return err
	}
	if err := intInRange("read_offset", a.ReadOffset, 0, 255); err != nil {
		return err
	}
	if a.SysIDLength != nil {
		if err := intInRange("sysid_length", *a.SysIDLength, 0, 16); err != nil {
			return err
		}
	}
	return nil
}

// ConfigLines renders the app's config.txt lines using the given 1-based
// slot number. AppID is always emitted; read settings only off-default;
// everything else only when set.
func (a DESFireApp) ConfigLines(slot int) []string {
	prefix := fmt.Sprintf("DESFire%d", slot)
	lines := []string{prefix + "AppID=" + a.AppID}

	if a.FileID != nil {
		lines = append(lines, fmt.Sprintf("%sFileID=%d", prefix, *a.FileID))
	}
	if a.KeyNum != nil {
		lines = append(lines, fmt.Sprintf("%sKeyNum=%d", prefix, *a.KeyNum))
	}
	if a.KeySlot != nil {
		lines = append(lines, fmt.Sprintf("%sKeySlot=%d", prefix, *a.KeySlot))
	}
	if a.Crypto != nil {
		lines = append(lines, fmt.Sprintf("%sCrypto=%d", prefix, int(*a.Crypto)))
	}
	if a.Format != nil {
		lines = append(lines, fmt.Sprintf("%sFormat=%d", prefix, int(*a.Format)))
	}
	if a.ReadLength != DefaultDESFireReadLength {
		lines = append(lines, fmt.Sprintf("%sReadLength=%d", prefix, a.ReadLength))
	}
	if a.ReadOffset != 0 {
		lines = append(lines, fmt.Sprintf("%sReadOffset=%d", prefix, a.ReadOffset))
	}
	if a.Diversification != nil && *a.Diversification {
		lines = append(lines, prefix+"Diversification=1")
	}
	if a.PrivacyKeyNum != nil {
		lines = append(lines, fmt.Sprintf("%sPrivacyKeyNum=%d", prefix, *a.PrivacyKeyNum))
	}
	if a.PrivacyKeySlot != nil {
		lines = append(lines, fmt.Sprintf("%sPrivacyKeySlot=%d", prefix, *a.PrivacyKeySlot))
	}
	if a.SysIDKeySlot != nil {
		lines = append(lines, fmt.Sprintf("%sSysIDKeySlot=%d", prefix, *a.SysIDKeySlot))
	}
	if a.SysIDLength != nil {
		lines = append(lines, fmt.Sprintf("%sSysIDLength=%d", prefix, *a.SysIDLength))
	}
	return lines
}

// DESFire holds up to nine application entries plus the output separator
// used between multiple app payloads.
type DESFire struct {
	// Apps are the application entries, max 9, ordered; output slot
	// numbers derive from position.
	Apps []DESFireApp

	// Separator separates payloads of multiple apps (default ",").
	Separator string
}

// NewDESFire validates and returns a DESFire section with the default
// separator.
func NewDESFire(apps []DESFireApp) (DESFire, error) {
	d := DESFire{Apps: apps, Separator: DefaultDESFireSeparator}
	if err := d.Validate(); err != nil {
		return DESFire{}, err
	}
	return d, nil
}

// Validate enforces the nine-app cap and validates every entry.
func (d *DESFire) Validate() error {
	if len(d.Apps) > MaxDESFireApps {
		return ErrTooManyDESFireApps
	}
	if d.Separator == "" {
		d.Separator = DefaultDESFireSeparator
	}
	for i := range d.Apps {
		if err := d.Apps[i].Validate(); err != nil {
			return fmt.Errorf("app %d: %w", i+1, err)
		}
	}
	return nil
}

// AddApp appends an app entry, enforcing the cap.
func (d *DESFire) AddApp(app DESFireApp) error {
	if len(d.Apps) >= MaxDESFireApps {
		return ErrTooManyDESFireApps
	}
	d.Apps = append(d.Apps, app)
	return nil
}

// RemoveApp deletes the entry at index i, preserving order.
func (d *DESFire) RemoveApp(i int) error {
	if i < 0 || i >= len(d.Apps) {
		return ErrIndexOutOfRange
	}
	d.Apps = append(d.Apps[:i], d.Apps[i+1:]...)
	return nil
}

// ReplaceApp overwrites the entry at index i.
func (d *DESFire) ReplaceApp(i int, app DESFireApp) error {
	if i < 0 || i >= len(d.Apps) {
		return ErrIndexOutOfRange
	}
	d.Apps[i] = app
	return nil
}

// ConfigLines renders all app entries, numbered by list position, followed
// by the separator line when off-default. Empty when no apps are present.
func (d DESFire) ConfigLines() []string {
	if len(d.Apps) == 0 {
		return nil
	}

	var lines []string
	for i, app := range d.Apps {
		lines = append(lines, app.ConfigLines(i+1)...)
	}
	if d.Separator != DefaultDESFireSeparator {
		lines = append(lines, "DESFireSeparator="+d.Separator)
	}
	return lines
}

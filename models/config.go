package models

import "fmt"

// Collection caps enforced by the aggregate.
const (
	MaxVASEntries      = 6
	MaxSmartTapEntries = 6
	MaxDESFireApps     = 9
)

// Config is the aggregate configuration for one VTAP100 reader. It
// exclusively owns all section instances; nil pointers and empty lists mean
// "unconfigured", which the generator distinguishes from "configured with
// defaults".
//
// The aggregate is mutated in place through the Add/Remove/Replace
// operations below (the interactive editor shares one *Config across its
// forms); slot numbers in generated output derive purely from list position.
type Config struct {
	// VAS holds the Apple VAS entries, max 6, ordered.
	VAS []AppleVAS

	// VASDefaultPasses restricts which VAS slots are checked at startup.
	VASDefaultPasses *DefaultPasses

	// SmartTap holds the Google Smart Tap entries, max 6, ordered.
	SmartTap []GoogleSmartTap

	// SmartTapDefaultPasses restricts which Smart Tap slots are checked
	// at startup.
	SmartTapDefaultPasses *DefaultPasses

	// Keyboard is the keyboard emulation section.
	Keyboard *Keyboard

	// NFC is the NFC tag reading section.
	NFC *NFCTag

	// DESFire is the MIFARE DESFire section.
	DESFire *DESFire

	// Feedback is the LED/beep feedback section.
	Feedback *Feedback
}

// Validate enforces the collection caps and validates every owned section.
func (c *Config) Validate() error {
	if len(c.VAS) > MaxVASEntries {
		return ErrTooManyVAS
	}
	if len(c.SmartTap) > MaxSmartTapEntries {
		return ErrTooManySmartTap
	}
	for i := range c.VAS {
		if err := c.VAS[i].Validate(); err != nil {
			return fmt.Errorf("VAS entry %d: %w", i+1, err)
		}
	}
	for i := range c.SmartTap {
		if err := c.SmartTap[i].Validate(); err != nil {
			return fmt.Errorf("Smart Tap entry %d: %w", i+1, err)
		}
	}
	if c.Keyboard != nil {
		if err := c.Keyboard.Validate(); err != nil {
			return fmt.Errorf("keyboard: %w", err)
		}
	}
	if c.NFC != nil {
		if err := c.NFC.Validate(); err != nil {
			return fmt.Errorf("NFC: %w", err)
		}
	}
	if c.DESFire != nil {
		if err := c.DESFire.Validate(); err != nil {
			return fmt.Errorf("DESFire: %w", err)
		}
	}
	if c.Feedback != nil {
		if err := c.Feedback.Validate(); err != nil {
			return fmt.Errorf("feedback: %w", err)
		}
	}
	return nil
}

// AddVAS appends a VAS entry, enforcing the cap.
func (c *Config) AddVAS(v AppleVAS) error {
	if len(c.VAS) >= MaxVASEntries {
		return ErrTooManyVAS
	}
	c.VAS = append(c.VAS, v)
	return nil
}

// RemoveVAS deletes the entry at index i, preserving order. Later entries
// shift down, which renumbers their generated slots.
func (c *Config) RemoveVAS(i int) error {
	if i < 0 || i >= len(c.VAS) {
		return ErrIndexOutOfRange
	}
	c.VAS = append(c.VAS[:i], c.VAS[i+1:]...)
	return nil
}

// ReplaceVAS overwrites the entry at index i.
func (c *Config) ReplaceVAS(i int, v AppleVAS) error {
	if i < 0 || i >= len(c.VAS) {
		return ErrIndexOutOfRange
	}
	c.VAS[i] = v
	return nil
}

// AddSmartTap appends a Smart Tap entry, enforcing the cap.
func (c *Config) AddSmartTap(st GoogleSmartTap) error {
	if len(c.SmartTap) >= MaxSmartTapEntries {
		return ErrTooManySmartTap
	}
	c.SmartTap = append(c.SmartTap, st)
	return nil
}

// RemoveSmartTap deletes the entry at index i, preserving order.
func (c *Config) RemoveSmartTap(i int) error {
	if i < 0 || i >= len(c.SmartTap) {
		return ErrIndexOutOfRange
	}
	c.SmartTap = append(c.SmartTap[:i], c.SmartTap[i+1:]...)
	return nil
}

// ReplaceSmartTap overwrites the entry at index i.
func (c *Config) ReplaceSmartTap(i int, st GoogleSmartTap) error {
	if i < 0 || i >= len(c.SmartTap) {
		return ErrIndexOutOfRange
	}
	c.SmartTap[i] = st
	return nil
}

// UsedKeySlots reports which cryptographic key slots are referenced across
// all VAS and Smart Tap entries, mapping slot number to owner descriptions
// (e.g. "Apple VAS #2"). Unassigned Smart Tap slots (0) are skipped.
//
// This is an advisory query for the editor layer: two entries may
// legitimately share a slot mid-edit, so slot collisions are surfaced as
// hints, never as validation errors.
func (c *Config) UsedKeySlots() map[int][]string {
	used := make(map[int][]string)
	for i, v := range c.VAS {
		used[v.KeySlot] = append(used[v.KeySlot], fmt.Sprintf("Apple VAS #%d", i+1))
	}
	for i, st := range c.SmartTap {
		if st.KeySlot == 0 {
			continue
		}
		used[st.KeySlot] = append(used[st.KeySlot], fmt.Sprintf("Google Smart Tap #%d", i+1))
	}
	return used
}

package configfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtaptools/vtapcfg/models"
)

// ── header handling ───────────────────────────────────────────────────────────

// TestParse_MissingHeader verifies that a document whose first non-blank
// line is not the header fails with the header sentinel.
func TestParse_MissingHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty document", content: ""},
		{name: "blank lines only", content: "\n\n\n"},
		{name: "data before header", content: "VAS1MerchantID=pass.com.x\n!VTAPconfig"},
		{name: "misspelled header", content: "!VTAPconfiguration\nVAS1MerchantID=pass.com.x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.content)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrMissingHeader)
		})
	}
}

// TestParse_HeaderOnly verifies that a bare header parses into an empty
// aggregate.
func TestParse_HeaderOnly(t *testing.T) {
	cfg, err := Parse("!VTAPconfig\n")
	require.NoError(t, err)
	assert.Empty(t, cfg.VAS)
	assert.Empty(t, cfg.SmartTap)
	assert.Nil(t, cfg.Keyboard)
	assert.Nil(t, cfg.NFC)
	assert.Nil(t, cfg.DESFire)
	assert.Nil(t, cfg.Feedback)
}

// TestParse_LeadingBlankLinesBeforeHeader verifies that blank lines ahead of
// the header are tolerated.
func TestParse_LeadingBlankLinesBeforeHeader(t *testing.T) {
	cfg, err := Parse("\n\n!VTAPconfig\nVAS1MerchantID=pass.com.x\nVAS1KeySlot=1\n")
	require.NoError(t, err)
	require.Len(t, cfg.VAS, 1)
	assert.Equal(t, "pass.com.x", cfg.VAS[0].MerchantID)
}

// ── line tolerance ────────────────────────────────────────────────────────────

// TestParse_IgnoresUnknownLines verifies that unrecognized Key=Value lines
// between valid ones are skipped without error.
func TestParse_IgnoresUnknownLines(t *testing.T) {
	content := `!VTAPconfig
VAS1MerchantID=pass.com.example
FooBar=123
VAS1KeySlot=2
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, cfg.VAS, 1)
	assert.Equal(t, "pass.com.example", cfg.VAS[0].MerchantID)
	assert.Equal(t, 2, cfg.VAS[0].KeySlot)
}

// TestParse_IgnoresCommentsAndBlanks verifies that ";" lines and blank lines
// contribute nothing.
func TestParse_IgnoresCommentsAndBlanks(t *testing.T) {
	content := `!VTAPconfig
; Apple VAS Configuration

VAS1MerchantID=pass.com.example
VAS1KeySlot=1

; trailing comment
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	assert.Len(t, cfg.VAS, 1)
}

// ── accumulate then promote ───────────────────────────────────────────────────

// TestParse_ScatteredSlotLines verifies that a slot's fields may arrive on
// non-contiguous lines and that promotion orders entries by slot index.
func TestParse_ScatteredSlotLines(t *testing.T) {
	content := `!VTAPconfig
VAS2MerchantID=pass.com.second
VAS1MerchantID=pass.com.first
VAS2KeySlot=4
VAS1MerchantURL=https://example.com/first
VAS1KeySlot=3
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, cfg.VAS, 2)
	assert.Equal(t, "pass.com.first", cfg.VAS[0].MerchantID)
	assert.Equal(t, 3, cfg.VAS[0].KeySlot)
	assert.Equal(t, "https://example.com/first", cfg.VAS[0].MerchantURL)
	assert.Equal(t, "pass.com.second", cfg.VAS[1].MerchantID)
	assert.Equal(t, 4, cfg.VAS[1].KeySlot)
}

// TestParse_DropsDraftWithoutPrimaryField verifies that a slot seen only
// through secondary keys never becomes an entry.
func TestParse_DropsDraftWithoutPrimaryField(t *testing.T) {
	content := `!VTAPconfig
VAS3KeySlot=2
ST4KeySlot=1
DESFire5FileID=7
VAS1MerchantID=pass.com.kept
VAS1KeySlot=1
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, cfg.VAS, 1)
	assert.Equal(t, "pass.com.kept", cfg.VAS[0].MerchantID)
	assert.Empty(t, cfg.SmartTap)
	assert.Nil(t, cfg.DESFire)
}

// TestParse_VASWithoutKeySlotFails verifies that a merchant line without its
// key slot promotes through validation and fails there.
func TestParse_VASWithoutKeySlotFails(t *testing.T) {
	_, err := Parse("!VTAPconfig\nVAS1MerchantID=pass.com.broken\n")
	require.Error(t, err)

	var vErr *models.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

// ── section parsing ───────────────────────────────────────────────────────────

// TestParse_SmartTapDefaults verifies that omitted key slot and key version
// reconstruct to zero.
func TestParse_SmartTapDefaults(t *testing.T) {
	content := `!VTAPconfig
ST1CollectorID=12345678
ST2CollectorID=87654321
ST2KeySlot=3
ST2KeyVersion=2
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, cfg.SmartTap, 2)
	assert.Equal(t, 0, cfg.SmartTap[0].KeySlot)
	assert.Equal(t, 0, cfg.SmartTap[0].KeyVersion)
	assert.Equal(t, 3, cfg.SmartTap[1].KeySlot)
	assert.Equal(t, 2, cfg.SmartTap[1].KeyVersion)
}

// TestParse_DefaultPassesLines verifies both default-passes singletons.
func TestParse_DefaultPassesLines(t *testing.T) {
	content := `!VTAPconfig
VASDefaultPassesEnabled=1,3,5
STDefaultPassesEnabled=2
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.NotNil(t, cfg.VASDefaultPasses)
	assert.Equal(t, []int{1, 3, 5}, cfg.VASDefaultPasses.Enabled)
	require.NotNil(t, cfg.SmartTapDefaultPasses)
	assert.Equal(t, []int{2}, cfg.SmartTapDefaultPasses.Enabled)
}

// TestParse_KeyboardSection verifies that observed keys override the
// documented defaults and unobserved keys keep them.
func TestParse_KeyboardSection(t *testing.T) {
	content := `!VTAPconfig
KBLogMode=1
KBSource=A1
KBDelayMS=30
KBPassMode=1
KBPassSeparator=#
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.NotNil(t, cfg.Keyboard)
	assert.True(t, cfg.Keyboard.LogMode)
	assert.Equal(t, "A1", cfg.Keyboard.Source)
	assert.Equal(t, 30, cfg.Keyboard.DelayMS)
	assert.True(t, cfg.Keyboard.PassMode)
	assert.Equal(t, "#", cfg.Keyboard.PassSeparator)
	// unobserved keys keep their defaults
	assert.True(t, cfg.Keyboard.Enable)
	assert.Equal(t, models.DefaultKBPostfix, cfg.Keyboard.Postfix)
}

// TestParse_NFCSection verifies tag modes, the boolean flags and the nested
// block-read config.
func TestParse_NFCSection(t *testing.T) {
	content := `!VTAPconfig
NFCType2=U
NFCType4=D
NFCType5=0
IgnoreRandomUID=1
TagReadBlockNum=4
TagReadKeySlot=2
TagReadKeyType=A
TagReadLength=8
TagReadFormat=h
TagReadMinDigits=A
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.NotNil(t, cfg.NFC)
	assert.Equal(t, models.TagModeUID, cfg.NFC.Type2)
	assert.Equal(t, models.TagModeDESFire, cfg.NFC.Type4)
	assert.Equal(t, models.TagModeDisabled, cfg.NFC.Type5)
	assert.True(t, cfg.NFC.IgnoreRandomUID)

	require.NotNil(t, cfg.NFC.TagRead)
	require.NotNil(t, cfg.NFC.TagRead.BlockNum)
	assert.Equal(t, 4, *cfg.NFC.TagRead.BlockNum)
	assert.Equal(t, models.TagKeyTypeA, cfg.NFC.TagRead.KeyType)
	assert.Equal(t, "A", cfg.NFC.TagRead.MinDigits)
}

// TestParse_DESFireSection verifies per-slot accumulation, hex case
// normalization and the separator override.
func TestParse_DESFireSection(t *testing.T) {
	content := `!VTAPconfig
DESFire1AppID=aabb01
DESFire1FileID=1
DESFire1Crypto=3
DESFire1ReadLength=8
DESFire2AppID=CCDD02
DESFireSeparator=;
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.NotNil(t, cfg.DESFire)
	require.Len(t, cfg.DESFire.Apps, 2)

	first := cfg.DESFire.Apps[0]
	assert.Equal(t, "AABB01", first.AppID)
	require.NotNil(t, first.FileID)
	assert.Equal(t, 1, *first.FileID)
	require.NotNil(t, first.Crypto)
	assert.Equal(t, models.CryptoAES, *first.Crypto)
	assert.Equal(t, 8, first.ReadLength)

	assert.Equal(t, "CCDD02", cfg.DESFire.Apps[1].AppID)
	assert.Equal(t, models.DefaultDESFireReadLength, cfg.DESFire.Apps[1].ReadLength)
	assert.Equal(t, ";", cfg.DESFire.Separator)
}

// TestParse_FeedbackSection verifies LED and beep compound value decoding.
func TestParse_FeedbackSection(t *testing.T) {
	content := `!VTAPconfig
LEDMode=1
LEDDefaultRGB=ff8800
PassLED=00FF00,200,100,2
PassBeep=50,50,3,4000
TagBeep=100,0,1
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.NotNil(t, cfg.Feedback)

	led := cfg.Feedback.LED
	require.NotNil(t, led)
	require.NotNil(t, led.Mode)
	assert.Equal(t, models.LEDMode(1), *led.Mode)
	assert.Equal(t, "FF8800", led.DefaultRGB)
	require.NotNil(t, led.Pass)
	assert.Equal(t, "00FF00", led.Pass.Color)
	assert.Equal(t, 200, led.Pass.OnMS)

	beep := cfg.Feedback.Beep
	require.NotNil(t, beep)
	require.NotNil(t, beep.Pass)
	require.NotNil(t, beep.Pass.Frequency)
	assert.Equal(t, 4000, *beep.Pass.Frequency)
	require.NotNil(t, beep.Tag)
	assert.Nil(t, beep.Tag.Frequency)
}

// TestParse_MalformedCompoundSkipped verifies that an LED value with the
// wrong field count is skipped while the rest of the section survives.
func TestParse_MalformedCompoundSkipped(t *testing.T) {
	content := `!VTAPconfig
PassLED=00FF00,200
TagLED=FF0000,100,100,1
`
	cfg, err := Parse(content)
	require.NoError(t, err)
	require.NotNil(t, cfg.Feedback)
	assert.Nil(t, cfg.Feedback.LED.Pass)
	require.NotNil(t, cfg.Feedback.LED.Tag)
	assert.Equal(t, "FF0000", cfg.Feedback.LED.Tag.Color)
}

// TestParse_NonNumericCompoundFails verifies that a compound value with a
// non-numeric timing field errors out.
func TestParse_NonNumericCompoundFails(t *testing.T) {
	_, err := Parse("!VTAPconfig\nPassLED=00FF00,fast,100,1\n")
	assert.Error(t, err)
}

// ── validation during promotion ───────────────────────────────────────────────

// TestParse_InvalidFieldPropagates verifies that a parsed value outside its
// model range surfaces as a validation error naming the slot.
func TestParse_InvalidFieldPropagates(t *testing.T) {
	_, err := Parse("!VTAPconfig\nVAS1MerchantID=pass.com.x\nVAS1KeySlot=7\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VAS slot 1")
}

// TestParse_TooManyVASEntries verifies the aggregate cap applies to parsed
// documents too.
func TestParse_TooManyVASEntries(t *testing.T) {
	content := "!VTAPconfig\n"
	for i := 1; i <= 7; i++ {
		content += "VAS" + string(rune('0'+i)) + "MerchantID=pass.com.x\n"
		content += "VAS" + string(rune('0'+i)) + "KeySlot=1\n"
	}

	_, err := Parse(content)
	assert.ErrorIs(t, err, models.ErrTooManyVAS)
}

// ── round trip ────────────────────────────────────────────────────────────────

// TestRoundTrip_FullConfig verifies parse(generate(cfg)) == cfg for an
// aggregate exercising every section.
func TestRoundTrip_FullConfig(t *testing.T) {
	vas, err := models.NewAppleVAS("pass.com.example.loyalty", 2, "https://example.com/loyalty")
	require.NoError(t, err)
	st, err := models.NewGoogleSmartTap("12345678", 3, 1)
	require.NoError(t, err)
	vasDP, err := models.NewVASDefaultPasses([]int{1, 2})
	require.NoError(t, err)

	kb := models.DefaultKeyboard()
	kb.LogMode = true
	kb.Source = "A1"
	kb.DelayMS = 10
	kb.PassMode = true
	kb.PassSection = 1

	blockNum, keySlot, length := 4, 2, 8
	nfc := &models.NFCTag{
		Type2:           models.TagModeBlock,
		Type4:           models.TagModeNDEF,
		IgnoreRandomUID: true,
		TagRead: &models.TagRead{
			BlockNum: &blockNum,
			KeySlot:  &keySlot,
			KeyType:  models.TagKeyTypeA,
			Length:   &length,
			Format:   models.TagReadFormatHex,
		},
	}

	app, err := models.NewDESFireApp("A1B2C3")
	require.NoError(t, err)
	fileID := 1
	app.FileID = &fileID
	crypto := models.CryptoAES
	app.Crypto = &crypto
	df, err := models.NewDESFire([]models.DESFireApp{app})
	require.NoError(t, err)

	passLED, err := models.NewLEDSequence("00FF00", 200, 100, 2)
	require.NoError(t, err)
	freq := 3136
	passBeep, err := models.NewBeepSequence(50, 50, 2, &freq)
	require.NoError(t, err)
	mode := models.LEDMode(1)

	cfg := &models.Config{
		VAS:              []models.AppleVAS{vas},
		VASDefaultPasses: &vasDP,
		SmartTap:         []models.GoogleSmartTap{st},
		Keyboard:         &kb,
		NFC:              nfc,
		DESFire:          &df,
		Feedback: &models.Feedback{
			LED:  &models.LED{Mode: &mode, DefaultRGB: "FF8800", Pass: &passLED},
			Beep: &models.Beep{Pass: &passBeep},
		},
	}
	require.NoError(t, cfg.Validate())

	parsed, err := Parse(Generate(cfg, "Generated by VTAP100 CLI"))
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

// TestRoundTrip_SuppressedDefaultsReconstruct verifies that values the
// generator omits come back as the same defaults on parse.
func TestRoundTrip_SuppressedDefaultsReconstruct(t *testing.T) {
	st, err := models.NewGoogleSmartTap("12345678", 0, 0)
	require.NoError(t, err)
	kb := models.DefaultKeyboard()

	cfg := &models.Config{
		SmartTap: []models.GoogleSmartTap{st},
		Keyboard: &kb,
	}

	parsed, err := Parse(Generate(cfg, ""))
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

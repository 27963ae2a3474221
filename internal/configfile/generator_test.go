package configfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtaptools/vtapcfg/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func mustVAS(t *testing.T, merchantID string, keySlot int, merchantURL string) models.AppleVAS {
	t.Helper()
	v, err := models.NewAppleVAS(merchantID, keySlot, merchantURL)
	require.NoError(t, err)
	return v
}

func mustSmartTap(t *testing.T, collectorID string, keySlot, keyVersion int) models.GoogleSmartTap {
	t.Helper()
	st, err := models.NewGoogleSmartTap(collectorID, keySlot, keyVersion)
	require.NoError(t, err)
	return st
}

// ── Generate ──────────────────────────────────────────────────────────────────

// TestGenerate_SingleVAS verifies the complete output for the simplest real
// config: one Apple VAS entry and a comment.
func TestGenerate_SingleVAS(t *testing.T) {
	cfg := &models.Config{
		VAS: []models.AppleVAS{mustVAS(t, "pass.com.example.test", 1, "")},
	}

	got := Generate(cfg, "Generated by VTAP100 CLI")

	want := strings.Join([]string{
		"!VTAPconfig",
		"; Generated by VTAP100 CLI",
		"; Apple VAS Configuration",
		"VAS1MerchantID=pass.com.example.test",
		"VAS1KeySlot=1",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestGenerate_NoComment verifies that an empty comment emits no comment
// line at all.
func TestGenerate_NoComment(t *testing.T) {
	cfg := &models.Config{
		VAS: []models.AppleVAS{mustVAS(t, "pass.com.example", 2, "")},
	}

	got := Generate(cfg, "")

	assert.True(t, strings.HasPrefix(got, Header+"\n; Apple VAS Configuration"))
}

// TestGenerate_VASDefaultOmission verifies the per-field emission policy:
// KeySlot appears even at its lowest valid value, MerchantURL only when set.
func TestGenerate_VASDefaultOmission(t *testing.T) {
	bare := &models.Config{
		VAS: []models.AppleVAS{mustVAS(t, "pass.com.bare", 1, "")},
	}
	full := &models.Config{
		VAS: []models.AppleVAS{mustVAS(t, "pass.com.full", 3, "https://example.com/p")},
	}

	bareOut := Generate(bare, "")
	fullOut := Generate(full, "")

	assert.Contains(t, bareOut, "VAS1KeySlot=1")
	assert.NotContains(t, bareOut, "MerchantURL")
	assert.Contains(t, fullOut, "VAS1KeySlot=3")
	assert.Contains(t, fullOut, "VAS1MerchantURL=https://example.com/p")
}

// TestGenerate_SmartTapDefaultOmission verifies that Smart Tap key slot and
// key version are suppressed at zero and emitted otherwise.
func TestGenerate_SmartTapDefaultOmission(t *testing.T) {
	cfg := &models.Config{
		SmartTap: []models.GoogleSmartTap{
			mustSmartTap(t, "11112222", 0, 0),
			mustSmartTap(t, "33334444", 2, 1),
		},
	}

	got := Generate(cfg, "")

	assert.Contains(t, got, "ST1CollectorID=11112222")
	assert.NotContains(t, got, "ST1KeySlot")
	assert.NotContains(t, got, "ST1KeyVersion")
	assert.Contains(t, got, "ST2KeySlot=2")
	assert.Contains(t, got, "ST2KeyVersion=1")
}

// TestGenerate_SlotNumberingFromPosition verifies that slot numbers come
// from list position, not from anything inside the entries.
func TestGenerate_SlotNumberingFromPosition(t *testing.T) {
	cfg := &models.Config{
		VAS: []models.AppleVAS{
			mustVAS(t, "pass.com.second-alphabetically", 5, ""),
			mustVAS(t, "pass.com.first-alphabetically", 2, ""),
		},
	}

	got := Generate(cfg, "")

	assert.Contains(t, got, "VAS1MerchantID=pass.com.second-alphabetically")
	assert.Contains(t, got, "VAS2MerchantID=pass.com.first-alphabetically")
}

// TestGenerate_DefaultPassesLines verifies that the two default-passes
// singletons render after their respective entry blocks.
func TestGenerate_DefaultPassesLines(t *testing.T) {
	vasDP, err := models.NewVASDefaultPasses([]int{1, 3, 5})
	require.NoError(t, err)
	stDP, err := models.NewSTDefaultPasses(nil)
	require.NoError(t, err)

	cfg := &models.Config{
		VAS:                   []models.AppleVAS{mustVAS(t, "pass.com.x", 1, "")},
		VASDefaultPasses:      &vasDP,
		SmartTap:              []models.GoogleSmartTap{mustSmartTap(t, "55556666", 1, 0)},
		SmartTapDefaultPasses: &stDP,
	}

	got := Generate(cfg, "")

	assert.Contains(t, got, "VASDefaultPassesEnabled=1,3,5")
	assert.Contains(t, got, "STDefaultPassesEnabled=1,2,3,4,5,6")
}

// TestGenerate_KeyboardSection verifies default suppression in the keyboard
// block and the pass-extraction sub-block gating.
func TestGenerate_KeyboardSection(t *testing.T) {
	kb := models.DefaultKeyboard()
	kb.LogMode = true
	kb.Prefix = "ID:"
	kb.DelayMS = 20
	kb.PassMode = true
	kb.PassSection = 2

	cfg := &models.Config{Keyboard: &kb}

	got := Generate(cfg, "")

	assert.Contains(t, got, "; Keyboard Emulation")
	assert.Contains(t, got, "KBLogMode=1")
	assert.Contains(t, got, "KBSource=A5")
	assert.Contains(t, got, "KBPrefix=ID:")
	assert.Contains(t, got, "KBDelayMS=20")
	assert.Contains(t, got, "KBPassMode=1")
	assert.Contains(t, got, "KBPassSection=2")
	assert.NotContains(t, got, "KBEnable")
	assert.NotContains(t, got, "KBPostfix")
	assert.NotContains(t, got, "KBPassSeparator")
}

// TestGenerate_KeyboardOffOmitsSource verifies that KBSource stays hidden
// while it equals the default and emulation is off.
func TestGenerate_KeyboardOffOmitsSource(t *testing.T) {
	kb := models.DefaultKeyboard()
	cfg := &models.Config{Keyboard: &kb}

	got := Generate(cfg, "")

	assert.Contains(t, got, "KBLogMode=0")
	assert.NotContains(t, got, "KBSource")
}

// TestGenerate_EmptySectionsOmitted verifies that nil sections contribute
// neither lines nor their section comment.
func TestGenerate_EmptySectionsOmitted(t *testing.T) {
	cfg := &models.Config{
		VAS: []models.AppleVAS{mustVAS(t, "pass.com.only", 1, "")},
	}

	got := Generate(cfg, "")

	assert.NotContains(t, got, "; Keyboard Emulation")
	assert.NotContains(t, got, "; NFC Tag Settings")
	assert.NotContains(t, got, "; MIFARE DESFire Settings")
	assert.NotContains(t, got, "; LED/Beep Settings")
}

// TestGenerate_FeedbackCompoundValues verifies the comma-joined LED and
// beep sequence encodings, including the optional beep frequency.
func TestGenerate_FeedbackCompoundValues(t *testing.T) {
	pass, err := models.NewLEDSequence("00FF00", 200, 100, 2)
	require.NoError(t, err)
	freq := 4000
	beep, err := models.NewBeepSequence(50, 50, 3, &freq)
	require.NoError(t, err)
	plainBeep, err := models.NewBeepSequence(100, 0, 1, nil)
	require.NoError(t, err)

	cfg := &models.Config{
		Feedback: &models.Feedback{
			LED:  &models.LED{Pass: &pass},
			Beep: &models.Beep{Pass: &beep, Tag: &plainBeep},
		},
	}

	got := Generate(cfg, "")

	assert.Contains(t, got, "PassLED=00FF00,200,100,2")
	assert.Contains(t, got, "PassBeep=50,50,3,4000")
	assert.Contains(t, got, "TagBeep=100,0,1")
}

// TestGenerate_DESFireBlock verifies per-app slot numbering and the
// separator line's default suppression.
func TestGenerate_DESFireBlock(t *testing.T) {
	appA, err := models.NewDESFireApp("aabb01")
	require.NoError(t, err)
	appB, err := models.NewDESFireApp("CCDD02")
	require.NoError(t, err)

	df, err := models.NewDESFire([]models.DESFireApp{appA, appB})
	require.NoError(t, err)
	df.Separator = ";"

	cfg := &models.Config{DESFire: &df}

	got := Generate(cfg, "")

	assert.Contains(t, got, "DESFire1AppID=AABB01")
	assert.Contains(t, got, "DESFire2AppID=CCDD02")
	assert.Contains(t, got, "DESFireSeparator=;")
}

// ── GenerateTemplate ──────────────────────────────────────────────────────────

// TestGenerateTemplate_ReplacesPassLines verifies that template mode emits
// the loop placeholder instead of concrete VAS lines.
func TestGenerateTemplate_ReplacesPassLines(t *testing.T) {
	cfg := &models.Config{
		VAS: []models.AppleVAS{mustVAS(t, "pass.com.example", 1, "")},
	}

	got := GenerateTemplate(cfg, "Generated by VTAP100 CLI")

	assert.NotContains(t, got, "VAS1MerchantID")
	assert.Contains(t, got, "{% for passinfo in passes %}")
	assert.Contains(t, got, "; === STATIC CONFIGURATION ===")
	assert.True(t, strings.HasPrefix(got, Header))
}

// TestGenerateTemplate_KeepsStaticSections verifies that the static block
// renders identically to plain generation.
func TestGenerateTemplate_KeepsStaticSections(t *testing.T) {
	kb := models.DefaultKeyboard()
	kb.LogMode = true
	cfg := &models.Config{Keyboard: &kb}

	got := GenerateTemplate(cfg, "")

	assert.Contains(t, got, "; Keyboard Emulation")
	assert.Contains(t, got, "KBLogMode=1")
	assert.Contains(t, got, "KBSource=A5")
}

// ── WriteFile ─────────────────────────────────────────────────────────────────

// TestWriteFile_RoundTripsThroughDisk verifies the whole-file write and that
// the bytes on disk parse back.
func TestWriteFile_RoundTripsThroughDisk(t *testing.T) {
	cfg := &models.Config{
		VAS: []models.AppleVAS{mustVAS(t, "pass.com.disk", 4, "")},
	}
	path := filepath.Join(t.TempDir(), "config.txt")

	require.NoError(t, WriteFile(path, cfg, "Generated by VTAP100 CLI"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed, err := Parse(string(data))
	require.NoError(t, err)
	assert.Equal(t, cfg.VAS, parsed.VAS)
}

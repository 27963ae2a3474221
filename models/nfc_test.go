package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParseTagMode ──────────────────────────────────────────────────────────────

// TestParseTagMode verifies the closed mode set.
func TestParseTagMode(t *testing.T) {
	for _, code := range []string{"0", "U", "N", "B", "D"} {
		mode, err := ParseTagMode(code)
		require.NoError(t, err)
		assert.Equal(t, TagMode(code), mode)
	}

	_, err := ParseTagMode("P")
	assert.Error(t, err)
	_, err = ParseTagMode("u")
	assert.Error(t, err)
}

// ── NFCTag ────────────────────────────────────────────────────────────────────

// TestNFCTag_DESFireOnlyOnType4 verifies that the D mode is rejected on the
// type2 and type5 slots.
func TestNFCTag_DESFireOnlyOnType4(t *testing.T) {
	valid := &NFCTag{Type4: TagModeDESFire}
	assert.NoError(t, valid.Validate())

	bad2 := &NFCTag{Type2: TagModeDESFire}
	err := bad2.Validate()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type2", vErr.Field)

	bad5 := &NFCTag{Type5: TagModeDESFire}
	assert.Error(t, bad5.Validate())
}

// TestNFCTag_ConfigLines verifies mode emission and flag suppression.
func TestNFCTag_ConfigLines(t *testing.T) {
	nfc := NFCTag{
		Type2:           TagModeUID,
		Type4:           TagModeNDEF,
		IgnoreRandomUID: true,
	}

	assert.Equal(t, []string{
		"NFCType2=U",
		"NFCType4=N",
		"IgnoreRandomUID=1",
	}, nfc.ConfigLines())
}

// ── TagRead ───────────────────────────────────────────────────────────────────

// TestTagRead_Validate verifies the block-read field ranges and the
// MinDigits "A"-or-number rule.
func TestTagRead_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tr      TagRead
		wantErr bool
	}{
		{name: "empty valid"},
		{name: "auto min digits", tr: TagRead{MinDigits: "A"}},
		{name: "numeric min digits", tr: TagRead{MinDigits: "14"}},
		{name: "min digits 21", tr: TagRead{MinDigits: "21"}, wantErr: true},
		{name: "min digits junk", tr: TagRead{MinDigits: "x"}, wantErr: true},
		{name: "block num 255", tr: TagRead{BlockNum: intp(255)}},
		{name: "block num 256", tr: TagRead{BlockNum: intp(256)}, wantErr: true},
		{name: "offset 16", tr: TagRead{Offset: 16}, wantErr: true},
		{name: "length 0", tr: TagRead{Length: intp(0)}, wantErr: true},
		{name: "length 16", tr: TagRead{Length: intp(16)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tr.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestTagRead_ConfigLines verifies offset suppression at zero.
func TestTagRead_ConfigLines(t *testing.T) {
	tr := TagRead{
		BlockNum: intp(4),
		KeyType:  TagKeyTypeB,
		Format:   TagReadFormatASCII,
	}

	assert.Equal(t, []string{
		"TagReadBlockNum=4",
		"TagReadKeyType=B",
		"TagReadFormat=a",
	}, tr.ConfigLines())

	tr.Offset = 8
	assert.Contains(t, tr.ConfigLines(), "TagReadOffset=8")
}

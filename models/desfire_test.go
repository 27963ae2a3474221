package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewDESFireApp ─────────────────────────────────────────────────────────────

// TestNewDESFireApp_AppID verifies the six-hex-character requirement and
// uppercase normalization.
func TestNewDESFireApp_AppID(t *testing.T) {
	tests := []struct {
		name    string
		appID   string
		want    string
		wantErr bool
	}{
		{name: "lowercase normalized", appID: "aabbcc", want: "AABBCC"},
		{name: "mixed case normalized", appID: "a1B2c3", want: "A1B2C3"},
		{name: "five chars fails", appID: "AABBC", wantErr: true},
		{name: "seven chars fails", appID: "AABBCCD", wantErr: true},
		{name: "non-hex fails", appID: "GGHHII", wantErr: true},
		{name: "empty fails", appID: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewDESFireApp(tt.appID)
			if tt.wantErr {
				var vErr *ValidationError
				require.Error(t, err)
				assert.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, app.AppID)
		})
	}
}

// TestNewDESFireApp_Defaults verifies the documented read defaults.
func TestNewDESFireApp_Defaults(t *testing.T) {
	app, err := NewDESFireApp("AABB01")
	require.NoError(t, err)
	assert.Equal(t, DefaultDESFireReadLength, app.ReadLength)
	assert.Zero(t, app.ReadOffset)
	assert.Nil(t, app.Crypto)
	assert.Nil(t, app.Format)
}

// TestDESFireApp_Validate_Ranges verifies crypto and format closed sets and
// the read length range.
func TestDESFireApp_Validate_Ranges(t *testing.T) {
	valid := func() DESFireApp {
		app, err := NewDESFireApp("AABB01")
		require.NoError(t, err)
		return app
	}

	t.Run("crypto 2 rejected", func(t *testing.T) {
		app := valid()
		bad := CryptoMode(2)
		app.Crypto = &bad
		assert.Error(t, app.Validate())
	})
	t.Run("crypto AES accepted", func(t *testing.T) {
		app := valid()
		crypto := CryptoAES
		app.Crypto = &crypto
		assert.NoError(t, app.Validate())
	})
	t.Run("format 3 rejected", func(t *testing.T) {
		app := valid()
		bad := DataFormat(3)
		app.Format = &bad
		assert.Error(t, app.Validate())
	})
	t.Run("read length zero rejected", func(t *testing.T) {
		app := valid()
		app.ReadLength = 0
		assert.Error(t, app.Validate())
	})
	t.Run("read length 255 accepted", func(t *testing.T) {
		app := valid()
		app.ReadLength = 255
		assert.NoError(t, app.Validate())
	})
}

// ── DESFire aggregate ─────────────────────────────────────────────────────────

// TestNewDESFire_AppCap verifies the nine-application cap.
func TestNewDESFire_AppCap(t *testing.T) {
	makeApps := func(n int) []DESFireApp {
		apps := make([]DESFireApp, 0, n)
		for i := 0; i < n; i++ {
			app, err := NewDESFireApp("AABB01")
			require.NoError(t, err)
			apps = append(apps, app)
		}
		return apps
	}

	_, err := NewDESFire(makeApps(9))
	assert.NoError(t, err)

	_, err = NewDESFire(makeApps(10))
	assert.ErrorIs(t, err, ErrTooManyDESFireApps)
}

// TestDESFire_AddRemoveReplace verifies the indexed mutation operations.
func TestDESFire_AddRemoveReplace(t *testing.T) {
	first, err := NewDESFireApp("AABB01")
	require.NoError(t, err)
	second, err := NewDESFireApp("CCDD02")
	require.NoError(t, err)

	df, err := NewDESFire(nil)
	require.NoError(t, err)

	require.NoError(t, df.AddApp(first))
	require.NoError(t, df.AddApp(second))
	assert.Len(t, df.Apps, 2)

	replacement, err := NewDESFireApp("EEFF03")
	require.NoError(t, err)
	require.NoError(t, df.ReplaceApp(0, replacement))
	assert.Equal(t, "EEFF03", df.Apps[0].AppID)

	require.NoError(t, df.RemoveApp(0))
	assert.Equal(t, "CCDD02", df.Apps[0].AppID)

	assert.ErrorIs(t, df.RemoveApp(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, df.ReplaceApp(-1, replacement), ErrIndexOutOfRange)
}

// TestDESFire_ConfigLines verifies slot numbering and separator suppression.
func TestDESFire_ConfigLines(t *testing.T) {
	app, err := NewDESFireApp("AABB01")
	require.NoError(t, err)
	fileID := 2
	app.FileID = &fileID

	df, err := NewDESFire([]DESFireApp{app})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"DESFire1AppID=AABB01",
		"DESFire1FileID=2",
	}, df.ConfigLines())

	df.Separator = "|"
	assert.Contains(t, df.ConfigLines(), "DESFireSeparator=|")
}

package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Name
		wantErr bool
	}{
		{name: "plain", raw: "shop", want: "shop"},
		{name: "trims and lowercases", raw: "  Heal ", want: "heal"},
		{name: "mixed case", raw: "AdMiN", want: "admin"},
		{name: "blank", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamesEqualByNormalizedValue(t *testing.T) {
	a, err := NewName("Heal ")
	require.NoError(t, err)
	b, err := NewName("heal")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNewAliases(t *testing.T) {
	t.Run("empty input is canonical no-aliases", func(t *testing.T) {
		got, err := NewAliases(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("keeps order and drops repeats", func(t *testing.T) {
		got, err := NewAliases([]string{"b", "A", "b", "a", "c"})
		require.NoError(t, err)
		assert.Equal(t, Aliases{"b", "a", "c"}, got)
	})

	t.Run("blank alias is an error", func(t *testing.T) {
		_, err := NewAliases([]string{"ok", "  "})
		require.Error(t, err)
	})
}

func TestPermissionRequired(t *testing.T) {
	assert.False(t, Permission("").Required())
	assert.False(t, Permission("   ").Required())
	assert.True(t, Permission("admin.reload").Required())
}

func TestCooldown(t *testing.T) {
	_, err := NewCooldown(-1)
	require.Error(t, err)

	zero, err := NewCooldown(0)
	require.NoError(t, err)
	assert.False(t, zero.Active())

	ten, err := NewCooldown(10)
	require.NoError(t, err)
	assert.True(t, ten.Active())
	assert.Equal(t, 10*time.Second, ten.Duration())
}

func TestExecutionTypeString(t *testing.T) {
	assert.Equal(t, "sync", Sync.String())
	assert.Equal(t, "async", Async.String())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/chipdeck/internal/card"
)

func TestConfigFilePath(t *testing.T) {
	t.Setenv("CHIPDECK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/chipdeck/config.toml", GetConfigFilePath())

	t.Setenv("CHIPDECK_CONFIG", "/etc/chipdeck.toml")
	assert.Equal(t, "/etc/chipdeck.toml", GetConfigFilePath())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHIPDECK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(filepath.Join(dir, "chipdeck", "config.toml"))
	assert.NoError(t, err)

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg.DrawCount, again.DrawCount)
	assert.True(t, again.Color)
}

func TestLoadFromKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
seed = 42

[[extra_cards]]
rank = "A"
suit = "spades"
edition = "foil"
enhancement = "gold"
seal = "red"

[[extra_cards]]
rank = "five"
suit = "clubs"
enhancement = "stone"
misc_bonus = 9
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DrawCount)
	assert.True(t, cfg.Color)
	assert.Equal(t, uint64(42), cfg.Seed)
	require.Len(t, cfg.ExtraCards, 2)

	cards, err := cfg.BuildExtraCards()
	require.NoError(t, err)
	assert.Equal(t, "Ace of Spades", cards[0].String())
	assert.Equal(t, card.SealRed, cards[0].Seal)
	assert.Equal(t, uint64(59), cards[1].ChipValue())
}

func TestLoadFromInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("draw_count = \"many\""), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestBuildExtraCardsError(t *testing.T) {
	cfg := Default()
	cfg.ExtraCards = []card.Spec{{Rank: "ace", Suit: "moons"}}

	_, err := cfg.BuildExtraCards()
	assert.ErrorIs(t, err, card.ErrUnknownAttribute)
	assert.Contains(t, err.Error(), "extra_cards[0]")
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{name: "draw count", key: "draw_count", value: "8", check: func(t *testing.T, c *Config) { assert.Equal(t, 8, c.DrawCount) }},
		{name: "negative draw count", key: "draw_count", value: "-1", wantErr: true},
		{name: "seed", key: "seed", value: "1234", check: func(t *testing.T, c *Config) { assert.Equal(t, uint64(1234), c.Seed) }},
		{name: "bad seed", key: "seed", value: "abc", wantErr: true},
		{name: "color", key: "COLOR", value: "false", check: func(t *testing.T, c *Config) { assert.False(t, c.Color) }},
		{name: "unknown key", key: "theme", value: "dark", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			err := c.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestSetValuePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("CHIPDECK_CONFIG", path)

	require.NoError(t, SetValue("draw_count", "3"))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DrawCount)
}

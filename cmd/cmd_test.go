package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempConfig points the commands at a fresh config file for this test.
func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("CHIPDECK_CONFIG", path)
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defer resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default, since cobra commands are
// package globals shared between tests
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestShow(t *testing.T) {
	useTempConfig(t)

	out, err := run(t, "show", "--rank", "5", "--suit", "clubs", "--edition", "foil", "--enhancement", "stone")
	require.NoError(t, err)
	assert.Contains(t, out, "Five of Clubs")
	assert.Contains(t, out, "Chips:       100")
	assert.Contains(t, out, "rank 0 + enhancement 50 + edition 50 + bonus 0")
}

func TestShowRejectsUnknownSuit(t *testing.T) {
	useTempConfig(t)

	_, err := run(t, "show", "--rank", "ace", "--suit", "stars")
	assert.ErrorContains(t, err, "unknown card attribute")
}

func TestDeckList(t *testing.T) {
	useTempConfig(t)

	out, err := run(t, "deck", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "  1  A♣")
	assert.Contains(t, out, "52 cards, 380 chips in total")
}

func TestDeckDraw(t *testing.T) {
	useTempConfig(t)

	out, err := run(t, "deck", "draw", "3", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Hand: 3 cards")
	assert.Contains(t, out, "Deck now has 49 cards")

	again, err := run(t, "deck", "draw", "3", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, out, again, "the same seed draws the same hand")
}

func TestDeckDrawClamps(t *testing.T) {
	useTempConfig(t)

	out, err := run(t, "deck", "draw", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "Only 52 cards left to draw.")
	assert.Contains(t, out, "Deck now has 0 cards")

	out, err = run(t, "deck", "draw", "60", "--random")
	require.NoError(t, err)
	assert.Contains(t, out, "Hand: 52 cards")
}

func TestDeckDrawRejectsBadCount(t *testing.T) {
	useTempConfig(t)

	_, err := run(t, "deck", "draw", "-1")
	assert.Error(t, err)

	_, err = run(t, "deck", "draw", "lots")
	assert.ErrorContains(t, err, "invalid card count")
}

func TestDeckDemo(t *testing.T) {
	useTempConfig(t)

	out, err := run(t, "deck", "demo", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck has 52 cards")
	assert.Contains(t, out, "Drew 5 cards:")
	assert.Contains(t, out, "Deck now has 47 cards")
	assert.Contains(t, out, "Deck now has 46 cards")
	assert.Contains(t, out, "Deck now has 45 cards")
	assert.Contains(t, out, "It is a Foil edition Ace of Spades, Gold enhancement, Red seal")
	assert.Contains(t, out, "It scores 61 chips")
	assert.Contains(t, out, "=== Final deck size: 46 cards ===")
}

func TestConfigCommands(t *testing.T) {
	path := useTempConfig(t)

	out, err := run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = run(t, "config", "set", "draw_count", "2")
	require.NoError(t, err)

	out, err = run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "draw_count = 2")

	out, err = run(t, "deck", "draw")
	require.NoError(t, err)
	assert.Contains(t, out, "Hand: 2 cards")

	_, err = run(t, "config", "set", "theme", "dark")
	assert.ErrorContains(t, err, "unknown config key")
}

func TestExtraCardsFromConfig(t *testing.T) {
	path := useTempConfig(t)
	data := `
[[extra_cards]]
rank = "K"
suit = "hearts"
edition = "holographic"
misc_bonus = 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	out, err := run(t, "deck", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, " 53  K♥")
	assert.Contains(t, out, "53 cards, 405 chips in total")
}

func TestValidate(t *testing.T) {
	path := useTempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("draw_count = -4\n"), 0644))

	out, err := run(t, "validate")
	assert.ErrorContains(t, err, "validation failed")
	assert.Contains(t, out, "draw_count must not be negative")

	good := filepath.Join(t.TempDir(), "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("draw_count = 4\n"), 0644))
	out, err = run(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestWrapText(t *testing.T) {
	lines := wrapText("Foil edition Ace of Spades, Gold enhancement, Red seal", 20)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.Equal(t, []string{""}, wrapText("   ", 20))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Rules.StartingBankroll)
	assert.Equal(t, 5, cfg.Rules.MinBet)
	assert.Equal(t, 17, cfg.Rules.DealerStand)
	assert.False(t, cfg.Rules.DoubleAfterSplit)
	assert.Equal(t, []int{5, 10, 20, 50}, cfg.Denominations)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log_level = "debug"

table {
  starting_bankroll  = 500
  min_bet            = 25
  dealer_stand       = 16
  double_after_split = true
  denominations      = [25, 50, 100]
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Rules.StartingBankroll)
	assert.Equal(t, 25, cfg.Rules.MinBet)
	assert.Equal(t, 16, cfg.Rules.DealerStand)
	assert.True(t, cfg.Rules.DoubleAfterSplit)
	assert.Equal(t, []int{25, 50, 100}, cfg.Denominations)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadPartialBlockKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table {
  starting_bankroll = 200
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Rules.StartingBankroll)
	assert.Equal(t, 5, cfg.Rules.MinBet)
	assert.Equal(t, 17, cfg.Rules.DealerStand)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `table { starting_bankroll = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnplayableRules(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table {
  starting_bankroll = 10
  min_bet           = 50
}
`)
	_, err := Load(path)
	assert.Error(t, err)
}

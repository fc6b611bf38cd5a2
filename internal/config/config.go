// Package config loads table configuration from an HCL file. A missing
// file is not an error; the reference table settings apply.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/guizado/blackjack/internal/game"
)

// Config is the resolved table configuration
type Config struct {
	Rules         game.Rules
	Denominations []int
	LogLevel      string
}

// fileConfig mirrors the HCL layout on disk
type fileConfig struct {
	Table    *tableBlock `hcl:"table,block"`
	LogLevel string      `hcl:"log_level,optional"`
}

type tableBlock struct {
	StartingBankroll int   `hcl:"starting_bankroll,optional"`
	MinBet           int   `hcl:"min_bet,optional"`
	DealerStand      int   `hcl:"dealer_stand,optional"`
	DoubleAfterSplit bool  `hcl:"double_after_split,optional"`
	Denominations    []int `hcl:"denominations,optional"`
}

// Default returns the reference configuration: the rules from
// game.DefaultRules and the classic 5/10/20/50 chip denominations.
func Default() *Config {
	return &Config{
		Rules:         game.DefaultRules(),
		Denominations: []int{5, 10, 20, 50},
		LogLevel:      "info",
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a malformed one is an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	cfg := Default()
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.Table != nil {
		if fc.Table.StartingBankroll != 0 {
			cfg.Rules.StartingBankroll = fc.Table.StartingBankroll
		}
		if fc.Table.MinBet != 0 {
			cfg.Rules.MinBet = fc.Table.MinBet
		}
		if fc.Table.DealerStand != 0 {
			cfg.Rules.DealerStand = fc.Table.DealerStand
		}
		cfg.Rules.DoubleAfterSplit = fc.Table.DoubleAfterSplit
		if len(fc.Table.Denominations) > 0 {
			cfg.Denominations = fc.Table.Denominations
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the configuration is playable
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if len(c.Denominations) == 0 {
		return fmt.Errorf("at least one chip denomination is required")
	}
	for _, d := range c.Denominations {
		if d <= 0 {
			return fmt.Errorf("chip denominations must be positive, got %d", d)
		}
	}
	return nil
}

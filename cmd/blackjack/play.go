package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/guizado/blackjack/internal/config"
	"github.com/guizado/blackjack/internal/randutil"
	"github.com/guizado/blackjack/internal/session"
	"github.com/guizado/blackjack/internal/tui"
)

// PlayCmd runs the interactive table
type PlayCmd struct {
	Config  string `kong:"default='blackjack.hcl',help='Path to the table config file'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug   bool   `kong:"help='Write debug logs to blackjack-debug.log'"`
	NoColor bool   `kong:"help='Disable color output'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// The table owns the terminal, so debug logs go to a file instead of
	// stderr.
	logger := log.New(io.Discard)
	if c.Debug {
		debugFile, err := os.OpenFile("blackjack-debug.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
		if err != nil {
			return fmt.Errorf("creating debug log: %w", err)
		}
		defer debugFile.Close()
		logger = log.NewWithOptions(debugFile, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Level:           log.DebugLevel,
		})
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting table", "seed", seed, "config", c.Config)

	sess, err := session.New(randutil.New(seed), cfg.Rules, session.WithLogger(logger))
	if err != nil {
		return err
	}
	return tui.Run(sess, cfg.Denominations, logger)
}

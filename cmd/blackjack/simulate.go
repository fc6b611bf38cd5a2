package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/guizado/blackjack/internal/config"
	"github.com/guizado/blackjack/internal/simulator"
)

// SimulateCmd plays batches of rounds with a fixed policy and prints
// outcome statistics
type SimulateCmd struct {
	Config  string `kong:"default='blackjack.hcl',help='Path to the table config file'"`
	Rounds  int    `kong:"default='10000',help='Number of rounds to simulate'"`
	Bet     int    `kong:"default='0',help='Wager per round (0 for the table minimum)'"`
	Seed    int64  `kong:"default='0',help='Deterministic RNG seed (0 for random)'"`
	Workers int    `kong:"default='0',help='Parallel workers (0 for GOMAXPROCS)'"`
	Greedy  bool   `kong:"help='Take every double and split on offer'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := setupLogger(cfg.LogLevel, c.Debug)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := c.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sim, err := simulator.New(simulator.Config{
		Rounds:         c.Rounds,
		Bet:            c.Bet,
		Seed:           seed,
		Workers:        workers,
		DoubleAndSplit: c.Greedy,
		Rules:          cfg.Rules,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("simulating", "rounds", c.Rounds, "seed", seed, "workers", workers)
	start := time.Now()
	results, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Rounds:     %d (%.0f/s)\n", results.Rounds, float64(results.Rounds)/elapsed.Seconds())
	fmt.Printf("Wins:       %d (%.1f%%)\n", results.Wins, 100*results.WinRate())
	fmt.Printf("Blackjacks: %d\n", results.Blackjacks)
	fmt.Printf("Pushes:     %d\n", results.Pushes)
	fmt.Printf("Losses:     %d\n", results.Losses)
	fmt.Printf("Net:        %+d\n", results.Net)
	return nil
}

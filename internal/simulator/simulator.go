// Package simulator plays large batches of rounds against the house with
// a fixed playing policy, for sanity-checking the engine's payout math
// and estimating the table edge.
package simulator

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/guizado/blackjack/internal/game"
	"github.com/guizado/blackjack/internal/randutil"
)

// Config holds configuration for running simulations. With
// DoubleAndSplit set the policy takes every double and split on offer;
// otherwise it only hits and stands.
type Config struct {
	Rounds         int
	Bet            int
	Seed           int64
	Workers        int
	DoubleAndSplit bool
	Rules          game.Rules
	Logger         *log.Logger
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", config.Rounds)
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	if config.Bet <= 0 {
		config.Bet = config.Rules.MinBet
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if err := config.Rules.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{config: config}, nil
}

// Run plays the configured number of rounds, sharded across workers.
// Each round is seeded independently from the base seed so results are
// reproducible regardless of worker count.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	results := &Results{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for w := 0; w < s.config.Workers; w++ {
		worker := w
		g.Go(func() error {
			local := &Results{}
			for round := worker; round < s.config.Rounds; round += s.config.Workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				outcome, net, err := s.playRound(s.config.Seed + int64(round))
				if err != nil {
					return fmt.Errorf("round %d: %w", round, err)
				}
				local.add(outcome, net)
			}
			mu.Lock()
			results.merge(local)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.config.Logger.Info("simulation complete",
		"rounds", results.Rounds,
		"net", results.Net,
		"winRate", fmt.Sprintf("%.3f", results.WinRate()),
	)
	return results, nil
}

// playRound plays one seeded round with the dealer-mimic policy: hit
// below 17, stand otherwise, optionally taking doubles and splits first.
// Returns the best outcome across the round's hands plus the net
// bankroll change.
func (s *Simulator) playRound(seed int64) (game.Outcome, int, error) {
	r := game.NewRound(randutil.New(seed), game.WithRules(s.config.Rules))

	// Stake enough that the policy never runs into the bankroll gate.
	r.CreditBankroll(s.config.Bet * 4)
	before := r.Bankroll()

	if err := r.LockBet(s.config.Bet, 0); err != nil {
		return 0, 0, err
	}
	if err := r.Start(); err != nil {
		return 0, 0, err
	}

	for !r.Finished() {
		hand := openHand(r)
		h, err := r.Player().Hand(hand)
		if err != nil {
			return 0, 0, err
		}
		if s.config.DoubleAndSplit {
			options, err := r.AvailableOptions(hand)
			if err != nil {
				return 0, 0, err
			}
			if hasOption(options, game.Split) {
				if err := r.Split(hand); err != nil {
					return 0, 0, err
				}
				continue
			}
			if hasOption(options, game.Double) {
				if err := r.DoubleDown(hand); err != nil {
					return 0, 0, err
				}
				continue
			}
		}
		if h.Value() < 17 {
			if err := r.Hit(hand); err != nil {
				return 0, 0, err
			}
		} else {
			if err := r.Stand(hand); err != nil {
				return 0, 0, err
			}
		}
	}

	r.DealerPlay()
	settled := r.Settle()

	best := game.Loss
	for _, res := range settled {
		if res.Outcome > best {
			best = res.Outcome
		}
	}
	return best, r.Bankroll() - before, nil
}

func hasOption(options []game.Option, opt game.Option) bool {
	for _, o := range options {
		if o == opt {
			return true
		}
	}
	return false
}

func openHand(r *game.Round) int {
	for i, h := range r.Player().Hands() {
		if !h.IsFinished() {
			return i
		}
	}
	return 0
}

// Results aggregates simulation outcomes. Net is in bet units of
// bankroll won or lost across all rounds.
type Results struct {
	Rounds     int
	Wins       int
	Blackjacks int
	Pushes     int
	Losses     int
	Net        int
}

func (r *Results) add(outcome game.Outcome, net int) {
	r.Rounds++
	r.Net += net
	switch outcome {
	case game.Blackjack:
		r.Blackjacks++
		r.Wins++
	case game.Win:
		r.Wins++
	case game.Push:
		r.Pushes++
	case game.Loss:
		r.Losses++
	}
}

func (r *Results) merge(other *Results) {
	r.Rounds += other.Rounds
	r.Wins += other.Wins
	r.Blackjacks += other.Blackjacks
	r.Pushes += other.Pushes
	r.Losses += other.Losses
	r.Net += other.Net
}

// WinRate returns the fraction of rounds won
func (r *Results) WinRate() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Rounds)
}

// String renders a one-line summary
func (r *Results) String() string {
	return fmt.Sprintf("rounds=%d wins=%d (blackjacks=%d) pushes=%d losses=%d net=%+d",
		r.Rounds, r.Wins, r.Blackjacks, r.Pushes, r.Losses, r.Net)
}

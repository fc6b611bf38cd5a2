// Package session drives multi-round play over a single round engine:
// wager, round, dealer, settlement, restart, repeating until the player
// can no longer cover the minimum bet.
package session

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/guizado/blackjack/internal/game"
)

// Session owns a Round and the table rules and tracks the lifecycle the
// round itself does not: the starting stake, the per-round wager, and
// when the player goes broke. It optionally arms a shot clock that
// auto-stands a hand when a decision does not arrive in time.
type Session struct {
	round   *game.Round
	rules   game.Rules
	clock   quartz.Clock
	logger  *log.Logger
	timeout time.Duration
	settled bool
}

// Option configures a Session during creation
type Option func(*Session)

// WithClock sets the clock used for the decision shot clock. Defaults to
// the real clock; tests inject a mock.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithDecisionTimeout arms the shot clock: a hand whose decision does not
// arrive within d is stood automatically. Zero disables the clock.
func WithDecisionTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.timeout = d
	}
}

// New creates a session, credits the starting bankroll and leaves the
// table ready for the first wager.
func New(rng *rand.Rand, rules game.Rules, opts ...Option) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		rules:  rules,
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("session")
	s.round = game.NewRound(rng, game.WithRules(rules), game.WithLogger(s.logger))
	s.round.CreditBankroll(rules.StartingBankroll)

	s.logger.Info("session opened",
		"bankroll", rules.StartingBankroll,
		"minBet", rules.MinBet,
	)
	return s, nil
}

// Round exposes the underlying round engine for queries and decisions
func (s *Session) Round() *game.Round {
	return s.round
}

// Rules returns the table rules
func (s *Session) Rules() game.Rules {
	return s.rules
}

// Broke returns true once the bankroll can no longer cover the minimum
// bet. The session is over at that point.
func (s *Session) Broke() bool {
	return s.round.Bankroll() < s.rules.MinBet
}

// StartRound locks the opening wager on the original hand and deals. The
// wager must cover the table minimum and fit the bankroll.
func (s *Session) StartRound(wager int) error {
	if s.Broke() {
		return fmt.Errorf("bankroll %d cannot cover minimum bet %d", s.round.Bankroll(), s.rules.MinBet)
	}
	if wager < s.rules.MinBet {
		return fmt.Errorf("wager %d below table minimum %d", wager, s.rules.MinBet)
	}
	if err := s.round.LockBet(wager, 0); err != nil {
		return err
	}
	if err := s.round.Start(); err != nil {
		return err
	}
	s.logger.Info("round started", "wager", wager, "bankroll", s.round.Bankroll())
	return nil
}

// AwaitDecision blocks until a decision for the named hand arrives on the
// channel, or until the shot clock fires, in which case the hand is stood
// and Stand is returned. With no timeout configured it simply waits.
func (s *Session) AwaitDecision(hand int, decisions <-chan game.Option) game.Option {
	if s.timeout <= 0 {
		return <-decisions
	}

	timedOut := make(chan struct{})
	timer := s.clock.AfterFunc(s.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case opt := <-decisions:
		return opt
	case <-timedOut:
		s.logger.Warn("decision timeout, standing", "hand", hand, "timeout", s.timeout)
		return game.Stand
	}
}

// Apply dispatches a decision to the round engine
func (s *Session) Apply(opt game.Option, hand int) error {
	switch opt {
	case game.Hit:
		return s.round.Hit(hand)
	case game.Stand:
		return s.round.Stand(hand)
	case game.Double:
		return s.round.DoubleDown(hand)
	case game.Split:
		return s.round.Split(hand)
	default:
		return fmt.Errorf("unknown option %d", opt)
	}
}

// CompleteRound runs the dealer and settles every hand. Call once the
// round reports Finished; the table stays on display until NextRound.
func (s *Session) CompleteRound() ([]game.Result, error) {
	if !s.round.Finished() {
		return nil, fmt.Errorf("player hands still open")
	}
	if s.settled {
		return nil, fmt.Errorf("round already settled")
	}
	s.round.DealerPlay()
	results := s.round.Settle()
	s.settled = true
	s.logger.Info("round complete", "bankroll", s.round.Bankroll(), "broke", s.Broke())
	return results, nil
}

// NextRound clears the table for a fresh wager
func (s *Session) NextRound() {
	s.round.Restart()
	s.settled = false
}

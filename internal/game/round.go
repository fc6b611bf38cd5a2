package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/guizado/blackjack/internal/deck"
)

// Round orchestrates a single blackjack round: it owns the shoe, the
// player account and the dealer, deals, exposes the legal options per
// hand, applies decisions, runs the dealer policy and settles bets.
//
// Every operation is a single in-memory state transition: preconditions
// are validated before any mutation, so a rejected call leaves the round
// untouched. Callers are expected to gate decisions through
// AvailableOptions, but violations are rejected loudly rather than
// silently corrupting the bankroll.
type Round struct {
	shoe   *deck.Shoe
	player *Account
	dealer *Dealer
	rules  Rules
	logger *log.Logger
}

// RoundOption configures a Round during creation
type RoundOption func(*roundConfig)

type roundConfig struct {
	rules  Rules
	shoe   *deck.Shoe
	logger *log.Logger
}

// WithRules sets the table rules. Defaults to DefaultRules.
func WithRules(rules Rules) RoundOption {
	return func(c *roundConfig) {
		c.rules = rules
	}
}

// WithShoe sets a specific shoe, overriding the RNG for shoe creation
func WithShoe(shoe *deck.Shoe) RoundOption {
	return func(c *roundConfig) {
		c.shoe = shoe
	}
}

// WithLogger sets the logger for round orchestration. Defaults to a
// discard logger.
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) {
		c.logger = logger
	}
}

// NewRound creates a round with an empty-handed player and dealer. The
// RNG is required to make randomness explicit and testing deterministic.
func NewRound(rng *rand.Rand, opts ...RoundOption) *Round {
	if rng == nil {
		panic("rng is required for round creation")
	}

	cfg := &roundConfig{rules: DefaultRules()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.shoe == nil {
		cfg.shoe = deck.NewShoe(rng)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	return &Round{
		shoe:   cfg.shoe,
		player: NewAccount(),
		dealer: NewDealer(),
		rules:  cfg.rules,
		logger: cfg.logger.WithPrefix("round"),
	}
}

// Player returns the player account
func (r *Round) Player() *Account {
	return r.player
}

// Dealer returns the dealer seat
func (r *Round) Dealer() *Dealer {
	return r.dealer
}

// Shoe returns the round's shoe
func (r *Round) Shoe() *deck.Shoe {
	return r.shoe
}

// Rules returns the table rules
func (r *Round) Rules() Rules {
	return r.rules
}

// Bankroll returns the player's current bankroll
func (r *Round) Bankroll() int {
	return r.player.Bankroll()
}

// Finished returns true once every player hand is finished. Dealer play
// and settlement happen only then.
func (r *Round) Finished() bool {
	return r.player.AllFinished()
}

// CreditBankroll adds funds to the player's bankroll. Used once per
// session to stake the player before the first round.
func (r *Round) CreditBankroll(amount int) {
	r.player.Credit(amount)
}

// LockBet debits the bankroll and adds the same amount to the named
// hand's bet. The initial wager, doubling and splitting all move money
// through this path, so bankroll decrease always equals bet increase.
func (r *Round) LockBet(amount, hand int) error {
	h, err := r.player.Hand(hand)
	if err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("cannot bet negative amount %d", amount)
	}
	if amount > r.player.Bankroll() {
		return fmt.Errorf("bet %d exceeds bankroll %d", amount, r.player.Bankroll())
	}
	if h.IsFinished() {
		return fmt.Errorf("cannot bet on finished hand %d", hand)
	}
	if err := r.player.Debit(amount); err != nil {
		return err
	}
	// Cannot fail: the hand was checked open above.
	_ = h.addBet(amount)
	r.logger.Debug("bet locked", "hand", hand, "amount", amount, "bankroll", r.player.Bankroll())
	return nil
}

// Start deals the opening cards: two to the player's original hand, one
// face up to the dealer and one face down held out as the hole card.
func (r *Round) Start() error {
	if r.player.Hands()[0].Len() > 0 || r.dealer.Hand().Len() > 0 {
		return fmt.Errorf("round already started")
	}

	cards, err := r.shoe.Draw(2)
	if err != nil {
		return err
	}
	for _, c := range cards {
		if err := r.player.Hands()[0].AddCard(c); err != nil {
			return err
		}
	}
	if err := r.dealer.Hand().AddCard(r.shoe.DrawOne()); err != nil {
		return err
	}
	if err := r.dealer.HoldCard(r.shoe.DrawOne()); err != nil {
		return err
	}

	r.logger.Debug("round started",
		"player", r.player.Hands()[0],
		"dealerUp", r.dealer.Hand(),
	)
	return nil
}

// AvailableOptions returns the legal decisions for the named hand.
// Hit and Stand are always offered unless the hand has busted. Double
// and Split additionally require the hand's bet to fit within the
// bankroll, since both lock a matching wager.
//
// Double requires exactly two cards valuing 9, 10 or 11 and, unless the
// rules allow doubling after a split, a player with exactly one hand.
func (r *Round) AvailableOptions(hand int) ([]Option, error) {
	h, err := r.player.Hand(hand)
	if err != nil {
		return nil, err
	}
	if h.IsBust() {
		return nil, nil
	}

	options := []Option{Hit, Stand}
	if h.Bet() <= r.player.Bankroll() {
		if r.canDouble(h) {
			options = append(options, Double)
		}
		if h.CanSplit() {
			options = append(options, Split)
		}
	}
	return options, nil
}

func (r *Round) canDouble(h *Hand) bool {
	if h.Len() != 2 {
		return false
	}
	if v := h.Value(); v < 9 || v > 11 {
		return false
	}
	return r.player.NumHands() == 1 || r.rules.DoubleAfterSplit
}

// Hit draws one card into the hand. A hand that busts is finished
// automatically.
func (r *Round) Hit(hand int) error {
	h, err := r.player.Hand(hand)
	if err != nil {
		return err
	}
	if h.IsFinished() {
		return fmt.Errorf("cannot hit finished hand %d", hand)
	}

	card := r.shoe.DrawOne()
	if err := h.AddCard(card); err != nil {
		return err
	}
	if h.IsBust() {
		h.Finish()
	}
	r.logger.Debug("hit", "hand", hand, "card", card, "value", h.Value(), "bust", h.IsBust())
	return nil
}

// Stand finishes the hand without drawing
func (r *Round) Stand(hand int) error {
	h, err := r.player.Hand(hand)
	if err != nil {
		return err
	}
	if h.IsFinished() {
		return fmt.Errorf("cannot stand finished hand %d", hand)
	}
	h.Finish()
	r.logger.Debug("stand", "hand", hand, "value", h.Value())
	return nil
}

// DoubleDown draws exactly one card, locks a second wager equal to the
// hand's existing bet, and finishes the hand regardless of the outcome.
func (r *Round) DoubleDown(hand int) error {
	h, err := r.player.Hand(hand)
	if err != nil {
		return err
	}
	if h.IsFinished() {
		return fmt.Errorf("cannot double finished hand %d", hand)
	}
	if !r.canDouble(h) {
		return fmt.Errorf("hand %d is not eligible to double down", hand)
	}
	if h.Bet() > r.player.Bankroll() {
		return fmt.Errorf("cannot double: bet %d exceeds bankroll %d", h.Bet(), r.player.Bankroll())
	}

	card := r.shoe.DrawOne()
	if err := h.AddCard(card); err != nil {
		return err
	}
	if err := r.LockBet(h.Bet(), hand); err != nil {
		return err
	}
	h.Finish()
	r.logger.Debug("double down", "hand", hand, "card", card, "value", h.Value(), "bet", h.Bet())
	return nil
}

// Split appends a new hand, locks a bet on it equal to the source hand's
// bet, and transfers the source hand's second card into it. Both hands
// then play on independently.
func (r *Round) Split(hand int) error {
	h, err := r.player.Hand(hand)
	if err != nil {
		return err
	}
	if h.IsFinished() {
		return fmt.Errorf("cannot split finished hand %d", hand)
	}
	if !h.CanSplit() {
		return fmt.Errorf("hand %d is not a splittable pair", hand)
	}
	if h.Bet() > r.player.Bankroll() {
		return fmt.Errorf("cannot split: bet %d exceeds bankroll %d", h.Bet(), r.player.Bankroll())
	}

	split := r.player.AddHand()
	if err := r.LockBet(h.Bet(), r.player.NumHands()-1); err != nil {
		return err
	}
	if err := h.TransferCard(1, split); err != nil {
		return err
	}
	r.logger.Debug("split", "hand", hand, "newHand", r.player.NumHands()-1, "bet", split.Bet())
	return nil
}

// DealerPlay reveals the hole card and draws until the dealer's hand
// value reaches the stand threshold. The dealer may bust.
func (r *Round) DealerPlay() {
	r.dealer.Reveal()
	for r.dealer.Value() < r.rules.DealerStand {
		// Hole card in hand, dealer hand is never finished mid-round.
		_ = r.dealer.Hand().AddCard(r.shoe.DrawOne())
	}
	r.logger.Debug("dealer played", "dealer", r.dealer.Hand(), "bust", r.dealer.Hand().IsBust())
}

// Settle resolves every player hand against the dealer and credits
// payouts: 2x the bet on a win, 1x on a push, trunc(2.5x) on a winning
// 21. A lost hand forfeits its already-debited bet with no further
// debit. Returns one result per hand in hand order.
func (r *Round) Settle() []Result {
	dealerValue := r.dealer.Value()
	dealerBust := r.dealer.Hand().IsBust()

	results := make([]Result, 0, r.player.NumHands())
	for i, h := range r.player.Hands() {
		res := Result{HandIndex: i, Outcome: Loss, Bet: h.Bet()}

		switch {
		case h.IsBust():
			// Forfeit.
		case h.Value() > dealerValue || dealerBust:
			if h.IsBlackjack() {
				res.Outcome = Blackjack
				res.Payout = (5 * h.Bet()) / 2
			} else {
				res.Outcome = Win
				res.Payout = 2 * h.Bet()
			}
		case h.Value() == dealerValue:
			res.Outcome = Push
			res.Payout = h.Bet()
		}

		if res.Payout > 0 {
			r.player.Credit(res.Payout)
		}
		r.logger.Debug("settled",
			"hand", i,
			"outcome", res.Outcome,
			"bet", res.Bet,
			"payout", res.Payout,
			"bankroll", r.player.Bankroll(),
		)
		results = append(results, res)
	}
	return results
}

// Restart clears both seats back to a single empty, unfinished, bet-free
// hand each. The bankroll carries over; the shoe keeps depleting until
// it replenishes itself.
func (r *Round) Restart() {
	r.player.Reset()
	r.dealer.Reset()
}

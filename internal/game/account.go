package game

import "fmt"

// HandHolder is the capability shared by the player and dealer seats:
// an ordered, non-empty list of hands. The dealer is not a specialised
// Account; both sides expose their hands through this interface and the
// round composes them.
type HandHolder interface {
	Hands() []*Hand
}

// Account is a bankroll plus an ordered list of hands. A fresh account
// holds a single empty hand; splitting appends more. Index 0 is always
// the original hand.
type Account struct {
	bankroll int
	hands    []*Hand
}

// NewAccount creates an account with a zero bankroll and one empty hand
func NewAccount() *Account {
	return &Account{hands: []*Hand{NewHand()}}
}

// Bankroll returns the current bankroll
func (a *Account) Bankroll() int {
	return a.bankroll
}

// Hands returns the account's hands in order. Index 0 is the original hand.
func (a *Account) Hands() []*Hand {
	return a.hands
}

// NumHands returns the number of hands
func (a *Account) NumHands() int {
	return len(a.hands)
}

// Hand returns the hand at the given 0-based index
func (a *Account) Hand(i int) (*Hand, error) {
	if i < 0 || i >= len(a.hands) {
		return nil, fmt.Errorf("no hand at index %d", i)
	}
	return a.hands[i], nil
}

// AddHand appends a fresh empty hand and returns it. Used when splitting.
func (a *Account) AddHand() *Hand {
	h := NewHand()
	a.hands = append(a.hands, h)
	return h
}

// PlaceBet adds amount to the bet of the hand at index i. Additive, so
// incremental betting and doubling reuse the same path.
func (a *Account) PlaceBet(amount, i int) error {
	h, err := a.Hand(i)
	if err != nil {
		return err
	}
	return h.addBet(amount)
}

// Credit increases the bankroll
func (a *Account) Credit(amount int) {
	a.bankroll += amount
}

// Debit decreases the bankroll. The caller is responsible for never
// driving the bankroll negative; the round validates bets against the
// bankroll before debiting.
func (a *Account) Debit(amount int) error {
	if amount > a.bankroll {
		return fmt.Errorf("debit %d exceeds bankroll %d", amount, a.bankroll)
	}
	a.bankroll -= amount
	return nil
}

// AllFinished returns true once every hand is finished. This is the
// round-completion aggregate that gates dealer play and settlement.
func (a *Account) AllFinished() bool {
	for _, h := range a.hands {
		if !h.IsFinished() {
			return false
		}
	}
	return true
}

// Reset clears the account back to a single empty hand. Bankroll persists
// across rounds.
func (a *Account) Reset() {
	a.hands = a.hands[:1]
	a.hands[0].reset()
}

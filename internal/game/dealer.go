package game

import (
	"fmt"

	"github.com/guizado/blackjack/internal/deck"
)

// Dealer is the house seat: exactly one hand, no bets, plus an optional
// face-down hole card held outside the hand. The hole card contributes
// nothing to the hand's value until revealed.
type Dealer struct {
	hand *Hand
	hole *deck.Card
}

// NewDealer creates a dealer with one empty hand and no hole card
func NewDealer() *Dealer {
	return &Dealer{hand: NewHand()}
}

// Hands implements HandHolder. The dealer always has exactly one hand.
func (d *Dealer) Hands() []*Hand {
	return []*Hand{d.hand}
}

// Hand returns the dealer's hand
func (d *Dealer) Hand() *Hand {
	return d.hand
}

// HoldCard stores the face-down hole card. At most one may be held.
func (d *Dealer) HoldCard(c deck.Card) error {
	if d.hole != nil {
		return fmt.Errorf("dealer already holds a hole card")
	}
	d.hole = &c
	return nil
}

// HasHoleCard returns true while a face-down card is held
func (d *Dealer) HasHoleCard() bool {
	return d.hole != nil
}

// Reveal moves the hole card into the hand and clears the holder. No-op
// when nothing is held.
func (d *Dealer) Reveal() {
	if d.hole == nil {
		return
	}
	// The hand is never finished while a hole card is outstanding, so the
	// append cannot fail.
	_ = d.hand.AddCard(*d.hole)
	d.hole = nil
}

// VisibleCards returns the dealer's face-up cards. The hole card stays
// hidden until Reveal.
func (d *Dealer) VisibleCards() []deck.Card {
	return d.hand.Cards()
}

// Value returns the value of the dealer's visible hand
func (d *Dealer) Value() int {
	return d.hand.Value()
}

// Reset clears the hand and discards any unrevealed hole card
func (d *Dealer) Reset() {
	d.hand.reset()
	d.hole = nil
}

package game

import (
	"fmt"

	"github.com/guizado/blackjack/internal/deck"
)

// HandStatus is the completion state of a hand within a round
type HandStatus int

const (
	Open HandStatus = iota
	Finished
)

func (s HandStatus) String() string {
	return [...]string{"open", "finished"}[s]
}

// Hand is an ordered sequence of cards plus the bet riding on it and its
// completion status. Card order is deal order; it matters only for split
// eligibility, never for valuation.
type Hand struct {
	cards  []deck.Card
	bet    int
	status HandStatus
}

// NewHand creates an empty, open hand with no bet
func NewHand() *Hand {
	return &Hand{}
}

// Cards returns a copy of the hand's cards in deal order
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Bet returns the amount currently riding on the hand
func (h *Hand) Bet() int {
	return h.bet
}

// Status returns the hand's completion state
func (h *Hand) Status() HandStatus {
	return h.status
}

// IsFinished returns true once the hand has been closed for the round
func (h *Hand) IsFinished() bool {
	return h.status == Finished
}

// AddCard appends a card to the hand. Finished hands reject further cards.
func (h *Hand) AddCard(c deck.Card) error {
	if h.status == Finished {
		return fmt.Errorf("cannot add card to finished hand")
	}
	h.cards = append(h.cards, c)
	return nil
}

// addBet increases the hand's bet. Finished hands reject bet changes.
func (h *Hand) addBet(amount int) error {
	if h.status == Finished {
		return fmt.Errorf("cannot change bet on finished hand")
	}
	if amount < 0 {
		return fmt.Errorf("cannot add negative bet %d", amount)
	}
	h.bet += amount
	return nil
}

// Value computes the blackjack value of the hand. Aces count as 11 until
// the total exceeds 21, then each ace in turn drops to 1 until the total
// is 21 or less or no aces remain. A reduction is applied at most once
// per ace.
func (h *Hand) Value() int {
	v := 0
	for _, c := range h.cards {
		v += c.Value()
	}
	for _, c := range h.cards {
		if v <= 21 {
			break
		}
		if c.IsAce() {
			v -= 10
		}
	}
	return v
}

// IsBust returns true if the hand's value exceeds 21
func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

// IsBlackjack returns true if the hand's value is exactly 21. A 21 reached
// on three or more cards counts the same as a two-card natural; settlement
// pays both at the enhanced rate.
func (h *Hand) IsBlackjack() bool {
	return h.Value() == 21
}

// Finish closes the hand for the round. Idempotent.
func (h *Hand) Finish() {
	h.status = Finished
}

// CanSplit returns true if the hand is a two-card pair of equal rank
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// TransferCard moves the card at index i (0-based, deal order) into the
// destination hand. Ownership transfers; the card is never duplicated.
func (h *Hand) TransferCard(i int, dst *Hand) error {
	if i < 0 || i >= len(h.cards) {
		return fmt.Errorf("no card at index %d", i)
	}
	if h.status == Finished {
		return fmt.Errorf("cannot take card from finished hand")
	}
	card := h.cards[i]
	if err := dst.AddCard(card); err != nil {
		return err
	}
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return nil
}

// reset reverts the hand to empty, open and bet-free between rounds
func (h *Hand) reset() {
	h.cards = h.cards[:0]
	h.bet = 0
	h.status = Open
}

func (h *Hand) String() string {
	s := ""
	for i, c := range h.cards {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return fmt.Sprintf("[%s] (%d)", s, h.Value())
}

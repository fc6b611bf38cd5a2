package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// Shoe is the pool of undrawn cards for a blackjack table. It starts with
// the 52 canonical cards and depletes as cards are drawn. When a draw asks
// for more cards than remain, the shoe silently replenishes to the full
// 52-card set first; running dry is never surfaced as an error.
type Shoe struct {
	cards []Card
	rng   *rand.Rand
}

// NewShoe creates a full 52-card shoe drawing through the given RNG.
// The RNG is required to make randomness explicit and testing deterministic.
func NewShoe(rng *rand.Rand) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}
	s := &Shoe{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	s.replenish()
	return s
}

func (s *Shoe) replenish() {
	s.cards = s.cards[:0]
	for suit := Spades; suit <= Diamonds; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			s.cards = append(s.cards, NewCard(suit, rank))
		}
	}
}

// Draw removes and returns n uniformly random cards without replacement.
// If fewer than n cards remain the shoe replenishes before drawing, so the
// returned cards are pairwise distinct for any n <= 52.
func (s *Shoe) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if n > len(s.cards) {
		s.replenish()
	}

	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		if len(s.cards) == 0 {
			s.replenish()
		}
		cards = append(cards, s.drawOne())
	}
	return cards, nil
}

// DrawOne removes and returns a single uniformly random card, replenishing
// the shoe first if it is empty.
func (s *Shoe) DrawOne() Card {
	if len(s.cards) == 0 {
		s.replenish()
	}
	return s.drawOne()
}

func (s *Shoe) drawOne() Card {
	j := s.rng.IntN(len(s.cards))
	card := s.cards[j]
	s.cards[j] = s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// Size returns the number of undrawn cards remaining
func (s *Shoe) Size() int {
	return len(s.cards)
}

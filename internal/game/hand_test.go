package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guizado/blackjack/internal/deck"
)

func handOf(t *testing.T, cards ...string) *Hand {
	t.Helper()
	h := NewHand()
	for _, s := range cards {
		require.NoError(t, h.AddCard(deck.MustParseCard(s)))
	}
	return h
}

func TestHandValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []string
		value int
	}{
		{"empty", nil, 0},
		{"numerals", []string{"2C", "9H"}, 11},
		{"faces count ten", []string{"KC", "QH", "JD"}, 30},
		{"natural", []string{"AS", "KD"}, 21},
		{"soft ace stays eleven", []string{"AS", "5H"}, 16},
		{"ace drops to one", []string{"AS", "5H", "9C"}, 15},
		{"two aces adjust once each", []string{"AS", "AH", "9C"}, 21},
		{"four aces", []string{"AS", "AH", "AC", "AD"}, 14},
		{"only as many reductions as needed", []string{"AS", "AH"}, 12},
		{"bust with no aces", []string{"KC", "QH", "5D"}, 25},
		{"bust despite aces", []string{"AS", "KC", "QH", "5D"}, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.value, handOf(t, tt.cards...).Value())
		})
	}
}

func TestHandBustAndBlackjack(t *testing.T) {
	t.Parallel()

	assert.True(t, handOf(t, "KC", "QH", "5D").IsBust())
	assert.False(t, handOf(t, "AS", "KD").IsBust())

	assert.True(t, handOf(t, "AS", "KD").IsBlackjack())
	// A later-reached 21 counts the same as a two-card natural.
	assert.True(t, handOf(t, "7C", "7H", "7D").IsBlackjack())
	assert.False(t, handOf(t, "KC", "QH").IsBlackjack())
}

func TestFinishedHandRejectsMutation(t *testing.T) {
	t.Parallel()

	h := handOf(t, "5C", "5H")
	h.Finish()
	require.True(t, h.IsFinished())

	assert.Error(t, h.AddCard(deck.MustParseCard("2C")))
	assert.Error(t, h.addBet(10))
	assert.Equal(t, 2, h.Len())

	// Finish is idempotent.
	h.Finish()
	assert.True(t, h.IsFinished())
}

func TestCanSplit(t *testing.T) {
	t.Parallel()

	assert.True(t, handOf(t, "8C", "8H").CanSplit())
	assert.False(t, handOf(t, "8C", "9H").CanSplit())
	assert.False(t, handOf(t, "8C").CanSplit())
	assert.False(t, handOf(t, "8C", "8H", "8D").CanSplit())
	// Same value, different rank: not a pair.
	assert.False(t, handOf(t, "KC", "QH").CanSplit())
}

func TestTransferCard(t *testing.T) {
	t.Parallel()

	src := handOf(t, "8C", "8H")
	dst := NewHand()

	require.NoError(t, src.TransferCard(1, dst))
	assert.Equal(t, 1, src.Len())
	assert.Equal(t, 1, dst.Len())
	assert.Equal(t, deck.MustParseCard("8H"), dst.Cards()[0])
	assert.Equal(t, deck.MustParseCard("8C"), src.Cards()[0])

	assert.Error(t, src.TransferCard(5, dst))
	assert.Error(t, src.TransferCard(-1, dst))
}

func TestHandReset(t *testing.T) {
	t.Parallel()

	h := handOf(t, "KC", "QH")
	require.NoError(t, h.addBet(25))
	h.Finish()

	h.reset()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Bet())
	assert.False(t, h.IsFinished())
}

func TestCardsReturnsCopy(t *testing.T) {
	t.Parallel()

	h := handOf(t, "KC", "QH")
	cards := h.Cards()
	cards[0] = deck.MustParseCard("2C")
	assert.Equal(t, deck.MustParseCard("KC"), h.Cards()[0])
}

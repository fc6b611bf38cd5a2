package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guizado/blackjack/internal/deck"
)

func TestNewAccountStartsWithOneHand(t *testing.T) {
	t.Parallel()

	a := NewAccount()
	assert.Equal(t, 1, a.NumHands())
	assert.Equal(t, 0, a.Bankroll())

	h, err := a.Hand(0)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())

	_, err = a.Hand(1)
	assert.Error(t, err)
	_, err = a.Hand(-1)
	assert.Error(t, err)
}

func TestAccountBankroll(t *testing.T) {
	t.Parallel()

	a := NewAccount()
	a.Credit(100)
	assert.Equal(t, 100, a.Bankroll())

	require.NoError(t, a.Debit(40))
	assert.Equal(t, 60, a.Bankroll())

	// Engine-internal debits never drive the bankroll negative.
	assert.Error(t, a.Debit(61))
	assert.Equal(t, 60, a.Bankroll())
}

func TestAccountPlaceBet(t *testing.T) {
	t.Parallel()

	a := NewAccount()
	require.NoError(t, a.PlaceBet(10, 0))
	require.NoError(t, a.PlaceBet(10, 0))
	assert.Equal(t, 20, a.Hands()[0].Bet())

	assert.Error(t, a.PlaceBet(10, 3))
}

func TestAccountResetKeepsBankroll(t *testing.T) {
	t.Parallel()

	a := NewAccount()
	a.Credit(80)
	a.AddHand()
	require.NoError(t, a.PlaceBet(10, 1))
	require.Equal(t, 2, a.NumHands())

	a.Reset()
	assert.Equal(t, 1, a.NumHands())
	assert.Equal(t, 80, a.Bankroll())
	assert.Equal(t, 0, a.Hands()[0].Bet())
	assert.False(t, a.AllFinished())
}

func TestAllFinished(t *testing.T) {
	t.Parallel()

	a := NewAccount()
	second := a.AddHand()
	assert.False(t, a.AllFinished())

	a.Hands()[0].Finish()
	assert.False(t, a.AllFinished())

	second.Finish()
	assert.True(t, a.AllFinished())
}

func TestDealerHoleCard(t *testing.T) {
	t.Parallel()

	d := NewDealer()
	require.NoError(t, d.Hand().AddCard(deck.MustParseCard("6S")))
	assert.False(t, d.HasHoleCard())

	require.NoError(t, d.HoldCard(deck.MustParseCard("KD")))
	assert.True(t, d.HasHoleCard())

	// The hole card is not part of the hand's value until revealed.
	assert.Equal(t, 6, d.Value())
	assert.Len(t, d.VisibleCards(), 1)

	// At most one hole card at a time.
	assert.Error(t, d.HoldCard(deck.MustParseCard("2C")))

	d.Reveal()
	assert.False(t, d.HasHoleCard())
	assert.Equal(t, 16, d.Value())
	assert.Len(t, d.VisibleCards(), 2)

	// Revealing with nothing held is a no-op.
	d.Reveal()
	assert.Equal(t, 2, d.Hand().Len())
}

func TestDealerResetDiscardsHoleCard(t *testing.T) {
	t.Parallel()

	d := NewDealer()
	require.NoError(t, d.Hand().AddCard(deck.MustParseCard("6S")))
	require.NoError(t, d.HoldCard(deck.MustParseCard("KD")))

	d.Reset()
	assert.False(t, d.HasHoleCard())
	assert.Equal(t, 0, d.Hand().Len())
	assert.Len(t, d.Hands(), 1)
}

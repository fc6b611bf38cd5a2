package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guizado/blackjack/internal/game"
	"github.com/guizado/blackjack/internal/randutil"
	"github.com/guizado/blackjack/internal/session"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	sess, err := session.New(randutil.New(42), game.DefaultRules(), session.WithLogger(logger))
	require.NoError(t, err)
	return New(sess, []int{5, 10, 20, 50}, logger)
}

func press(m *Model, runes string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(runes)})
}

func pressEnter(m *Model) {
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestBettingAccumulatesChips(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "1") // 5
	press(m, "2") // 10
	assert.Equal(t, 15, m.wager)

	press(m, "x")
	assert.Zero(t, m.wager)
}

func TestBettingRejectsChipBeyondBankroll(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "4") // 50
	press(m, "4") // 100
	press(m, "4") // would be 150 on a 100 bankroll
	assert.Equal(t, 100, m.wager)
	assert.NotEmpty(t, m.errMsg)
}

func TestDealMovesToActing(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "2") // 10
	pressEnter(m)

	assert.Equal(t, phaseActing, m.phase)
	assert.Equal(t, 90, m.session.Round().Bankroll())
	assert.Contains(t, m.View(), "Dealer")
	assert.Contains(t, m.View(), "Bankroll")
}

func TestDealRejectsWagerBelowMinimum(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	pressEnter(m) // zero wager

	assert.Equal(t, phaseBetting, m.phase)
	assert.NotEmpty(t, m.errMsg)
}

func TestStandSettlesAndNextRoundResets(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "2")
	pressEnter(m)
	press(m, "s")

	require.Equal(t, phaseSettled, m.phase)
	require.Len(t, m.results, 1)
	assert.False(t, m.session.Round().Dealer().HasHoleCard(), "hole card revealed for settlement")

	pressEnter(m)
	assert.Equal(t, phaseBetting, m.phase)
	assert.Nil(t, m.results)
	assert.Zero(t, m.session.Round().Player().Hands()[0].Len())
}

func TestUnavailableOptionIsRejected(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "2")
	pressEnter(m)

	// Splitting is only offered on a pair; on any other deal it must be
	// refused without touching the round.
	if h, _ := m.session.Round().Player().Hand(0); !h.CanSplit() {
		press(m, "p")
		assert.Equal(t, phaseActing, m.phase)
		assert.NotEmpty(t, m.errMsg)
		assert.Equal(t, 1, m.session.Round().Player().NumHands())
	}
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

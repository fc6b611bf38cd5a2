package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card  string
		value int
	}{
		{"2C", 2},
		{"5H", 5},
		{"9D", 9},
		{"TS", 10},
		{"JH", 10},
		{"QC", 10},
		{"KD", 10},
		{"AS", 11},
	}

	for _, tt := range tests {
		c, err := ParseCard(tt.card)
		require.NoError(t, err)
		assert.Equal(t, tt.value, c.Value(), "value of %s", tt.card)
	}
}

func TestParseCardRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "A", "1S", "AX", "ZS", "10H", "A♠"} {
		_, err := ParseCard(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "T♥", NewCard(Hearts, Ten).String())
	assert.Equal(t, "2♦", NewCard(Diamonds, Two).String())
}

func TestIsRed(t *testing.T) {
	t.Parallel()

	assert.True(t, NewCard(Hearts, Five).IsRed())
	assert.True(t, NewCard(Diamonds, King).IsRed())
	assert.False(t, NewCard(Spades, Five).IsRed())
	assert.False(t, NewCard(Clubs, King).IsRed())
}

package game

import "fmt"

// Rules holds the table parameters that vary between games. Payout
// multipliers are fixed (2x win, 1x push, 2.5x on a winning 21) and
// deliberately not configurable.
type Rules struct {
	// StartingBankroll is credited to the player at session start.
	StartingBankroll int

	// MinBet is the smallest wager a round may open with. A session ends
	// once the bankroll drops below it.
	MinBet int

	// DealerStand is the value the dealer draws up to: the dealer hits
	// while its hand value is below this threshold.
	DealerStand int

	// DoubleAfterSplit lifts the table's one-hand gate on doubling down.
	// When false, no hand may double once the player holds more than one
	// hand, even a hand that did not itself split.
	DoubleAfterSplit bool
}

// DefaultRules returns the reference table: bankroll 100, minimum bet 5,
// dealer draws to 17, no double after split.
func DefaultRules() Rules {
	return Rules{
		StartingBankroll: 100,
		MinBet:           5,
		DealerStand:      17,
	}
}

// Validate checks the rules are playable
func (r Rules) Validate() error {
	if r.StartingBankroll <= 0 {
		return fmt.Errorf("starting bankroll must be positive, got %d", r.StartingBankroll)
	}
	if r.MinBet <= 0 {
		return fmt.Errorf("minimum bet must be positive, got %d", r.MinBet)
	}
	if r.MinBet > r.StartingBankroll {
		return fmt.Errorf("minimum bet %d exceeds starting bankroll %d", r.MinBet, r.StartingBankroll)
	}
	if r.DealerStand < 2 || r.DealerStand > 21 {
		return fmt.Errorf("dealer stand threshold must be between 2 and 21, got %d", r.DealerStand)
	}
	return nil
}

package game

// Option represents a player decision available on an open hand
type Option int

const (
	Hit Option = iota
	Stand
	Double
	Split
)

func (o Option) String() string {
	return [...]string{"hit", "stand", "double", "split"}[o]
}

// Outcome classifies how a hand settled against the dealer
type Outcome int

const (
	Loss Outcome = iota
	Push
	Win
	Blackjack
)

func (o Outcome) String() string {
	return [...]string{"loss", "push", "win", "blackjack"}[o]
}

// Result reports the settlement of a single player hand. Payout is the
// amount credited back to the bankroll: 2x the bet on a win, 1x on a
// push, trunc(2.5x) on a winning 21, nothing on a loss.
type Result struct {
	HandIndex int
	Outcome   Outcome
	Bet       int
	Payout    int
}

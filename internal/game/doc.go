// Package game implements the blackjack rules engine: hand valuation with
// soft aces, bet placement, hit/stand/double/split semantics, the dealer's
// draw-to-17 policy and settlement. The engine performs no I/O; a
// presentation layer drives it one decision at a time and reads its state
// back through queries.
package game

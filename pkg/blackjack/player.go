package blackjack

import "blackjack-sim/pkg/deck"

// player hit thresholds. These are a simple heuristic, not optimal strategy.
const (
	playerAlwaysHitsBelow = 16
	playerSoftHitsBelow   = 19
)

// Player plays against the dealer with a fixed heuristic policy.
// The player holds a read-only reference to the dealer it plays against; it
// needs the dealer's showing card for its hit decision and the dealer's hand
// to settle blackjack precedence.
type Player struct {
	hand      Hand
	dealer    *Dealer
	bust      bool
	blackjack bool
}

// NewPlayer returns a new player facing the given dealer
func NewPlayer(dealer *Dealer) *Player {
	return &Player{dealer: dealer}
}

// Name returns "player"
func (p *Player) Name() string {
	return "player"
}

// Hand returns the player's hand
func (p *Player) Hand() *Hand {
	return &p.hand
}

// Receive appends the card to the player's hand.
// A bust is reported first. A blackjack only counts when the dealer does not
// also hold one; in that case the round ends immediately in the player's favor.
func (p *Player) Receive(card *deck.Card) Signal {
	p.hand.AddCard(card)
	if p.hand.IsBust() {
		p.bust = true
		return SignalBust
	}

	if p.hand.IsBlackjack() && !p.dealer.hasBlackjack() {
		p.blackjack = true
		return SignalBlackjack
	}

	return SignalContinue
}

// WantsAnotherCard returns true while the best value is below 16, or below 19
// when the hand holds an ace or the dealer is showing one
func (p *Player) WantsAnotherCard() bool {
	best, ok := p.hand.BestValue()
	if !ok {
		return false
	}

	if best < playerAlwaysHitsBelow {
		return true
	}

	if best < playerSoftHitsBelow {
		if p.hand.hasAce() {
			return true
		}

		if showing := p.dealer.ShowingCard(); showing != nil && showing.Rank == deck.Ace {
			return true
		}
	}

	return false
}

// FinalScore returns the player's best value once it has stood
func (p *Player) FinalScore() (int, error) {
	if p.bust || p.blackjack || p.WantsAnotherCard() {
		return 0, ErrScoredTooEarly
	}

	best, _ := p.hand.BestValue()
	return best, nil
}

package blackjack

import "blackjack-sim/pkg/deck"

// dealerStandsAt is the standard dealer rule: hit below 17, no soft/hard distinction
const dealerStandsAt = 17

// Dealer plays the house side of the round
type Dealer struct {
	hand Hand
	bust bool
}

// NewDealer returns a new dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{}
}

// Name returns "dealer"
func (d *Dealer) Name() string {
	return "dealer"
}

// Hand returns the dealer's hand
func (d *Dealer) Hand() *Hand {
	return &d.hand
}

// ShowingCard returns the dealer's face-up card, the first one dealt.
// It is visible to the player's decision policy.
func (d *Dealer) ShowingCard() *deck.Card {
	return d.hand.FirstCard()
}

// Receive appends the card to the dealer's hand.
// The dealer only reports busts; it never checks its own hand for blackjack.
func (d *Dealer) Receive(card *deck.Card) Signal {
	d.hand.AddCard(card)
	if d.hand.IsBust() {
		d.bust = true
		return SignalBust
	}

	return SignalContinue
}

// WantsAnotherCard returns true while the dealer's best value is below 17
func (d *Dealer) WantsAnotherCard() bool {
	best, ok := d.hand.BestValue()
	return ok && best < dealerStandsAt
}

// FinalScore returns the dealer's best value once it has stood
func (d *Dealer) FinalScore() (int, error) {
	if d.bust || d.WantsAnotherCard() {
		return 0, ErrScoredTooEarly
	}

	best, _ := d.hand.BestValue()
	return best, nil
}

// hasBlackjack is consulted by the player to settle blackjack precedence
func (d *Dealer) hasBlackjack() bool {
	return d.hand.IsBlackjack()
}

package blackjack

import "blackjack-sim/pkg/deck"

// Signal is the outcome of dealing a single card to a participant.
// Bust and blackjack are expected control outcomes, not failures; the round
// loop matches on them to terminate play.
type Signal int

// Signal constants
const (
	// SignalContinue means the participant may keep playing
	SignalContinue Signal = iota

	// SignalBust means every value of the participant's hand exceeds 21
	SignalBust

	// SignalBlackjack means the participant hit a natural 21
	SignalBlackjack
)

func (s Signal) String() string {
	switch s {
	case SignalContinue:
		return "continue"
	case SignalBust:
		return "bust"
	case SignalBlackjack:
		return "blackjack"
	}

	return "unknown"
}

// Participant is either side of a blackjack round
type Participant interface {
	// Name identifies the participant in results and logs
	Name() string

	// Receive appends a dealt card to the hand and reports bust or blackjack
	Receive(card *deck.Card) Signal

	// WantsAnotherCard returns true if the participant hits, false if it stands
	WantsAnotherCard() bool

	// FinalScore returns the hand's best value once the participant has stood.
	// It returns ErrScoredTooEarly while the participant still wants a card,
	// is bust, or already won by blackjack.
	FinalScore() (int, error)

	// Hand returns the participant's hand
	Hand() *Hand
}

package blackjack

import (
	"fmt"

	"github.com/google/uuid"

	"blackjack-sim/pkg/deck"
)

// Outcome classifies how a round ended
type Outcome string

// Outcome constants
const (
	// OutcomePlayerWins means the player stood with the higher score
	OutcomePlayerWins Outcome = "player-wins"

	// OutcomeDealerWins means the dealer stood with the higher score
	OutcomeDealerWins Outcome = "dealer-wins"

	// OutcomeTie means both stood with equal scores
	OutcomeTie Outcome = "tie"

	// OutcomePlayerBust means the player went over 21
	OutcomePlayerBust Outcome = "player-bust"

	// OutcomeDealerBust means the dealer went over 21
	OutcomeDealerBust Outcome = "dealer-bust"

	// OutcomePlayerBlackjack means the player hit a natural 21 and the dealer did not
	OutcomePlayerBlackjack Outcome = "player-blackjack"
)

// Result is the report produced by a completed round
type Result struct {
	ID      uuid.UUID `json:"id"`
	Outcome Outcome   `json:"outcome"`

	// Winner is "player" or "dealer", or empty on a tie
	Winner string `json:"winner,omitempty"`

	// scores are zero for a participant whose hand ended without a legal value
	PlayerScore int `json:"playerScore"`
	DealerScore int `json:"dealerScore"`

	PlayerHand deck.Hand `json:"playerHand"`
	DealerHand deck.Hand `json:"dealerHand"`
}

func (r *Result) String() string {
	switch r.Outcome {
	case OutcomePlayerBust:
		return "player busts; dealer wins the round"
	case OutcomeDealerBust:
		return "dealer busts; player wins the round"
	case OutcomePlayerBlackjack:
		return "player wins the round with blackjack"
	case OutcomeTie:
		return fmt.Sprintf("tie: both score %d", r.PlayerScore)
	case OutcomePlayerWins:
		return fmt.Sprintf("player wins %d to %d", r.PlayerScore, r.DealerScore)
	case OutcomeDealerWins:
		return fmt.Sprintf("dealer wins %d to %d", r.DealerScore, r.PlayerScore)
	}

	return string(r.Outcome)
}

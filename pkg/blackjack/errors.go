package blackjack

import "errors"

// ErrScoredTooEarly is an error when a final score is requested before the participant's turn is resolved
var ErrScoredTooEarly = errors.New("participant has not finished the round")

// ErrRoundComplete is an error when Play() is called on a round that already produced a result
var ErrRoundComplete = errors.New("the round is already complete")

package blackjack

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blackjack-sim/internal/rng"
	"blackjack-sim/pkg/deck"
)

// Options configures a round
type Options struct {
	// Logger receives per-deal progress and the final outcome.
	// Defaults to the logrus standard logger.
	Logger logrus.FieldLogger

	// Rand is the randomness source for the deck. Defaults to crypto/rand.
	Rand rng.Generator
}

// Round simulates one complete blackjack hand between a dealer and a player.
// The round owns its deck and participants; none of them survive past Play().
type Round struct {
	id     uuid.UUID
	deck   *deck.Deck
	dealer *Dealer
	player *Player
	logger logrus.FieldLogger
	result *Result
}

// NewRound returns a round with a fresh deck, dealer, and player
func NewRound(opts Options) *Round {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	gen := opts.Rand
	if gen == nil {
		gen = rng.Crypto{}
	}

	id := uuid.New()
	dealer := NewDealer()

	return &Round{
		id:     id,
		deck:   deck.New(gen),
		dealer: dealer,
		player: NewPlayer(dealer),
		logger: logger.WithField("round", id),
	}
}

// Play runs the round to completion and returns the outcome.
// The opening deal alternates dealer, player, dealer, player; then the player
// draws until it stands, then the dealer. Any bust or blackjack along the way
// ends the round immediately. Calling Play a second time returns ErrRoundComplete.
func (r *Round) Play() (*Result, error) {
	if r.result != nil {
		return nil, ErrRoundComplete
	}

	for i := 0; i < 2; i++ {
		for _, p := range []Participant{r.dealer, r.player} {
			result, err := r.deal(p)
			if err != nil || result != nil {
				return r.finish(result, err)
			}
		}
	}

	for _, p := range []Participant{r.player, r.dealer} {
		for p.WantsAnotherCard() {
			result, err := r.deal(p)
			if err != nil || result != nil {
				return r.finish(result, err)
			}
		}
	}

	result, err := r.showdown()
	return r.finish(result, err)
}

// deal draws the next card, gives it to p, and converts a terminal signal into
// a result. A nil, nil return means the round continues.
func (r *Round) deal(p Participant) (*Result, error) {
	card, err := r.deck.Draw()
	if err != nil {
		return nil, fmt.Errorf("draw for %s: %w", p.Name(), err)
	}

	signal := p.Receive(card)
	r.logger.WithFields(logrus.Fields{
		"participant": p.Name(),
		"card":        card.String(),
		"hand":        p.Hand().String(),
	}).Debug("card dealt")

	switch signal {
	case SignalBust:
		if _, isPlayer := p.(*Player); isPlayer {
			return r.newResult(OutcomePlayerBust, r.dealer.Name()), nil
		}

		return r.newResult(OutcomeDealerBust, r.player.Name()), nil
	case SignalBlackjack:
		return r.newResult(OutcomePlayerBlackjack, r.player.Name()), nil
	}

	return nil, nil
}

// showdown compares final scores after both participants have stood
func (r *Round) showdown() (*Result, error) {
	playerScore, err := r.player.FinalScore()
	if err != nil {
		return nil, fmt.Errorf("player score: %w", err)
	}

	dealerScore, err := r.dealer.FinalScore()
	if err != nil {
		return nil, fmt.Errorf("dealer score: %w", err)
	}

	switch {
	case playerScore > dealerScore:
		return r.newResult(OutcomePlayerWins, r.player.Name()), nil
	case dealerScore > playerScore:
		return r.newResult(OutcomeDealerWins, r.dealer.Name()), nil
	default:
		return r.newResult(OutcomeTie, ""), nil
	}
}

func (r *Round) newResult(outcome Outcome, winner string) *Result {
	result := &Result{
		ID:         r.id,
		Outcome:    outcome,
		Winner:     winner,
		PlayerHand: r.player.Hand().Cards(),
		DealerHand: r.dealer.Hand().Cards(),
	}

	if best, ok := r.player.Hand().BestValue(); ok {
		result.PlayerScore = best
	}

	if best, ok := r.dealer.Hand().BestValue(); ok {
		result.DealerScore = best
	}

	return result
}

func (r *Round) finish(result *Result, err error) (*Result, error) {
	if err != nil {
		return nil, err
	}

	r.result = result
	r.logger.WithField("outcome", result.Outcome).Info(result.String())

	return result, nil
}

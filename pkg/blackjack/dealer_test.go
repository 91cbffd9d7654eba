package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-sim/pkg/deck"
)

func TestDealer_WantsAnotherCard(t *testing.T) {
	a := assert.New(t)

	dealer := NewDealer()
	a.True(dealer.WantsAnotherCard())

	a.Equal(SignalContinue, dealer.Receive(deck.CardFromString("10c")))
	a.Equal(SignalContinue, dealer.Receive(deck.CardFromString("6d")))
	a.True(dealer.WantsAnotherCard())

	a.Equal(SignalContinue, dealer.Receive(deck.CardFromString("2h")))
	a.False(dealer.WantsAnotherCard())
}

func TestDealer_WantsAnotherCard_softSeventeen(t *testing.T) {
	// no soft/hard distinction: the dealer stands on ace plus six
	dealer := NewDealer()
	dealer.Receive(deck.CardFromString("14c"))
	dealer.Receive(deck.CardFromString("6d"))

	assert.False(t, dealer.WantsAnotherCard())
}

func TestDealer_Receive_bust(t *testing.T) {
	a := assert.New(t)

	dealer := NewDealer()
	a.Equal(SignalContinue, dealer.Receive(deck.CardFromString("10c")))
	a.Equal(SignalContinue, dealer.Receive(deck.CardFromString("6d")))
	a.Equal(SignalBust, dealer.Receive(deck.CardFromString("10h")))

	a.False(dealer.WantsAnotherCard())

	_, err := dealer.FinalScore()
	a.Equal(ErrScoredTooEarly, err)
}

func TestDealer_Receive_neverSignalsBlackjack(t *testing.T) {
	// the dealer never checks its own hand for blackjack; it simply stands on 21
	a := assert.New(t)

	dealer := NewDealer()
	a.Equal(SignalContinue, dealer.Receive(deck.CardFromString("14c")))
	a.Equal(SignalContinue, dealer.Receive(deck.CardFromString("13d")))

	a.False(dealer.WantsAnotherCard())

	score, err := dealer.FinalScore()
	a.NoError(err)
	a.Equal(21, score)
}

func TestDealer_ShowingCard(t *testing.T) {
	a := assert.New(t)

	dealer := NewDealer()
	a.Nil(dealer.ShowingCard())

	dealer.Receive(deck.CardFromString("9c"))
	dealer.Receive(deck.CardFromString("5d"))
	dealer.Receive(deck.CardFromString("3h"))

	a.True(dealer.ShowingCard().Equal(deck.CardFromString("9c")))
}

func TestDealer_FinalScore_prematurely(t *testing.T) {
	dealer := NewDealer()
	_, err := dealer.FinalScore()
	assert.Equal(t, ErrScoredTooEarly, err)

	dealer.Receive(deck.CardFromString("10c"))
	dealer.Receive(deck.CardFromString("9d"))

	score, err := dealer.FinalScore()
	assert.NoError(t, err)
	assert.Equal(t, 19, score)
}

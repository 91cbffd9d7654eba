package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
}

func TestHand_FirstCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("5c,14h"))
	a.True(hand.FirstCard().Equal(CardFromString("5c")))

	a.Nil(Hand{}.FirstCard())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("5c,14h"))
	clone := hand.Clone()
	a.Equal(hand.String(), clone.String())

	clone.AddCard(CardFromString("2d"))
	a.Equal("5c,14h", hand.String())
	a.Equal("5c,14h,2d", clone.String())
}

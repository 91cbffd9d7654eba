package deck

import (
	"errors"

	"blackjack-sim/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
// The deck is never pre-shuffled; Draw() picks uniformly at random from the remaining cards.
type Deck struct {
	Cards []*Card `json:"cards"`

	rng rng.Generator
}

// New returns a new 52-card deck that draws its randomness from g
func New(g rng.Generator) *Deck {
	d := &Deck{rng: g}
	d.Reset()

	return d
}

// Reset restores the deck to the full set of 52 unique cards
func (d *Deck) Reset() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Draw removes and returns one uniformly random card from the remaining cards
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	i := d.rng.Intn(len(d.Cards))
	card := d.Cards[i]
	d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

package blackjack

import (
	"sort"

	"blackjack-sim/pkg/deck"
)

// target is the value a hand must not exceed
const target = 21

// Hand is the ordered set of cards dealt to a participant.
// All blackjack facts (possible values, bust, blackjack, best value) are
// derived on demand and never stored.
type Hand struct {
	cards deck.Hand
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card *deck.Card) {
	h.cards.AddCard(card)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() deck.Hand {
	return h.cards.Clone()
}

// FirstCard returns the first card dealt, or nil for an empty hand
func (h *Hand) FirstCard() *deck.Card {
	return h.cards.FirstCard()
}

func (h *Hand) String() string {
	return h.cards.String()
}

// cardValues returns the blackjack value(s) of a card. An ace counts as both 11 and 1.
func cardValues(card *deck.Card) []int {
	switch card.Rank {
	case deck.Ace:
		return []int{11, 1}
	case deck.Jack, deck.Queen, deck.King:
		return []int{10}
	default:
		return []int{card.Rank}
	}
}

// PossibleValues returns every total the hand can legally count as, ascending
// and de-duplicated. Each ace forks the running totals into +11 and +1, so a
// hand with n aces expands to up to 2^n candidate totals.
func (h *Hand) PossibleValues() []int {
	totals := []int{0}
	for _, card := range h.cards {
		values := cardValues(card)
		next := make([]int, 0, len(totals)*len(values))
		for _, total := range totals {
			for _, value := range values {
				next = append(next, total+value)
			}
		}

		totals = next
	}

	seen := make(map[int]bool, len(totals))
	unique := totals[:0]
	for _, total := range totals {
		if !seen[total] {
			seen[total] = true
			unique = append(unique, total)
		}
	}

	sort.Ints(unique)
	return unique
}

// IsBust returns true if every possible value exceeds 21
func (h *Hand) IsBust() bool {
	for _, total := range h.PossibleValues() {
		if total <= target {
			return false
		}
	}

	return true
}

// IsBlackjack returns true if the hand holds exactly one ace and exactly one
// ten-valued card (ten, jack, queen, or king).
// The scan covers the whole hand, not just the first two cards. Participants
// check after every deal, so a longer hand that happens to hold one ace and
// one ten-card also reports blackjack.
func (h *Hand) IsBlackjack() bool {
	aces, tens := 0, 0
	for _, card := range h.cards {
		switch card.Rank {
		case deck.Ace:
			aces++
		case 10, deck.Jack, deck.Queen, deck.King:
			tens++
		}
	}

	return aces == 1 && tens == 1
}

// BestValue returns the highest possible value that does not exceed 21.
// The second return value is false when the hand is bust and no such value exists.
func (h *Hand) BestValue() (int, bool) {
	best, ok := 0, false
	for _, total := range h.PossibleValues() {
		if total <= target {
			best, ok = total, true
		}
	}

	return best, ok
}

// hasAce returns true if any card in the hand is an ace
func (h *Hand) hasAce() bool {
	for _, card := range h.cards {
		if card.Rank == deck.Ace {
			return true
		}
	}

	return false
}
